package utils

import (
	"encoding/json"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
)

var ErrInvalidArgument = errors.New("invalid argument")

// UnboundedSteps runs the simulation until it is interrupted
const UnboundedSteps = -1

// Config holds the configuration for the game
type Config struct {
	Rows             int           `json:"rows"`
	Cols             int           `json:"cols"`
	Steps            int           `json:"steps"`
	Interval         time.Duration `json:"interval"`
	WithBorder       bool          `json:"with_border"`
	LiveSymbol       string        `json:"live_symbol"`
	DeadSymbol       string        `json:"dead_symbol"`
	Seed             int64         `json:"seed"`
	StopOnStagnation bool          `json:"stop_on_stagnation"`
	HoldOnFinish     bool          `json:"hold_on_finish"`
}

// DefaultConfig returns sensible defaults.
// Zero rows or cols fill the terminal; the run is unbounded until a step count is given.
func DefaultConfig() Config {
	sym := model.DefaultSymbols()
	return Config{
		Rows:       0,
		Cols:       0,
		Steps:      UnboundedSteps,
		Interval:   40 * time.Millisecond,
		WithBorder: false,
		LiveSymbol: sym.Live,
		DeadSymbol: sym.Dead,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ApplyArgs overrides the config with the positional values: rows cols steps delay_seconds.
// Any prefix of the four may be given.
func (c Config) ApplyArgs(args []string) (Config, error) {
	if len(args) > 4 {
		return c, errors.Wrapf(ErrInvalidArgument, "[ApplyArgs] expected at most 4 arguments, got %d", len(args))
	}

	ints := []*int{&c.Rows, &c.Cols, &c.Steps}
	for i, arg := range args {
		if i == 3 {
			seconds, err := strconv.ParseFloat(arg, 64)
			if err != nil || seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
				return c, errors.Wrapf(ErrInvalidArgument, "[ApplyArgs] delay: %q", arg)
			}
			c.Interval = time.Duration(seconds * float64(time.Second))
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return c, errors.Wrapf(ErrInvalidArgument, "[ApplyArgs] argument %d: %q", i+1, arg)
		}
		if i == 2 && n < 0 {
			return c, errors.Wrapf(ErrInvalidArgument, "[ApplyArgs] steps: %d", n)
		}
		*ints[i] = n
	}

	return c, nil
}

// Validate rejects values no run can use
func (c Config) Validate() error {
	if c.Rows < 0 || c.Cols < 0 {
		return errors.Wrapf(ErrInvalidArgument, "[Validate] rows: %d, cols: %d", c.Rows, c.Cols)
	}
	if c.Steps < UnboundedSteps {
		return errors.Wrapf(ErrInvalidArgument, "[Validate] steps: %d", c.Steps)
	}
	if c.Interval < 0 {
		return errors.Wrapf(ErrInvalidArgument, "[Validate] interval: %v", c.Interval)
	}
	return nil
}

// Symbols returns the glyphs for the renderer
func (c Config) Symbols() model.Symbols {
	return model.Symbols{Live: c.LiveSymbol, Dead: c.DeadSymbol}
}
