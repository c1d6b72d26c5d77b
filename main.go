package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol/display"
	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/simulation"
	"github.com/sheikhrachel/go-gol/utils"
)

var (
	configPath       = flag.String("config", "config.json", "JSON config file, ignored when missing")
	seed             = flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	border           = flag.Bool("border", false, "keep the outermost rows and columns dead in the seed")
	stopOnStagnation = flag.Bool("stop-on-stagnation", false, "end the run once the grid repeats")
	hold             = flag.Bool("hold", false, "keep the last frame on screen until a key is pressed")
	plain            = flag.Bool("plain", false, "print frames to stdout instead of a full-screen terminal")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [rows [cols [steps [delay_seconds]]]]\n", os.Args[0])
	flag.PrintDefaults()
}

// applyFlags overrides the config with flags given on the command line
func applyFlags(config *utils.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			config.Seed = *seed
		case "border":
			config.WithBorder = *border
		case "stop-on-stagnation":
			config.StopOnStagnation = *stopOnStagnation
		case "hold":
			config.HoldOnFinish = *hold
		}
	})
}

func main() {
	flag.Usage = usage
	flag.Parse()

	config, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if config, err = config.ApplyArgs(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	applyFlags(&config)
	if err = config.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var runner *simulation.Runner
	if *plain {
		runner, err = runPlain(ctx, config)
	} else {
		runner, err = runScreen(ctx, config)
	}
	interrupted := ctx.Err() != nil
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if interrupted {
		fmt.Println("\nShutting down gracefully...")
	}
	displayFinalStats(runner)
}

// runPlain writes frames to stdout until the step limit or an interrupt
func runPlain(ctx context.Context, config utils.Config) (*simulation.Runner, error) {
	rows, cols := resolveSize(config, stdoutSize)
	renderer := &model.TextRenderer{Out: os.Stdout, Symbols: config.Symbols(), ClearScreen: true}

	runner, err := initializeGame(config, rows, cols, renderer)
	if err != nil {
		return nil, err
	}
	return runner, runner.Run(ctx)
}

// runScreen owns the tcell screen; any key press or signal ends the run
func runScreen(ctx context.Context, config utils.Config) (*simulation.Runner, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[runScreen] creating screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[runScreen] initializing screen")
	}
	defer screen.Fini()

	rows, cols := resolveSize(config, func() (int, int) { return display.GridSize(screen) })
	runner, err := initializeGame(config, rows, cols, display.NewScreenRenderer(screen, config.Symbols()))
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		eg, egCtx = errgroup.WithContext(runCtx)
		pressed   bool
	)
	eg.Go(func() error {
		defer cancel()
		return runner.Run(egCtx)
	})
	eg.Go(func() error {
		pressed = display.WaitForKey(egCtx, screen)
		cancel()
		return nil
	})
	if err = eg.Wait(); err != nil {
		return runner, err
	}

	if config.HoldOnFinish && !pressed && ctx.Err() == nil {
		display.WaitForKey(ctx, screen)
	}
	return runner, nil
}
