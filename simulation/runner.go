// Package simulation drives a run: it steps the arena, hands each generation to
// a renderer and paces the frames. It never draws or sleeps on its own; both are
// injected.
package simulation

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

// historySize is how many recent grid hashes are kept for cycle detection
const historySize = 5

// Renderer displays a generation
type Renderer interface {
	Render(g *model.Grid, generation int) error
}

// SleepFunc blocks for d or until ctx is done
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep waits for d, returning ctx.Err() if the context ends first
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Runner owns the run state: the arena, the generation counter and the pacing
type Runner struct {
	Arena    *model.Arena
	Renderer Renderer
	Interval time.Duration
	// Steps < 0 runs until the context is cancelled; 0 shows only the seed
	Steps            int
	Stats            *utils.Stats
	Sleep            SleepFunc
	StopOnStagnation bool

	generation int
	history    []string
	stagnant   bool
}

// Generation returns the number of ticks completed
func (r *Runner) Generation() int {
	return r.generation
}

// Stagnant reports whether a generation repeated one of the three before it
func (r *Runner) Stagnant() bool {
	return r.stagnant
}

// Run renders the seed, then advances and renders one generation per interval.
// Cancelling ctx ends the run without an error.
func (r *Runner) Run(ctx context.Context) error {
	if r.Arena == nil || r.Renderer == nil {
		return errors.New("[Run] runner needs an arena and a renderer")
	}
	if r.Sleep == nil {
		r.Sleep = Sleep
	}
	if r.Stats == nil {
		r.Stats = utils.NewStats()
	}

	if err := r.Renderer.Render(r.Arena.Current(), r.generation); err != nil {
		return errors.Wrap(err, "[Run] failed to render seed")
	}
	r.updateHistory()
	if r.pause(ctx) {
		return nil
	}

	lastFrame := time.Now()
	for r.Steps < 0 || r.generation < r.Steps {
		if ctx.Err() != nil {
			return nil
		}

		if err := r.Arena.Step(); err != nil {
			return errors.Wrapf(err, "[Run] generation: %d", r.generation+1)
		}
		r.generation++

		current := r.Arena.Current()
		r.Stats.Update(r.generation, current.CountLivingCells(), time.Since(lastFrame))
		lastFrame = time.Now()

		if err := r.Renderer.Render(current, r.generation); err != nil {
			return errors.Wrapf(err, "[Run] failed to render generation: %d", r.generation)
		}

		if r.isStagnant() {
			r.stagnant = true
			if r.StopOnStagnation {
				return nil
			}
		}
		r.updateHistory()

		if r.pause(ctx) {
			return nil
		}
	}
	return nil
}

// pause sleeps one interval and reports whether the run was cancelled
func (r *Runner) pause(ctx context.Context) bool {
	return r.Sleep(ctx, r.Interval) != nil || ctx.Err() != nil
}

// updateHistory adds the current state to history and maintains size
func (r *Runner) updateHistory() {
	r.history = append(r.history, r.Arena.Current().GetGridHash())
	if len(r.history) > historySize {
		r.history = r.history[1:]
	}
}

// isStagnant checks if the current grid repeats one of the last three generations
func (r *Runner) isStagnant() bool {
	currentHash := r.Arena.Current().GetGridHash()
	for i := 1; i <= 3 && i <= len(r.history); i++ {
		if r.history[len(r.history)-i] == currentHash {
			return true
		}
	}
	return false
}
