package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/simulation"
	"github.com/sheikhrachel/go-gol/utils"
)

const (
	fallbackRows = 24
	fallbackCols = 40
)

// loadConfig reads the config file, falling back to defaults when it is missing
func loadConfig(filename string) (utils.Config, error) {
	config, err := utils.LoadConfig(filename)
	if err == nil {
		return config, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return utils.DefaultConfig(), nil
	}
	return config, err
}

// resolveSize fills zero rows or cols from the terminal
func resolveSize(config utils.Config, fit func() (int, int)) (rows, cols int) {
	rows, cols = config.Rows, config.Cols
	if rows > 0 && cols > 0 {
		return rows, cols
	}
	fitRows, fitCols := fit()
	if rows <= 0 {
		rows = fitRows
	}
	if cols <= 0 {
		cols = fitCols
	}
	return rows, cols
}

// stdoutSize fits the grid to the terminal on stdout, leaving a row for the prompt
func stdoutSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 2 || height < 2 {
		return fallbackRows, fallbackCols
	}
	return height - 1, width / 2
}

// initializeGame seeds the grid and builds the runner around the renderer
func initializeGame(
	config utils.Config,
	rows, cols int,
	renderer simulation.Renderer,
) (*simulation.Runner, error) {
	seed, err := model.NewRandomGrid(rows, cols, config.WithBorder, model.NewRNG(config.Seed))
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to seed grid")
	}
	arena, err := model.NewArena(seed)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to build arena")
	}

	return &simulation.Runner{
		Arena:            arena,
		Renderer:         renderer,
		Interval:         config.Interval,
		Steps:            config.Steps,
		Stats:            utils.NewStats(),
		Sleep:            simulation.Sleep,
		StopOnStagnation: config.StopOnStagnation,
	}, nil
}

// displayFinalStats shows the summary once the terminal is released
func displayFinalStats(runner *simulation.Runner) {
	stats := runner.Stats
	status := "Active"
	if runner.Stagnant() {
		status = "Stagnant"
	}
	if runner.Arena.Current().CountLivingCells() == 0 {
		status = "Extinct"
	}
	fmt.Printf("Final stats: %d generations in %.1f seconds | Status: %s\n",
		runner.Generation(), stats.Runtime().Seconds(), status)
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population | Last frame: %.1f gen/sec\n",
		stats.AverageGenerationsPerSecond(), stats.AveragePopulation, stats.GenerationsPerSecond)
}
