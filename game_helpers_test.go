package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatal(err)
	}
	if config != utils.DefaultConfig() {
		t.Fatalf("got %+v, want defaults", config)
	}

	bad := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(bad, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(bad); err == nil {
		t.Fatal("expected malformed config to fail")
	}
}

func TestResolveSize(t *testing.T) {
	fit := func() (int, int) { return 30, 50 }
	tests := []struct {
		rows, cols         int
		wantRows, wantCols int
	}{
		{0, 0, 30, 50},
		{10, 0, 10, 50},
		{0, 7, 30, 7},
		{4, 5, 4, 5},
	}
	for _, tt := range tests {
		config := utils.DefaultConfig()
		config.Rows, config.Cols = tt.rows, tt.cols
		if rows, cols := resolveSize(config, fit); rows != tt.wantRows || cols != tt.wantCols {
			t.Errorf("resolveSize(%d,%d) = %dx%d, want %dx%d", tt.rows, tt.cols, rows, cols, tt.wantRows, tt.wantCols)
		}
	}
}

func TestInitializeGameRunsToStepLimit(t *testing.T) {
	config := utils.DefaultConfig()
	config.Steps = 5
	config.Interval = 0
	config.Seed = 11

	var buf bytes.Buffer
	renderer := &model.TextRenderer{Out: &buf, Symbols: model.Symbols{Live: "#", Dead: "."}}
	runner, err := initializeGame(config, 6, 8, renderer)
	if err != nil {
		t.Fatal(err)
	}
	if err := runner.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if runner.Generation() != 5 {
		t.Fatalf("Generation() = %d, want 5", runner.Generation())
	}
	// seed plus five generations, six rows each
	if lines := strings.Count(buf.String(), "\n"); lines != 6*6 {
		t.Fatalf("wrote %d lines, want 36", lines)
	}
}

func TestInitializeGameZeroStepsFromArgs(t *testing.T) {
	config, err := utils.DefaultConfig().ApplyArgs([]string{"6", "6", "0", "0"})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	renderer := &model.TextRenderer{Out: &buf, Symbols: model.Symbols{Live: "#", Dead: "."}}
	runner, err := initializeGame(config, 6, 6, renderer)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if err := runner.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if runner.Generation() != 0 {
		t.Fatalf("Generation() = %d, want 0", runner.Generation())
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 6 {
		t.Fatalf("wrote %d lines, want only the seed", lines)
	}
}

func TestInitializeGameDefaultSeedCoversEdges(t *testing.T) {
	config := utils.DefaultConfig()
	config.Seed = 21
	runner, err := initializeGame(config, 20, 20, &model.TextRenderer{})
	if err != nil {
		t.Fatal(err)
	}
	seed := runner.Arena.Current()
	edgeAlive := 0
	for i := range 20 {
		if seed.Alive(0, i) || seed.Alive(19, i) || seed.Alive(i, 0) || seed.Alive(i, 19) {
			edgeAlive++
		}
	}
	if edgeAlive == 0 {
		t.Fatal("default seed left every edge cell dead")
	}
}

func TestInitializeGameInvalidSize(t *testing.T) {
	if _, err := initializeGame(utils.DefaultConfig(), 0, 3, &model.TextRenderer{}); err == nil {
		t.Fatal("expected an error for a zero-row grid")
	}
}
