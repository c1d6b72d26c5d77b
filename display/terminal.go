// Package display draws generations on a character terminal through tcell.
package display

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/sheikhrachel/go-gol/model"
)

// ScreenRenderer draws each generation at the top-left of a tcell screen
type ScreenRenderer struct {
	screen      tcell.Screen
	symbols     model.Symbols
	cellStyle   tcell.Style
	statusStyle tcell.Style
}

// NewScreenRenderer returns a green-on-black renderer for an initialised screen
func NewScreenRenderer(screen tcell.Screen, symbols model.Symbols) *ScreenRenderer {
	screen.HideCursor()
	return &ScreenRenderer{
		screen:      screen,
		symbols:     symbols,
		cellStyle:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
		statusStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
}

// Render draws the grid and, when the terminal has a spare row, a status line under it
func (r *ScreenRenderer) Render(g *model.Grid, generation int) error {
	r.screen.Clear()
	for y, line := range strings.Split(model.FormatGrid(g, r.symbols), "\n") {
		r.drawString(0, y, line, r.cellStyle)
	}

	if _, height := r.screen.Size(); height > g.Rows() {
		living := g.CountLivingCells()
		density := float64(living) / float64(g.Rows()*g.Cols()) * 100
		status := fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | any key to exit", generation, living, density)
		r.drawString(0, g.Rows(), status, r.statusStyle)
	}

	r.screen.Show()
	return nil
}

func (r *ScreenRenderer) drawString(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += max(1, runewidth.RuneWidth(ch))
	}
}

// GridSize returns the largest grid that fits the screen: one row per line and
// two columns per cell for the glyph and its separator
func GridSize(screen tcell.Screen) (rows, cols int) {
	width, height := screen.Size()
	return max(1, height), max(1, width/2)
}

// WaitForKey blocks until a key is pressed or ctx is done.
// It reports whether a key press ended the wait.
func WaitForKey(ctx context.Context, screen tcell.Screen) bool {
	var (
		events = make(chan tcell.Event, 8)
		quit   = make(chan struct{})
	)
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	for {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			switch ev.(type) {
			case *tcell.EventKey:
				return true
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}
}
