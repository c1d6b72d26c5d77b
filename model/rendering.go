package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "▄"
	gridPosEmpty = " "

	ansiClear = "\x1b[H\x1b[2J"
)

// Symbols are the glyphs used for live and dead cells
type Symbols struct {
	Live string
	Dead string
}

// DefaultSymbols returns the lower half block for live cells and a space for dead ones
func DefaultSymbols() Symbols {
	return Symbols{Live: gridPosBlock, Dead: gridPosEmpty}
}

// FormatGrid renders the grid as one line per row with cells separated by a space
func FormatGrid(g *Grid, sym Symbols) string {
	var (
		b   strings.Builder
		row = make([]string, g.cols)
	)
	for r := range g.rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := range g.cols {
			if g.Alive(r, c) {
				row[c] = sym.Live
			} else {
				row[c] = sym.Dead
			}
		}
		b.WriteString(strings.Join(row, " "))
	}
	return b.String()
}

// TextRenderer writes each frame as plain text
type TextRenderer struct {
	Out         io.Writer
	Symbols     Symbols
	ClearScreen bool
}

// Render writes the formatted grid, optionally clearing the terminal first
func (r *TextRenderer) Render(g *Grid, generation int) error {
	var frame string
	if r.ClearScreen {
		frame = ansiClear
	}
	frame += FormatGrid(g, r.Symbols) + "\n"
	if _, err := fmt.Fprint(r.Out, frame); err != nil {
		return errors.Wrapf(err, "[Render] failed to write generation: %d", generation)
	}
	return nil
}
