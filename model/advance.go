package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/rules"
)

// Advance overwrites every cell of future with the next generation of current.
// current is only read. The two grids must have equal dimensions and must not
// share storage; future is left untouched when either check fails.
func Advance(current, future *Grid) error {
	if current == nil || future == nil {
		return errors.Wrap(ErrDimensionMismatch, "[Advance] nil grid")
	}
	if !current.sameSize(future) {
		return errors.Wrapf(ErrDimensionMismatch, "[Advance] current: %dx%d, future: %dx%d",
			current.rows, current.cols, future.rows, future.cols)
	}
	if current.sharesStorage(future) {
		return errors.Wrap(ErrAliasedBuffers, "[Advance]")
	}

	for r := range current.rows {
		for c := range current.cols {
			future.cells[r][c] = rules.NextState(current.cells[r][c], current.CountNeighbors(r, c))
		}
	}
	return nil
}
