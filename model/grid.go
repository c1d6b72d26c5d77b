package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
)

// Cell states
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

var (
	ErrInvalidDimension  = errors.New("invalid grid dimension")
	ErrDimensionMismatch = errors.New("grid dimensions do not match")
	ErrIndexOutOfBounds  = errors.New("cell index out of bounds")
	ErrInvalidCellState  = errors.New("cell state must be 0 or 1")
	ErrAliasedBuffers    = errors.New("current and future grids share storage")
)

// Grid is a fixed-size rows x cols board of binary cells
type Grid struct {
	rows  int
	cols  int
	cells [][]uint8
}

// NewEmptyGrid creates a grid with every cell dead
func NewEmptyGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewEmptyGrid] rows: %d, cols: %d", rows, cols)
	}
	cells := make([][]uint8, rows)
	for i := range cells {
		cells[i] = make([]uint8, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}, nil
}

// NewRandomGrid creates a grid whose cells are alive with probability 0.5.
// With withBorder set the outermost rows and columns are forced dead.
// A nil rng falls back to a time-seeded source.
func NewRandomGrid(rows, cols int, withBorder bool, rng *rand.Rand) (*Grid, error) {
	g, err := NewEmptyGrid(rows, cols)
	if err != nil {
		return nil, errors.Wrap(err, "[NewRandomGrid] failed to allocate grid")
	}
	if rng == nil {
		rng = NewRNG(0)
	}
	for r := range rows {
		for c := range cols {
			if withBorder && (r == 0 || r == rows-1 || c == 0 || c == cols-1) {
				continue
			}
			g.cells[r][c] = uint8(rng.IntN(2))
		}
	}
	return g, nil
}

// NewRNG returns a deterministic PCG source for the seed; seed 0 uses the clock
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the state of a cell
func (g *Grid) Get(row, col int) (uint8, error) {
	if !g.inBounds(row, col) {
		return Dead, errors.Wrapf(ErrIndexOutOfBounds, "[Get] (%d,%d) outside %dx%d", row, col, g.rows, g.cols)
	}
	return g.cells[row][col], nil
}

// Set sets a cell to Alive or Dead
func (g *Grid) Set(row, col int, state uint8) error {
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrIndexOutOfBounds, "[Set] (%d,%d) outside %dx%d", row, col, g.rows, g.cols)
	}
	if state > Alive {
		return errors.Wrapf(ErrInvalidCellState, "[Set] state: %d", state)
	}
	g.cells[row][col] = state
	return nil
}

// Alive reports whether an in-bounds cell is alive; callers must stay within Rows x Cols
func (g *Grid) Alive(row, col int) bool {
	return g.cells[row][col] == Alive
}

// Fill sets every cell to state
func (g *Grid) Fill(state uint8) error {
	if state > Alive {
		return errors.Wrapf(ErrInvalidCellState, "[Fill] state: %d", state)
	}
	for r := range g.rows {
		for c := range g.cols {
			g.cells[r][c] = state
		}
	}
	return nil
}

// CountNeighbors counts living neighbors, wrapping every edge onto the opposite one
func (g *Grid) CountNeighbors(row, col int) int {
	var (
		up    = (row - 1 + g.rows) % g.rows
		down  = (row + 1) % g.rows
		left  = (col - 1 + g.cols) % g.cols
		right = (col + 1) % g.cols
	)
	return int(g.cells[up][left]) + int(g.cells[up][col]) + int(g.cells[up][right]) +
		int(g.cells[row][left]) + int(g.cells[row][right]) +
		int(g.cells[down][left]) + int(g.cells[down][col]) + int(g.cells[down][right])
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			count += int(g.cells[r][c])
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for r := range g.rows {
		h.Write(g.cells[r])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([][]uint8, g.rows)
	for r := range cells {
		cells[r] = append([]uint8(nil), g.cells[r]...)
	}
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
	}
}

// Equal reports whether both grids have the same size and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

func (g *Grid) sameSize(other *Grid) bool {
	return g.rows == other.rows && g.cols == other.cols
}

// sharesStorage reports whether any row of g is backed by the same array as a row of other
func (g *Grid) sharesStorage(other *Grid) bool {
	if g == other {
		return true
	}
	seen := make(map[*uint8]struct{}, g.rows)
	for _, row := range g.cells {
		seen[&row[0]] = struct{}{}
	}
	for _, row := range other.cells {
		if _, ok := seen[&row[0]]; ok {
			return true
		}
	}
	return false
}
