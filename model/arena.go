package model

import "github.com/pkg/errors"

// Arena holds the two alternating grid buffers of a run.
// The flag selects which slot is current; the other slot is the write target.
type Arena struct {
	slots [2]*Grid
	cur   int
}

// NewArena seeds slot 0 with seed and allocates an empty buffer of the same size for slot 1
func NewArena(seed *Grid) (*Arena, error) {
	if seed == nil {
		return nil, errors.Wrap(ErrInvalidDimension, "[NewArena] nil seed grid")
	}
	scratch, err := NewEmptyGrid(seed.rows, seed.cols)
	if err != nil {
		return nil, errors.Wrap(err, "[NewArena] failed to allocate scratch grid")
	}
	return &Arena{slots: [2]*Grid{seed, scratch}}, nil
}

// Current returns the grid holding the latest generation
func (a *Arena) Current() *Grid {
	return a.slots[a.cur]
}

// Future returns the buffer the next generation is written into
func (a *Arena) Future() *Grid {
	return a.slots[1-a.cur]
}

// Swap exchanges the roles of the two slots
func (a *Arena) Swap() {
	a.cur = 1 - a.cur
}

// Step advances Current into Future and swaps the slots
func (a *Arena) Step() error {
	if err := Advance(a.Current(), a.Future()); err != nil {
		return errors.Wrap(err, "[Step] failed to advance generation")
	}
	a.Swap()
	return nil
}
