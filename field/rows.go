package field

import (
	"slices"

	"github.com/plus3/blockfall/arena"
)

// CheckFinishedRows clears every full row in one batch and returns how
// many were removed. Each surviving block falls by the number of cleared
// rows beneath it, then the grid is rebuilt from the settled blocks.
func (f *Field) CheckFinishedRows() int {
	defer f.flush()
	return f.checkFinishedRows()
}

func (f *Field) checkFinishedRows() int {
	var full []int
	for y := range f.grid.Rows() {
		if f.grid.RowFull(y) {
			full = append(full, y)
		}
	}
	if len(full) == 0 {
		return 0
	}

	for _, y := range full {
		for _, id := range f.grid.Row(y) {
			f.blocks.Remove(id)
			f.settled.Del(id)
		}
	}

	ids := slices.Collect(f.settled.Keys())
	slices.Sort(ids)

	var stale []arena.Id
	for _, id := range ids {
		b := f.blocks.Get(id)
		if b == nil {
			stale = append(stale, id)
			continue
		}
		below := 0
		for _, y := range full {
			if y > b.Pos.Y {
				below++
			}
		}
		b.Pos.Y += below
	}

	f.grid.Reset()
	for _, id := range ids {
		b := f.blocks.Get(id)
		if b == nil {
			continue
		}
		if err := f.grid.Set(b.Pos, id); err != nil {
			f.fault(err)
			f.blocks.Remove(id)
			stale = append(stale, id)
		}
	}
	for _, id := range stale {
		f.settled.Del(id)
	}

	f.calculateScore(len(full))
	return len(full)
}
