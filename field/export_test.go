package field

import "github.com/plus3/blockfall/tetromino"

// Settle writes blocks straight into the grid, bypassing collision checks.
func (f *Field) Settle(kind tetromino.Kind, points ...tetromino.Point) error {
	for _, p := range points {
		id := f.blocks.Insert(tetromino.Block{Pos: p, Kind: kind})
		if err := f.grid.Set(p, id); err != nil {
			f.blocks.Remove(id)
			return err
		}
		f.settled.Put(id, struct{}{})
	}
	return nil
}

func (f *Field) SettledCount() int {
	return f.settled.Len()
}

func (f *Field) BlockCount() int {
	return f.blocks.Len()
}
