// Package tetromino implements the falling piece: its blocks, the settled
// grid it collides with, and the move, rotate and lock rules.
package tetromino

import (
	"slices"

	"github.com/plus3/blockfall/arena"
)

// Tetromino is the active piece. It owns four blocks stored in a shared
// arena until it locks, at which point ownership moves to the grid and the
// tetromino is spent.
type Tetromino struct {
	kind   Kind
	blocks [4]arena.Id
	store  *arena.Arena[Block]
	grid   *Grid
	locked bool
}

// New creates a tetromino of kind at the spawn translation and inserts its
// blocks into store.
func New(kind Kind, spawn Point, grid *Grid, store *arena.Arena[Block]) *Tetromino {
	if !kind.Valid() {
		panic("tetromino: invalid kind " + kind.String())
	}

	t := &Tetromino{
		kind:  kind,
		store: store,
		grid:  grid,
	}
	for i, offset := range kind.Offsets() {
		t.blocks[i] = store.Insert(NewBlock(offset, spawn, kind))
	}
	return t
}

func (t *Tetromino) Kind() Kind {
	return t.kind
}

// Locked reports whether the piece has already been written into the grid.
func (t *Tetromino) Locked() bool {
	return t.locked
}

// Blocks returns the ids of the owned blocks. A locked tetromino owns none.
func (t *Tetromino) Blocks() [4]arena.Id {
	return t.blocks
}

// Positions returns the current position of each block.
func (t *Tetromino) Positions() [4]Point {
	var out [4]Point
	for i, id := range t.blocks {
		if b := t.store.Get(id); b != nil {
			out[i] = b.Pos
		}
	}
	return out
}

func (t *Tetromino) eachBlock(fn func(b *Block) bool) bool {
	for _, id := range t.blocks {
		b := t.store.Get(id)
		if b == nil {
			continue
		}
		if !fn(b) {
			return false
		}
	}
	return true
}

// NextMoveHorizontalCollide reports whether shifting every block by dx
// columns would collide.
func (t *Tetromino) NextMoveHorizontalCollide(dx int) bool {
	return !t.eachBlock(func(b *Block) bool {
		return !b.HorizontalCollide(b.Pos.X+dx, t.grid)
	})
}

// NextMoveVerticalCollide reports whether shifting every block by dy rows
// would collide.
func (t *Tetromino) NextMoveVerticalCollide(dy int) bool {
	return !t.eachBlock(func(b *Block) bool {
		return !b.VerticalCollide(b.Pos.Y+dy, t.grid)
	})
}

// Overlaps reports whether any block sits on an occupied cell.
func (t *Tetromino) Overlaps() bool {
	return !t.eachBlock(func(b *Block) bool {
		return !t.grid.Occupied(b.Pos)
	})
}

// MoveHorizontal shifts the piece by dx columns. Blocked moves are ignored.
func (t *Tetromino) MoveHorizontal(dx int) bool {
	if t.locked || t.NextMoveHorizontalCollide(dx) {
		return false
	}
	t.eachBlock(func(b *Block) bool {
		b.Pos.X += dx
		return true
	})
	return true
}

func (t *Tetromino) shiftDown() {
	t.eachBlock(func(b *Block) bool {
		b.Pos.Y++
		return true
	})
}

// MoveDown drops the piece one row. When it cannot fall any further the
// piece locks and the resulting Lock is returned; otherwise nil.
func (t *Tetromino) MoveDown() *Lock {
	if t.locked {
		return nil
	}
	if !t.NextMoveVerticalCollide(1) {
		t.shiftDown()
		return nil
	}
	return t.lock()
}

// InstantDrop lowers the piece as far as it can go and locks it.
func (t *Tetromino) InstantDrop() *Lock {
	if t.locked {
		return nil
	}
	for !t.NextMoveVerticalCollide(1) {
		t.shiftDown()
	}
	return t.lock()
}

// LandingPositions returns where the blocks would lock after an instant
// drop, without moving the piece.
func (t *Tetromino) LandingPositions() [4]Point {
	pos := t.Positions()
	if t.locked {
		return pos
	}

	drop := 0
	for !t.NextMoveVerticalCollide(drop + 1) {
		drop++
	}
	for i := range pos {
		pos[i].Y += drop
	}
	return pos
}

// Rotate turns the piece a quarter turn clockwise about its first block.
// The rotation is applied to all four blocks or to none of them.
func (t *Tetromino) Rotate() bool {
	if t.locked || !t.kind.Rotates() {
		return false
	}

	pivot := t.store.Get(t.blocks[0])
	if pivot == nil {
		return false
	}

	var candidates [4]Point
	for i, id := range t.blocks {
		b := t.store.Get(id)
		if b == nil {
			return false
		}
		p := b.Rotate(pivot.Pos)
		if p.X < 0 || p.X >= t.grid.Columns() {
			return false
		}
		if p.Y >= t.grid.Rows() {
			return false
		}
		if t.grid.Occupied(p) {
			return false
		}
		candidates[i] = p
	}

	for i, id := range t.blocks {
		t.store.Get(id).Pos = candidates[i]
	}
	return true
}

// lock validates every block against the grid before writing any of them.
// Blocks above the field mark an overflow, blocks that would overwrite or
// leave the grid are reported as faults; both are released from the arena.
func (t *Tetromino) lock() *Lock {
	l := &Lock{
		Kind:  t.kind,
		Cells: t.Positions(),
	}

	var accepted [4]bool
	var claimed [4]Point
	n := 0
	for i, id := range t.blocks {
		b := t.store.Get(id)
		if b == nil {
			continue
		}
		p := b.Pos

		switch {
		case p.Y < 0:
			l.Overflow = true
		case !t.grid.InBounds(p):
			l.Faults = append(l.Faults, &PlacementError{Pos: p, Err: ErrOutOfBounds})
		case t.grid.Occupied(p) || slices.Contains(claimed[:n], p):
			l.Faults = append(l.Faults, &PlacementError{Pos: p, Err: ErrCellOccupied})
		default:
			accepted[i] = true
			claimed[n] = p
			n++
		}
	}

	for i, id := range t.blocks {
		if !accepted[i] {
			t.store.Remove(id)
			continue
		}
		b := t.store.Get(id)
		if err := t.grid.Set(b.Pos, id); err != nil {
			l.Faults = append(l.Faults, &PlacementError{Pos: b.Pos, Err: err})
			t.store.Remove(id)
			continue
		}
		l.Placed = append(l.Placed, id)
	}

	t.blocks = [4]arena.Id{}
	t.locked = true
	return l
}

// Release removes the blocks of an unlocked piece from the arena, for
// example when a game is abandoned mid-fall.
func (t *Tetromino) Release() {
	if t.locked {
		return
	}
	for _, id := range t.blocks {
		t.store.Remove(id)
	}
	t.blocks = [4]arena.Id{}
	t.locked = true
}
