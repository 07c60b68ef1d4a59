package tetromino

import (
	"errors"
	"fmt"

	"github.com/plus3/blockfall/arena"
)

var (
	ErrOutOfBounds  = errors.New("cell out of bounds")
	ErrCellOccupied = errors.New("cell already occupied")
)

// Grid is the settled part of the play field. Each cell holds the arena id
// of the block occupying it, or zero when empty.
type Grid struct {
	rows    int
	columns int
	cells   []arena.Id
}

func NewGrid(rows, columns int) *Grid {
	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([]arena.Id, rows*columns),
	}
}

func (g *Grid) Rows() int    { return g.rows }
func (g *Grid) Columns() int { return g.columns }

// InBounds reports whether p is a cell of the visible field.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.columns && p.Y >= 0 && p.Y < g.rows
}

// At returns the block id at p. Cells outside the field read as empty.
func (g *Grid) At(p Point) arena.Id {
	if !g.InBounds(p) {
		return 0
	}
	return g.cells[p.Y*g.columns+p.X]
}

func (g *Grid) Occupied(p Point) bool {
	return g.At(p) != 0
}

// Set writes id into an empty in-bounds cell. It never overwrites.
func (g *Grid) Set(p Point, id arena.Id) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	idx := p.Y*g.columns + p.X
	if g.cells[idx] != 0 {
		return fmt.Errorf("%w: %s", ErrCellOccupied, p)
	}
	g.cells[idx] = id
	return nil
}

// Clear empties the cell at p and returns the id it held.
func (g *Grid) Clear(p Point) arena.Id {
	if !g.InBounds(p) {
		return 0
	}
	idx := p.Y*g.columns + p.X
	id := g.cells[idx]
	g.cells[idx] = 0
	return id
}

// Reset empties every cell.
func (g *Grid) Reset() {
	clear(g.cells)
}

// RowFull reports whether every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= g.rows {
		return false
	}
	for _, id := range g.cells[y*g.columns : (y+1)*g.columns] {
		if id == 0 {
			return false
		}
	}
	return true
}

// Row returns a copy of the ids in row y.
func (g *Grid) Row(y int) []arena.Id {
	if y < 0 || y >= g.rows {
		return nil
	}
	row := make([]arena.Id, g.columns)
	copy(row, g.cells[y*g.columns:(y+1)*g.columns])
	return row
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, id := range g.cells {
		if id != 0 {
			n++
		}
	}
	return n
}
