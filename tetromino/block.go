package tetromino

// Block is one occupied cell of a tetromino. Blocks live in an arena and are
// addressed by id, both while falling and once settled in the grid.
type Block struct {
	Pos  Point
	Kind Kind
}

// NewBlock places a block at its shape offset translated by the spawn point.
func NewBlock(offset Point, spawn Point, kind Kind) Block {
	return Block{Pos: offset.Add(spawn), Kind: kind}
}

// Rotate returns the block position turned a quarter turn clockwise about
// pivot. The block itself is not modified.
func (b Block) Rotate(pivot Point) Point {
	return pivot.Add(b.Pos.Sub(pivot).Rotate90())
}

// HorizontalCollide reports whether moving the block to column x would leave
// the field or hit a settled block in its current row.
func (b Block) HorizontalCollide(x int, grid *Grid) bool {
	if x < 0 || x >= grid.Columns() {
		return true
	}
	return grid.Occupied(Point{x, b.Pos.Y})
}

// VerticalCollide reports whether moving the block to row y would pass the
// floor or hit a settled block. Rows above the field never collide.
func (b Block) VerticalCollide(y int, grid *Grid) bool {
	if y >= grid.Rows() {
		return true
	}
	return y >= 0 && grid.Occupied(Point{b.Pos.X, y})
}
