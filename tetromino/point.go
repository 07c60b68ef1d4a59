package tetromino

import (
	"strconv"
	"strings"
)

// Point is a grid position: X is the column, Y is the row counted downwards
// from the top of the visible field. Rows above the field are negative.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// Rotate90 turns the vector a quarter turn clockwise as seen on screen.
func (p Point) Rotate90() Point { return Point{-p.Y, p.X} }

func (p Point) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(p.X))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(p.Y))
	b.WriteRune(')')

	return b.String()
}
