package field

import (
	"time"

	"github.com/plus3/blockfall/tetromino"
)

// Snapshot is a copy of everything a renderer needs for one frame.
type Snapshot struct {
	Rows    int
	Columns int

	// Cells holds the kind of each settled block in row-major order,
	// KindNone for empty cells.
	Cells []tetromino.Kind

	ActiveKind tetromino.Kind
	Active     []tetromino.Point
	Ghost      []tetromino.Point

	Preview []tetromino.Kind

	Score   int
	Lines   int
	Level   int
	Gravity time.Duration

	GameOver bool
	Paused   bool
}

// At returns the settled kind at column x, row y.
func (s Snapshot) At(x, y int) tetromino.Kind {
	if x < 0 || x >= s.Columns || y < 0 || y >= s.Rows {
		return tetromino.KindNone
	}
	return s.Cells[y*s.Columns+x]
}

// Snapshot copies the current state.
func (f *Field) Snapshot() Snapshot {
	s := Snapshot{
		Rows:     f.grid.Rows(),
		Columns:  f.grid.Columns(),
		Cells:    make([]tetromino.Kind, f.grid.Rows()*f.grid.Columns()),
		Preview:  f.Preview(),
		Score:    f.score,
		Lines:    f.lines,
		Level:    f.level,
		Gravity:  f.gravity,
		GameOver: f.gameOver,
		Paused:   f.clock.Paused(),
	}

	for y := range s.Rows {
		for x := range s.Columns {
			id := f.grid.At(tetromino.Point{X: x, Y: y})
			if b := f.blocks.Get(id); b != nil {
				s.Cells[y*s.Columns+x] = b.Kind
			}
		}
	}

	if f.current != nil {
		active := f.current.Positions()
		ghost := f.current.LandingPositions()
		s.ActiveKind = f.current.Kind()
		s.Active = active[:]
		s.Ghost = ghost[:]
	}
	return s
}
