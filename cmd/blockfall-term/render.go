package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetromino"
)

const (
	originX = 2
	originY = 1
)

type renderStage struct {
	screen tcell.Screen
	field  *field.Field
	cfg    config.Config
}

func (s *renderStage) style(k tetromino.Kind) tcell.Style {
	c := s.cfg.Color(k.String())
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2])))
}

// cell draws one field cell as two terminal columns.
func (s *renderStage) cell(x, y int, r rune, style tcell.Style) {
	sx := originX + 1 + x*2
	sy := originY + y
	s.screen.SetContent(sx, sy, r, nil, style)
	s.screen.SetContent(sx+1, sy, r, nil, style)
}

func (s *renderStage) text(x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (s *renderStage) Execute(frame *loop.Frame) {
	snap := s.field.Snapshot()
	s.screen.Clear()

	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	right := originX + 1 + snap.Columns*2
	bottom := originY + snap.Rows
	for y := originY; y < bottom; y++ {
		s.screen.SetContent(originX, y, '│', nil, border)
		s.screen.SetContent(right, y, '│', nil, border)
	}
	for x := originX; x <= right; x++ {
		s.screen.SetContent(x, bottom, '─', nil, border)
	}
	s.screen.SetContent(originX, bottom, '└', nil, border)
	s.screen.SetContent(right, bottom, '┘', nil, border)

	empty := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := range snap.Rows {
		for x := range snap.Columns {
			if k := snap.At(x, y); k != tetromino.KindNone {
				s.cell(x, y, '█', s.style(k))
			} else {
				s.cell(x, y, '·', empty)
			}
		}
	}
	for _, p := range snap.Ghost {
		if p.Y >= 0 {
			s.cell(p.X, p.Y, '░', s.style(snap.ActiveKind))
		}
	}
	for _, p := range snap.Active {
		if p.Y >= 0 {
			s.cell(p.X, p.Y, '█', s.style(snap.ActiveKind))
		}
	}

	side := right + 3
	plain := tcell.StyleDefault
	s.text(side, originY, fmt.Sprintf("SCORE %d", snap.Score), plain)
	s.text(side, originY+1, fmt.Sprintf("LEVEL %d", snap.Level), plain)
	s.text(side, originY+2, fmt.Sprintf("LINES %d", snap.Lines), plain)
	s.text(side, originY+4, "NEXT", plain)
	for i, kind := range snap.Preview {
		baseY := originY + 7 + i*4
		for _, off := range kind.Offsets() {
			x := side + 2 + off.X*2
			y := baseY + off.Y
			s.screen.SetContent(x, y, '█', nil, s.style(kind))
			s.screen.SetContent(x+1, y, '█', nil, s.style(kind))
		}
	}

	alert := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	switch {
	case snap.GameOver:
		s.text(originX+2, originY+snap.Rows/2, "GAME OVER", alert)
		s.text(originX+2, originY+snap.Rows/2+1, "r: restart", plain)
	case snap.Paused:
		s.text(originX+2, originY+snap.Rows/2, "PAUSED", alert)
	}

	s.text(side, bottom, "←→ move  ↑ rotate  ↓ soft  space drop  p pause  q quit", empty)
	s.screen.Show()
}
