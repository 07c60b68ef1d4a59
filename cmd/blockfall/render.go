package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/tetromino"
)

const (
	cellSize     = 32
	padding      = 20
	sidebarWidth = 200
	debugWidth   = 400
)

type layout struct {
	cfg     config.Config
	width   int
	height  int
	fieldW  float32
	fieldH  float32
	sidebar float32
}

func newLayout(cfg config.Config) layout {
	fieldW := cfg.Columns * cellSize
	fieldH := cfg.Rows * cellSize
	return layout{
		cfg:     cfg,
		width:   fieldW + sidebarWidth + padding*3,
		height:  fieldH + padding*2,
		fieldW:  float32(fieldW),
		fieldH:  float32(fieldH),
		sidebar: float32(fieldW + padding*2),
	}
}

func rgba(c config.RGB, alpha uint8) color.RGBA {
	return color.RGBA{c[0], c[1], c[2], alpha}
}

func (l layout) kindColor(k tetromino.Kind, alpha uint8) color.RGBA {
	return rgba(l.cfg.Color(k.String()), alpha)
}

func (l layout) cell(screen *ebiten.Image, ox, oy float32, p tetromino.Point, c color.Color) {
	x := ox + float32(p.X*cellSize)
	y := oy + float32(p.Y*cellSize)
	vector.DrawFilledRect(screen, x, y, cellSize, cellSize, c, false)
	vector.StrokeRect(screen, x, y, cellSize, cellSize, 1, color.Black, false)
}

func (l layout) draw(screen *ebiten.Image, snap *field.Snapshot) {
	screen.Fill(rgba(l.cfg.Background, 255))

	ox, oy := float32(padding), float32(padding)
	lines := rgba(l.cfg.LineColor, 40)
	for col := 1; col < snap.Columns; col++ {
		x := ox + float32(col*cellSize)
		vector.StrokeLine(screen, x, oy, x, oy+l.fieldH, 1, lines, false)
	}
	for row := 1; row < snap.Rows; row++ {
		y := oy + float32(row*cellSize)
		vector.StrokeLine(screen, ox, y, ox+l.fieldW, y, 1, lines, false)
	}

	for y := range snap.Rows {
		for x := range snap.Columns {
			if k := snap.At(x, y); k != tetromino.KindNone {
				l.cell(screen, ox, oy, tetromino.Point{X: x, Y: y}, l.kindColor(k, 255))
			}
		}
	}

	for _, p := range snap.Ghost {
		if p.Y >= 0 {
			l.cell(screen, ox, oy, p, l.kindColor(snap.ActiveKind, 70))
		}
	}
	for _, p := range snap.Active {
		if p.Y >= 0 {
			l.cell(screen, ox, oy, p, l.kindColor(snap.ActiveKind, 255))
		}
	}

	vector.StrokeRect(screen, ox, oy, l.fieldW, l.fieldH, 2, rgba(l.cfg.LineColor, 255), false)

	l.drawSidebar(screen, snap)

	switch {
	case snap.GameOver:
		l.banner(screen, "GAME OVER", "Press R to restart")
	case snap.Paused:
		l.banner(screen, "PAUSED", "Press P to resume")
	}
}

func (l layout) drawSidebar(screen *ebiten.Image, snap *field.Snapshot) {
	x := int(l.sidebar)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE  %d", snap.Score), x, padding)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL  %d", snap.Level), x, padding+20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES  %d", snap.Lines), x, padding+40)
	ebitenutil.DebugPrintAt(screen, "NEXT", x, padding+80)

	const previewCell = cellSize / 2
	top := float32(padding + 110)
	for i, kind := range snap.Preview {
		oy := top + float32(i*previewCell*4) + previewCell*2
		ox := l.sidebar + previewCell*2
		for _, off := range kind.Offsets() {
			px := ox + float32(off.X*previewCell)
			py := oy + float32(off.Y*previewCell)
			vector.DrawFilledRect(screen, px, py, previewCell, previewCell, l.kindColor(kind, 255), false)
			vector.StrokeRect(screen, px, py, previewCell, previewCell, 1, color.Black, false)
		}
	}
}

func (l layout) banner(screen *ebiten.Image, title, hint string) {
	vector.DrawFilledRect(screen, padding, padding+l.fieldH/2-40, l.fieldW, 80, color.RGBA{0, 0, 0, 200}, false)
	ebitenutil.DebugPrintAt(screen, title, padding+int(l.fieldW)/2-len(title)*3, padding+int(l.fieldH)/2-20)
	ebitenutil.DebugPrintAt(screen, hint, padding+int(l.fieldW)/2-len(hint)*3, padding+int(l.fieldH)/2)
}
