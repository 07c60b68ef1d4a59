package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/loop"
)

// Game implements ebiten.Game. Every Update runs one pass of the frame
// loop, so the field is only ever touched from Ebiten's update goroutine.
type Game struct {
	field   *field.Field
	loop    *loop.Loop
	layout  layout
	overlay *debugui_ebiten.Overlay
	debug   *debugui.Stage
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.overlay != nil {
		g.overlay.BeginFrame()
	}

	g.loop.Once()

	if g.overlay != nil {
		g.overlay.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.field.Snapshot()
	g.layout.draw(screen, &snap)

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.layout.width, g.layout.height
}

// keys polls the keyboard. Keys typed into a debug window are not passed
// on to the field.
func (g *Game) keys() field.Keys {
	if g.debug != nil && g.debug.Input().WantCaptureKeyboard {
		return field.Keys{}
	}

	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}

	return field.Keys{
		Left:     pressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:    pressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Rotate:   pressed(ebiten.KeyArrowUp, ebiten.KeyW),
		SoftDrop: pressed(ebiten.KeyArrowDown, ebiten.KeyS),
		HardDrop: pressed(ebiten.KeySpace),
		Pause:    pressed(ebiten.KeyP),
		Restart:  pressed(ebiten.KeyR),
	}
}
