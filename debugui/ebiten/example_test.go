package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/queue"
	"github.com/plus3/blockfall/timer"
)

// Game implements ebiten.Game and runs the frame loop between the overlay's
// frame markers.
type Game struct {
	loop    *loop.Loop
	overlay *debugui_ebiten.Overlay
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing stages
	g.overlay.BeginFrame()

	// Execute all stages, including the debugui stage
	g.loop.Once()

	// End ImGui frame after stages complete
	g.overlay.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	overlay := debugui_ebiten.NewOverlay("blockfall debug", 1280, 720)

	cfg := config.Default()
	clock := timer.NewSystemClock()
	f, err := field.New(cfg, clock, queue.NewSeeded(cfg.Seed, cfg.PreviewDepth))
	if err != nil {
		panic(err)
	}

	l := loop.New(clock)
	l.Register(field.NewDriver(f, nil))
	debugui.Attach(l, f)

	if err := ebiten.RunGame(&Game{loop: l, overlay: overlay}); err != nil {
		panic(err)
	}
}
