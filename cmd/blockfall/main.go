package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/queue"
	"github.com/plus3/blockfall/timer"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML rules file")
	seed := flag.Uint64("seed", 0, "Piece queue seed (0 picks one at random)")
	debug := flag.Bool("debug", false, "Show the Dear ImGui inspector windows")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	layout := newLayout(cfg)

	var overlay *debugui_ebiten.Overlay
	if *debug {
		overlay = debugui_ebiten.NewOverlay("blockfall", layout.width+debugWidth, layout.height)
	} else {
		ebiten.SetWindowSize(layout.width, layout.height)
		ebiten.SetWindowTitle("blockfall")
	}

	clock := timer.NewSystemClock()
	f, err := field.New(cfg, clock, queue.NewSeeded(cfg.Seed, cfg.PreviewDepth))
	if err != nil {
		log.Fatalf("creating field: %v", err)
	}
	f.OnEvent(func(ev field.Event) {
		switch ev.Kind {
		case field.EventGameOver:
			log.Printf("game over: score %d, lines %d, level %d", ev.Score, ev.Lines, ev.Level)
		case field.EventLevelUp:
			log.Printf("level %d", ev.Level)
		}
	})

	game := &Game{
		field:   f,
		layout:  layout,
		overlay: overlay,
	}

	l := loop.New(clock)
	l.Register(field.NewDriver(f, field.KeySourceFunc(game.keys)))
	if overlay != nil {
		game.debug = debugui.Attach(l, f)
	}
	game.loop = l

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
