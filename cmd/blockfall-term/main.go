package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/queue"
	"github.com/plus3/blockfall/timer"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML rules file")
	seed := flag.Uint64("seed", 0, "Piece queue seed (0 picks one at random)")
	logPath := flag.String("log", "", "Write log output to this file instead of discarding it")
	mute := flag.Bool("mute", false, "Disable sound cues")
	fps := flag.Int("fps", 60, "Frames per second")
	flag.Parse()

	if err := run(*configPath, *seed, *logPath, *mute, *fps); err != nil {
		fmt.Fprintf(os.Stderr, "blockfall-term: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed uint64, logPath string, mute bool, fps int) error {
	// The terminal belongs to tcell, so log output goes to a file or nowhere.
	if logPath != "" {
		logFile, err := os.Create(logPath)
		if err != nil {
			return err
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	var sound *soundCues
	if !mute {
		sound, err = newSoundCues()
		if err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("audio initialization failed: %v", err)
		} else {
			defer sound.Close()
		}
	}

	clock := timer.NewSystemClock()
	f, err := field.New(cfg, clock, queue.NewSeeded(cfg.Seed, cfg.PreviewDepth))
	if err != nil {
		return err
	}
	if sound != nil {
		f.OnEvent(sound.Handle)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan tcell.Event, 100)
	go pumpEvents(ctx, screen.PollEvent, events)

	input := &inputStage{
		events: events,
		keys:   newHoldKeys(clock, holdWindow),
		quit:   cancel,
		screen: screen,
	}

	l := loop.New(clock)
	l.Register(input)
	l.Register(field.NewDriver(f, input.keys))
	l.Register(&renderStage{screen: screen, field: f, cfg: cfg})

	l.Run(ctx, time.Second/time.Duration(max(fps, 1)))
	return nil
}
