package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/timer"
)

// Terminals report key presses and auto-repeats but never releases. A key
// counts as held while its last press is younger than holdWindow.
const holdWindow = 120 * time.Millisecond

type action int

const (
	actionLeft action = iota
	actionRight
	actionRotate
	actionSoftDrop
	actionHardDrop
	actionPause
	actionRestart
	actionCount
)

// holdKeys turns press events into per-frame key state. Hard drop, pause
// and restart are pulses seen by exactly one frame.
type holdKeys struct {
	clock  timer.Clock
	window time.Duration
	last   [actionCount]time.Duration
	seen   [actionCount]bool
	pulse  [actionCount]bool
}

func newHoldKeys(clock timer.Clock, window time.Duration) *holdKeys {
	return &holdKeys{clock: clock, window: window}
}

func (h *holdKeys) press(a action) {
	switch a {
	case actionHardDrop, actionPause, actionRestart:
		h.pulse[a] = true
	default:
		h.last[a] = h.clock.Now()
		h.seen[a] = true
	}
}

func (h *holdKeys) held(a action) bool {
	return h.seen[a] && h.clock.Now()-h.last[a] < h.window
}

// Keys implements field.KeySource.
func (h *holdKeys) Keys() field.Keys {
	keys := field.Keys{
		Left:     h.held(actionLeft),
		Right:    h.held(actionRight),
		Rotate:   h.held(actionRotate),
		SoftDrop: h.held(actionSoftDrop),
		HardDrop: h.pulse[actionHardDrop],
		Pause:    h.pulse[actionPause],
		Restart:  h.pulse[actionRestart],
	}
	h.pulse = [actionCount]bool{}
	return keys
}

func actionFor(ev *tcell.EventKey) (action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actionLeft, true
	case tcell.KeyRight:
		return actionRight, true
	case tcell.KeyUp:
		return actionRotate, true
	case tcell.KeyDown:
		return actionSoftDrop, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			return actionLeft, true
		case 'd', 'l':
			return actionRight, true
		case 'w', 'k':
			return actionRotate, true
		case 's', 'j':
			return actionSoftDrop, true
		case ' ':
			return actionHardDrop, true
		case 'p':
			return actionPause, true
		case 'r':
			return actionRestart, true
		}
	}
	return 0, false
}

// pumpEvents forwards polled events to out until poll returns nil or ctx
// is cancelled.
func pumpEvents(ctx context.Context, poll func() tcell.Event, out chan<- tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// inputStage drains terminal events gathered by the polling goroutine.
type inputStage struct {
	events <-chan tcell.Event
	keys   *holdKeys
	quit   func()
	screen tcell.Screen
}

func (s *inputStage) Execute(frame *loop.Frame) {
	for {
		select {
		case ev := <-s.events:
			s.handle(ev)
		default:
			return
		}
	}
}

func (s *inputStage) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			s.quit()
			return
		}
		if a, ok := actionFor(ev); ok {
			s.keys.press(a)
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
}
