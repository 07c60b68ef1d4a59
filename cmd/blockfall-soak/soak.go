package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/queue"
	"github.com/plus3/blockfall/tetromino"
	"github.com/plus3/blockfall/timer"
)

const frameStep = 16 * time.Millisecond

// bot presses random keys, favouring holds so the debounce timers see
// repeated input.
type bot struct {
	rng  *rand.Rand
	keys field.Keys
	hold int
}

func (b *bot) Keys() field.Keys {
	if b.hold > 0 {
		b.hold--
		return b.keys
	}

	b.hold = b.rng.IntN(20)
	b.keys = field.Keys{
		Left:     b.rng.IntN(4) == 0,
		Right:    b.rng.IntN(4) == 0,
		Rotate:   b.rng.IntN(3) == 0,
		SoftDrop: b.rng.IntN(3) == 0,
		HardDrop: b.rng.IntN(8) == 0,
		Pause:    b.rng.IntN(200) == 0,
	}
	return b.keys
}

// checker is a loop stage that verifies the field after every frame.
type checker struct {
	field  *field.Field
	report *Report
	game   int

	score   int
	lines   int
	level   int
	gravity time.Duration
}

func (c *checker) violation(format string, args ...any) {
	msg := fmt.Sprintf("game %d: ", c.game) + fmt.Sprintf(format, args...)
	c.report.Violations = append(c.report.Violations, msg)
	log.Print(msg)
}

func (c *checker) Execute(frame *loop.Frame) {
	f := c.field
	if f.Score() < c.score {
		c.violation("score went from %d to %d", c.score, f.Score())
	}
	if f.Lines() < c.lines {
		c.violation("lines went from %d to %d", c.lines, f.Lines())
	}
	if f.Level() < c.level {
		c.violation("level went from %d to %d", c.level, f.Level())
	}
	if c.gravity != 0 && f.Gravity() > c.gravity {
		c.violation("gravity slowed from %s to %s", c.gravity, f.Gravity())
	}
	c.score, c.lines, c.level, c.gravity = f.Score(), f.Lines(), f.Level(), f.Gravity()

	snap := f.Snapshot()
	if snap.GameOver {
		return
	}
	for _, p := range snap.Active {
		if p.X < 0 || p.X >= snap.Columns || p.Y >= snap.Rows {
			c.violation("active block outside the field at %s", p)
		}
		if snap.At(p.X, p.Y) != tetromino.KindNone {
			c.violation("active block overlaps a settled block at %s", p)
		}
	}
	for y := range snap.Rows {
		full := true
		for x := range snap.Columns {
			full = full && snap.At(x, y) != tetromino.KindNone
		}
		if full {
			c.violation("row %d left full after a clear", y)
		}
	}
}

// run plays games until the configured count or the wall-clock budget is
// exhausted, accumulating results into report.
func run(cfg config.Config, report *Report) {
	deadline := time.Now().Add(report.Duration)
	rng := rand.New(rand.NewPCG(report.Seed, report.Seed+1))

	for game := range report.Games {
		if time.Now().After(deadline) {
			log.Printf("Duration exhausted after %d games", game)
			break
		}
		playGame(cfg, report, game, rng.Uint64())
	}

	report.UpdateTime.Finalize()
}

func playGame(cfg config.Config, report *Report, game int, seed uint64) {
	clock := timer.NewManualClock(time.Millisecond)
	f, err := field.New(cfg, clock, queue.NewSeeded(seed|1, cfg.PreviewDepth))
	if err != nil {
		log.Fatalf("creating field: %v", err)
	}

	f.OnEvent(func(ev field.Event) {
		switch ev.Kind {
		case field.EventLocked:
			report.Locks++
		case field.EventScoreChanged:
			report.Clears[min(ev.Rows, 4)-1]++
		case field.EventFault:
			report.Faults = append(report.Faults, fmt.Sprintf("game %d: %v", game, ev.Err))
		}
	})

	l := loop.New(clock)
	l.Register(field.NewDriver(f, &bot{rng: rand.New(rand.NewPCG(seed, seed^0xABCDEF))}))
	l.Register(&checker{field: f, report: report, game: game})

	frames := 0
	for frames < report.FramesPerGame && !f.GameOver() {
		clock.Advance(frameStep)

		start := time.Now()
		l.Once()
		report.UpdateTime.Add(time.Since(start))
		frames++
	}

	report.GamesPlayed++
	report.TotalFrames += int64(frames)
	report.TotalLines += f.Lines()
	report.MaxScore = max(report.MaxScore, f.Score())
	report.MaxLevel = max(report.MaxLevel, f.Level())
	if f.GameOver() {
		report.GameOvers++
	}
}
