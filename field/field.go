// Package field owns one game of falling blocks: the settled grid, the
// active tetromino, the gravity and debounce timers, and the score, line and
// level progression.
//
// A Field is not safe for concurrent use. Every mutating call must come
// from the goroutine that drives the frame loop.
package field

import (
	"fmt"
	"log"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/arena"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/tetromino"
	"github.com/plus3/blockfall/timer"
)

// Source supplies the kind of the next tetromino. It is called exactly once
// per spawn.
type Source interface {
	Next() tetromino.Kind
}

// Previewer is implemented by sources that can show upcoming kinds.
type Previewer interface {
	Preview() []tetromino.Kind
}

// Resetter is implemented by sources that refill on restart.
type Resetter interface {
	Reset()
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() tetromino.Kind

func (fn SourceFunc) Next() tetromino.Kind {
	return fn()
}

// Field is the game state of a single player.
type Field struct {
	cfg    config.Config
	clock  *timer.PausableClock
	source Source
	logger *log.Logger

	grid    *tetromino.Grid
	blocks  *arena.Arena[tetromino.Block]
	settled *intmap.Map[arena.Id, struct{}]
	current *tetromino.Tetromino
	last    *tetromino.Lock

	gravityTimer *timer.Timer
	moveTimer    *timer.Timer
	rotateTimer  *timer.Timer
	dropTimer    *timer.Timer

	gravity     time.Duration
	fastGravity time.Duration
	downPressed bool
	prev        Keys

	score int
	lines int
	level int

	gameOver bool

	pending   []Event
	listeners []func(Event)
	flushing  bool
}

// New creates a field and spawns its first tetromino from source.
func New(cfg config.Config, clock timer.Clock, source Source) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("field: %w", err)
	}
	if source == nil {
		return nil, fmt.Errorf("field: nil source")
	}

	f := &Field{
		cfg:     cfg.Clone(),
		clock:   timer.NewPausableClock(clock),
		source:  source,
		logger:  log.Default(),
		grid:    tetromino.NewGrid(cfg.Rows, cfg.Columns),
		blocks:  arena.New[tetromino.Block](),
		settled: intmap.New[arena.Id, struct{}](cfg.Rows * cfg.Columns),
	}

	f.gravityTimer = timer.New(f.clock, cfg.Gravity, true, f.moveDown)
	f.moveTimer = timer.New(f.clock, cfg.MoveDelay, false, nil)
	f.rotateTimer = timer.New(f.clock, cfg.RotateDelay, false, nil)
	f.dropTimer = timer.New(f.clock, cfg.DropDelay, false, nil)

	f.reset()
	f.spawn()
	return f, nil
}

// SetLogger replaces the logger used to report internal faults. A nil
// logger restores the standard logger.
func (f *Field) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	f.logger = logger
}

func (f *Field) reset() {
	f.score = 0
	f.lines = 0
	f.level = 1
	f.gravity = f.cfg.Gravity
	f.fastGravity = f.clampGravity(time.Duration(float64(f.gravity) * f.cfg.FastDropFactor))
	f.downPressed = false
	f.gameOver = false
	f.last = nil

	for _, t := range f.timerSet() {
		t.Deactivate()
	}
	f.gravityTimer.SetDuration(f.gravity)
	f.gravityTimer.Activate()
}

func (f *Field) timerSet() [4]*timer.Timer {
	return [4]*timer.Timer{f.gravityTimer, f.moveTimer, f.rotateTimer, f.dropTimer}
}

func (f *Field) clampGravity(d time.Duration) time.Duration {
	return max(d, f.cfg.MinGravity)
}

func (f *Field) spawnPoint() tetromino.Point {
	return tetromino.Point{X: f.cfg.SpawnColumn, Y: f.cfg.SpawnRow}
}

// spawn creates the next tetromino. A piece that appears on top of settled
// blocks ends the game instead of entering play.
func (f *Field) spawn() {
	kind := f.source.Next()
	if !kind.Valid() {
		f.fault(fmt.Errorf("field: source returned invalid kind %d", kind))
		kind = tetromino.KindI
	}

	piece := tetromino.New(kind, f.spawnPoint(), f.grid, f.blocks)
	if piece.Overlaps() {
		piece.Release()
		f.current = nil
		f.endGame()
		return
	}
	f.current = piece
}

func (f *Field) endGame() {
	if f.gameOver {
		return
	}
	f.gameOver = true
	f.downPressed = false
	f.emit(Event{Kind: EventGameOver, Score: f.score, Lines: f.lines, Level: f.level})
}

func (f *Field) fault(err error) {
	f.logger.Printf("field: %v", err)
	f.emit(Event{Kind: EventFault, Err: err})
}

// Update ticks every timer. The gravity timer moves the active piece down.
func (f *Field) Update() {
	defer f.flush()

	if f.gameOver || f.clock.Paused() {
		return
	}
	for _, t := range f.timerSet() {
		t.Update()
	}
}

// MoveDown drops the active piece one row, locking it when it lands.
func (f *Field) MoveDown() {
	defer f.flush()
	f.moveDown()
}

func (f *Field) moveDown() {
	if f.current == nil || f.gameOver {
		return
	}
	if lock := f.current.MoveDown(); lock != nil {
		f.settle(lock)
	}
}

// settle takes ownership of the blocks a lock placed and moves the game on
// to the next piece.
func (f *Field) settle(lock *tetromino.Lock) {
	f.last = lock
	for _, id := range lock.Placed {
		f.settled.Put(id, struct{}{})
	}
	for _, err := range lock.Faults {
		f.fault(err)
	}

	cells := lock.Cells
	f.emit(Event{Kind: EventLocked, Piece: lock.Kind, Cells: cells[:]})

	f.createNewTetromino()
}

// CheckGameOver ends the game when the last piece locked with part of
// itself above the visible field.
func (f *Field) CheckGameOver() bool {
	defer f.flush()
	return f.checkGameOver()
}

func (f *Field) checkGameOver() bool {
	if f.last != nil && f.last.Overflow {
		f.endGame()
	}
	return f.gameOver
}

// CreateNewTetromino runs the post-lock sequence: game over check, row
// clearing, then spawning the next piece.
func (f *Field) CreateNewTetromino() {
	defer f.flush()
	f.createNewTetromino()
}

func (f *Field) createNewTetromino() {
	f.checkGameOver()
	f.checkFinishedRows()

	if f.gameOver {
		f.current = nil
		return
	}
	f.spawn()
}

// Restart discards the current game and starts a new one.
func (f *Field) Restart() {
	defer f.flush()
	f.restart()
}

func (f *Field) restart() {
	if f.current != nil {
		f.current.Release()
		f.current = nil
	}
	f.blocks.Clear()
	f.settled.Clear()
	f.grid.Reset()
	f.clock.Resume()
	f.reset()

	if r, ok := f.source.(Resetter); ok {
		r.Reset()
	}

	f.emit(Event{Kind: EventRestarted})
	f.spawn()
}

func (f *Field) Score() int {
	return f.score
}

func (f *Field) Lines() int {
	return f.lines
}

func (f *Field) Level() int {
	return f.level
}

func (f *Field) GameOver() bool {
	return f.gameOver
}

func (f *Field) Paused() bool {
	return f.clock.Paused()
}

// Gravity returns the current interval between automatic drops, ignoring
// soft drop.
func (f *Field) Gravity() time.Duration {
	return f.gravity
}

// Config returns the rules the field was created with.
func (f *Field) Config() config.Config {
	return f.cfg.Clone()
}

// Current returns the active piece, or nil once the game is over.
func (f *Field) Current() *tetromino.Tetromino {
	return f.current
}

// Preview returns the upcoming kinds when the source exposes them.
func (f *Field) Preview() []tetromino.Kind {
	if p, ok := f.source.(Previewer); ok {
		return p.Preview()
	}
	return nil
}

// TimerState is a read-only view of one of the field timers.
type TimerState struct {
	Name     string
	Active   bool
	Repeat   bool
	Duration time.Duration
	Elapsed  time.Duration
}

// Timers reports the gravity, move, rotate and drop timers in tick order.
func (f *Field) Timers() []TimerState {
	names := [4]string{"gravity", "move", "rotate", "drop"}
	out := make([]TimerState, 0, len(names))
	for i, t := range f.timerSet() {
		out = append(out, TimerState{
			Name:     names[i],
			Active:   t.Active(),
			Repeat:   t.Repeat(),
			Duration: t.Duration(),
			Elapsed:  t.Elapsed(),
		})
	}
	return out
}
