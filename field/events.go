package field

import "github.com/plus3/blockfall/tetromino"

type EventKind uint8

const (
	EventLocked EventKind = iota + 1
	EventScoreChanged
	EventLevelUp
	EventGameOver
	EventFault
	EventPaused
	EventResumed
	EventRestarted
)

func (k EventKind) String() string {
	switch k {
	case EventLocked:
		return "locked"
	case EventScoreChanged:
		return "score"
	case EventLevelUp:
		return "level-up"
	case EventGameOver:
		return "game-over"
	case EventFault:
		return "fault"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is a notification about a state change. Only the fields relevant
// to Kind are set.
type Event struct {
	Kind EventKind

	// Piece and Cells describe a lock.
	Piece tetromino.Kind
	Cells []tetromino.Point

	// Rows is the size of a row-clear batch.
	Rows int

	Score int
	Lines int
	Level int

	Err error
}

// OnEvent registers fn to receive events. Events raised during a call to
// Input, Update, MoveDown, Restart or one of the exported post-lock steps
// (CheckFinishedRows, CalculateScore, CheckGameOver, CreateNewTetromino)
// are delivered in order when the outermost call returns.
func (f *Field) OnEvent(fn func(Event)) {
	f.listeners = append(f.listeners, fn)
}

func (f *Field) emit(ev Event) {
	f.pending = append(f.pending, ev)
}

func (f *Field) flush() {
	if f.flushing {
		return
	}
	f.flushing = true
	defer func() { f.flushing = false }()

	for i := 0; i < len(f.pending); i++ {
		ev := f.pending[i]
		for _, fn := range f.listeners {
			fn(ev)
		}
	}
	f.pending = f.pending[:0]
}
