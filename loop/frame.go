package loop

import "time"

// Frame is handed to every stage during one pass of the loop.
type Frame struct {
	Now   time.Duration
	Delta time.Duration

	deferred []func()
}

func newFrame(now, delta time.Duration) *Frame {
	return &Frame{
		Now:   now,
		Delta: delta,
	}
}

// Defer queues fn to run after every stage has executed.
func (f *Frame) Defer(fn func()) {
	f.deferred = append(f.deferred, fn)
}

func (f *Frame) flush() {
	for _, fn := range f.deferred {
		fn()
	}
	f.deferred = f.deferred[:0]
}
