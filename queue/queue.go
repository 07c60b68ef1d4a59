// Package queue supplies the next tetromino kind and keeps a short preview
// of upcoming kinds. Every kind is an independent uniform draw.
package queue

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/tetromino"
)

// Queue hands out kinds in the order they were previewed.
type Queue struct {
	rng     *rand.Rand
	depth   int
	pending []tetromino.Kind
}

// New creates a queue whose preview holds depth kinds.
func New(rng *rand.Rand, depth int) *Queue {
	if depth < 1 {
		depth = 1
	}
	q := &Queue{
		rng:     rng,
		depth:   depth,
		pending: make([]tetromino.Kind, 0, depth),
	}
	q.fill()
	return q
}

// NewSeeded creates a queue backed by a PCG source. A zero seed picks a
// random one.
func NewSeeded(seed uint64, depth int) *Queue {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return New(rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)), depth)
}

func (q *Queue) draw() tetromino.Kind {
	return tetromino.Kinds[q.rng.IntN(len(tetromino.Kinds))]
}

func (q *Queue) fill() {
	for len(q.pending) < q.depth {
		q.pending = append(q.pending, q.draw())
	}
}

// Next removes and returns the head of the preview, then tops it up.
func (q *Queue) Next() tetromino.Kind {
	next := q.pending[0]
	q.pending = append(q.pending[:0], q.pending[1:]...)
	q.fill()
	return next
}

// Preview returns a copy of the upcoming kinds, soonest first.
func (q *Queue) Preview() []tetromino.Kind {
	out := make([]tetromino.Kind, len(q.pending))
	copy(out, q.pending)
	return out
}

// Reset discards the preview and draws a fresh one.
func (q *Queue) Reset() {
	q.pending = q.pending[:0]
	q.fill()
}
