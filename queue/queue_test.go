package queue_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/queue"
	"github.com/plus3/blockfall/tetromino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewDepth(t *testing.T) {
	q := queue.NewSeeded(7, 3)

	preview := q.Preview()
	require.Len(t, preview, 3)
	for _, k := range preview {
		assert.True(t, k.Valid())
	}
}

func TestNextFollowsPreview(t *testing.T) {
	q := queue.NewSeeded(11, 3)

	for range 50 {
		preview := q.Preview()
		next := q.Next()
		assert.Equal(t, preview[0], next)
		assert.Equal(t, preview[1:], q.Preview()[:2], "remaining kinds shift forward")
		assert.Len(t, q.Preview(), 3)
	}
}

func TestPreviewIsACopy(t *testing.T) {
	q := queue.NewSeeded(3, 3)

	preview := q.Preview()
	preview[0] = tetromino.KindNone
	assert.NotEqual(t, tetromino.KindNone, q.Preview()[0])
}

func TestSameSeedSameSequence(t *testing.T) {
	a := queue.NewSeeded(99, 3)
	b := queue.NewSeeded(99, 3)

	for range 100 {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestEveryKindIsDrawn(t *testing.T) {
	q := queue.New(rand.New(rand.NewPCG(1, 2)), 1)

	seen := map[tetromino.Kind]int{}
	for range 7000 {
		seen[q.Next()]++
	}

	assert.Len(t, seen, 7)
	for _, k := range tetromino.Kinds {
		assert.Greater(t, seen[k], 700, "kind %s drawn too rarely for a uniform choice", k)
	}
}

func TestReset(t *testing.T) {
	q := queue.NewSeeded(5, 3)
	q.Next()
	q.Reset()
	assert.Len(t, q.Preview(), 3)
}

func TestDepthIsAtLeastOne(t *testing.T) {
	q := queue.NewSeeded(5, 0)
	assert.Len(t, q.Preview(), 1)
}
