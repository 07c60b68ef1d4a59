package arena_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cell struct {
	X, Y int
}

func TestIdEncoding(t *testing.T) {
	tests := []struct {
		generation uint32
		index      uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("generation=%d,index=%d", tt.generation, tt.index), func(t *testing.T) {
			id := arena.NewId(tt.generation, tt.index)
			assert.Equal(t, tt.generation, id.Generation())
			assert.Equal(t, tt.index, id.Index())
		})
	}
}

func TestInsertAndGet(t *testing.T) {
	a := arena.New[cell]()

	id := a.Insert(cell{X: 3, Y: 4})
	assert.NotEqual(t, arena.Id(0), id)
	assert.Equal(t, 1, a.Len())

	c := a.Get(id)
	require.NotNil(t, c)
	assert.Equal(t, cell{X: 3, Y: 4}, *c)

	c.Y++
	assert.Equal(t, 5, a.Get(id).Y)
}

func TestZeroIdIsNeverLive(t *testing.T) {
	a := arena.New[cell]()
	a.Insert(cell{})

	assert.Nil(t, a.Get(0))
	assert.False(t, a.Contains(0))
	assert.False(t, a.Remove(0))
}

func TestRemoveMakesIdStale(t *testing.T) {
	a := arena.New[cell]()

	id := a.Insert(cell{X: 1})
	require.True(t, a.Remove(id))
	assert.False(t, a.Remove(id), "second removal must report a stale id")
	assert.Nil(t, a.Get(id))
	assert.Equal(t, 0, a.Len())

	reused := a.Insert(cell{X: 2})
	assert.Equal(t, id.Index(), reused.Index(), "free slot should be reused")
	assert.NotEqual(t, id, reused, "reused slot must carry a new generation")
	assert.Nil(t, a.Get(id))
	assert.Equal(t, 2, a.Get(reused).X)
}

func TestGrowsAcrossChunks(t *testing.T) {
	a := arena.New[cell]()

	ids := make([]arena.Id, 0, 200)
	for i := range 200 {
		ids = append(ids, a.Insert(cell{X: i}))
	}

	assert.Equal(t, 200, a.Len())
	for i, id := range ids {
		assert.Equal(t, i, a.Get(id).X)
	}
}

func TestAllSkipsRemoved(t *testing.T) {
	a := arena.New[cell]()

	var ids []arena.Id
	for i := range 10 {
		ids = append(ids, a.Insert(cell{X: i}))
	}
	for i := 0; i < 10; i += 2 {
		a.Remove(ids[i])
	}

	var seen []int
	for id, c := range a.All() {
		assert.True(t, a.Contains(id))
		seen = append(seen, c.X)
	}
	assert.Equal(t, []int{1, 3, 5, 7, 9}, seen)
}

func TestRemoveDuringIteration(t *testing.T) {
	a := arena.New[cell]()
	for i := range 5 {
		a.Insert(cell{X: i})
	}

	for id, c := range a.All() {
		if c.X%2 == 1 {
			a.Remove(id)
		}
	}
	assert.Equal(t, 3, a.Len())
}

func TestClear(t *testing.T) {
	a := arena.New[cell]()
	first := a.Insert(cell{X: 1})
	a.Insert(cell{X: 2})

	a.Clear()

	assert.Equal(t, 0, a.Len())
	assert.False(t, a.Contains(first))

	count := 0
	for range a.All() {
		count++
	}
	assert.Zero(t, count)
}
