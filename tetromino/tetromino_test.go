package tetromino_test

import (
	"errors"
	"testing"

	"github.com/plus3/blockfall/arena"
	"github.com/plus3/blockfall/tetromino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var spawn = tetromino.Point{X: 5, Y: -1}

type fixture struct {
	store *arena.Arena[tetromino.Block]
	grid  *tetromino.Grid
}

func newFixture() *fixture {
	return &fixture{
		store: arena.New[tetromino.Block](),
		grid:  tetromino.NewGrid(20, 10),
	}
}

func (f *fixture) settle(t *testing.T, points ...tetromino.Point) {
	t.Helper()
	for _, p := range points {
		id := f.store.Insert(tetromino.Block{Pos: p, Kind: tetromino.KindO})
		require.NoError(t, f.grid.Set(p, id))
	}
}

func (f *fixture) spawn(kind tetromino.Kind) *tetromino.Tetromino {
	return tetromino.New(kind, spawn, f.grid, f.store)
}

func columns(points [4]tetromino.Point) []int {
	out := make([]int, 0, 4)
	for _, p := range points {
		out = append(out, p.X)
	}
	return out
}

func TestNewPlacesBlocksAtSpawn(t *testing.T) {
	fx := newFixture()
	piece := fx.spawn(tetromino.KindI)

	assert.Equal(t, [4]tetromino.Point{{X: 5, Y: -1}, {X: 5, Y: -2}, {X: 5, Y: -3}, {X: 5, Y: 0}}, piece.Positions())
	assert.Equal(t, 4, fx.store.Len())
	assert.False(t, piece.Locked())
	assert.Panics(t, func() { fx.spawn(tetromino.KindNone) })
}

func TestMoveHorizontal(t *testing.T) {
	t.Run("free move shifts every block", func(t *testing.T) {
		fx := newFixture()
		piece := fx.spawn(tetromino.KindT)
		before := piece.Positions()

		require.True(t, piece.MoveHorizontal(-2))
		after := piece.Positions()
		for i := range after {
			assert.Equal(t, before[i].X-2, after[i].X)
			assert.Equal(t, before[i].Y, after[i].Y)
		}
	})

	t.Run("walls stop the piece", func(t *testing.T) {
		fx := newFixture()
		piece := fx.spawn(tetromino.KindT)

		moves := 0
		for piece.MoveHorizontal(1) {
			moves++
		}
		assert.Equal(t, 3, moves)
		assert.Equal(t, []int{8, 7, 9, 8}, columns(piece.Positions()))
	})

	t.Run("a single blocked block cancels the whole move", func(t *testing.T) {
		fx := newFixture()
		piece := fx.spawn(tetromino.KindT)
		for range 10 {
			require.Nil(t, piece.MoveDown())
		}
		// T now covers (5,9) (4,9) (6,9) and (5,8); only the top block meets (6,8).
		fx.settle(t, tetromino.Point{X: 6, Y: 8})
		before := piece.Positions()

		assert.True(t, piece.NextMoveHorizontalCollide(1))
		assert.False(t, piece.MoveHorizontal(1))
		assert.Equal(t, before, piece.Positions())
	})
}

func TestRotate(t *testing.T) {
	t.Run("O never rotates", func(t *testing.T) {
		fx := newFixture()
		piece := fx.spawn(tetromino.KindO)
		for range 5 {
			require.Nil(t, piece.MoveDown())
		}
		before := piece.Positions()

		assert.False(t, piece.Rotate())
		assert.Equal(t, before, piece.Positions())
	})

	t.Run("I turns about its pivot", func(t *testing.T) {
		fx := newFixture()
		piece := fx.spawn(tetromino.KindI)

		require.True(t, piece.Rotate())
		assert.Equal(t, [4]tetromino.Point{{X: 5, Y: -1}, {X: 6, Y: -1}, {X: 7, Y: -1}, {X: 4, Y: -1}}, piece.Positions())

		for range 3 {
			require.True(t, piece.Rotate())
		}
		assert.Equal(t, [4]tetromino.Point{{X: 5, Y: -1}, {X: 5, Y: -2}, {X: 5, Y: -3}, {X: 5, Y: 0}}, piece.Positions())
	})

	t.Run("wall rejects the whole rotation", func(t *testing.T) {
		fx := newFixture()
		piece := fx.spawn(tetromino.KindI)
		for piece.MoveHorizontal(-1) {
		}
		before := piece.Positions()

		assert.False(t, piece.Rotate())
		assert.Equal(t, before, piece.Positions())
	})

	t.Run("settled block rejects the whole rotation", func(t *testing.T) {
		fx := newFixture()
		piece := fx.spawn(tetromino.KindI)
		for range 5 {
			require.Nil(t, piece.MoveDown())
		}
		fx.settle(t, tetromino.Point{X: 7, Y: 4})
		before := piece.Positions()

		assert.False(t, piece.Rotate())
		assert.Equal(t, before, piece.Positions())
	})

	t.Run("floor rejects a rotation into row ROWS", func(t *testing.T) {
		fx := newFixture()
		piece := fx.spawn(tetromino.KindT)
		for range 20 {
			require.Nil(t, piece.MoveDown())
		}
		require.Equal(t, tetromino.Point{X: 5, Y: 19}, piece.Positions()[0])

		assert.False(t, piece.Rotate())
	})
}

func TestMoveDownLocksAtTheFloor(t *testing.T) {
	fx := newFixture()
	piece := fx.spawn(tetromino.KindI)

	for i := range 19 {
		require.Nil(t, piece.MoveDown(), "move %d", i+1)
	}
	assert.Equal(t, 19, piece.Positions()[3].Y)

	lock := piece.MoveDown()
	require.NotNil(t, lock)
	assert.Equal(t, tetromino.KindI, lock.Kind)
	assert.False(t, lock.Overflow)
	assert.Empty(t, lock.Faults)
	assert.Len(t, lock.Placed, 4)

	for y := 16; y < 20; y++ {
		assert.True(t, fx.grid.Occupied(tetromino.Point{X: 5, Y: y}), "row %d", y)
	}
	assert.Equal(t, 4, fx.grid.Count())
	assert.Equal(t, 4, fx.store.Len())
	assert.True(t, piece.Locked())
	assert.Equal(t, [4]arena.Id{}, piece.Blocks(), "ownership moves to the grid")
}

func TestInstantDrop(t *testing.T) {
	fx := newFixture()
	fx.settle(t, tetromino.Point{X: 5, Y: 19}, tetromino.Point{X: 6, Y: 19})
	piece := fx.spawn(tetromino.KindO)

	landing := [4]tetromino.Point{{X: 5, Y: 18}, {X: 5, Y: 17}, {X: 6, Y: 18}, {X: 6, Y: 17}}
	assert.Equal(t, landing, piece.LandingPositions())
	assert.Equal(t, -1, piece.Positions()[0].Y, "LandingPositions does not move the piece")

	lock := piece.InstantDrop()
	require.NotNil(t, lock)
	assert.Equal(t, landing, lock.Cells)
	assert.Len(t, lock.Placed, 4)
	assert.Equal(t, 6, fx.grid.Count())

	t.Run("spent piece ignores further commands", func(t *testing.T) {
		assert.Nil(t, piece.InstantDrop())
		assert.Nil(t, piece.MoveDown())
		assert.False(t, piece.MoveHorizontal(-1))
		assert.False(t, piece.Rotate())
		assert.Equal(t, 6, fx.grid.Count())
		assert.Equal(t, 6, fx.store.Len())
	})
}

func TestLockAboveTheFieldOverflows(t *testing.T) {
	fx := newFixture()
	for y := range 20 {
		fx.settle(t, tetromino.Point{X: 5, Y: y})
	}
	piece := fx.spawn(tetromino.KindT)

	lock := piece.MoveDown()
	require.NotNil(t, lock)
	assert.True(t, lock.Overflow)
	assert.Empty(t, lock.Placed)
	assert.Empty(t, lock.Faults)
	assert.Equal(t, 20, fx.store.Len(), "blocks above the field are released")
}

func TestLockRejectsOccupiedCells(t *testing.T) {
	fx := newFixture()
	fx.settle(t, tetromino.Point{X: 5, Y: 0})
	foreign := fx.grid.At(tetromino.Point{X: 5, Y: 0})

	piece := fx.spawn(tetromino.KindI)
	require.True(t, piece.Overlaps())

	lock := piece.MoveDown()
	require.NotNil(t, lock)
	require.Len(t, lock.Faults, 1)

	var perr *tetromino.PlacementError
	require.True(t, errors.As(lock.Faults[0], &perr))
	assert.Equal(t, tetromino.Point{X: 5, Y: 0}, perr.Pos)
	assert.ErrorIs(t, lock.Faults[0], tetromino.ErrCellOccupied)

	assert.True(t, lock.Overflow)
	assert.Empty(t, lock.Placed)
	assert.Equal(t, foreign, fx.grid.At(tetromino.Point{X: 5, Y: 0}), "grid keeps the settled block")
	assert.Equal(t, 1, fx.store.Len())
}

func TestRelease(t *testing.T) {
	fx := newFixture()
	piece := fx.spawn(tetromino.KindS)

	piece.Release()
	assert.Zero(t, fx.store.Len())
	assert.True(t, piece.Locked())
	assert.Nil(t, piece.MoveDown())
}
