package tetromino

import (
	"fmt"

	"github.com/plus3/blockfall/arena"
)

// Lock describes a tetromino that has come to rest. Blocks listed in Placed
// now belong to the grid; every other block of the piece has been released.
type Lock struct {
	Kind  Kind
	Cells [4]Point

	Placed []arena.Id

	// Overflow is set when at least one block came to rest above the
	// visible field.
	Overflow bool

	// Faults lists writes that were rejected to keep the grid consistent.
	Faults []error
}

// PlacementError reports a block that could not be written into the grid.
type PlacementError struct {
	Pos Point
	Err error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("placing block at %s: %v", e.Pos, e.Err)
}

func (e *PlacementError) Unwrap() error {
	return e.Err
}
