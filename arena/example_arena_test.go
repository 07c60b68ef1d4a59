package arena_test

import (
	"fmt"

	"github.com/plus3/blockfall/arena"
)

// ExampleArena shows ids going stale once their value is removed.
// A stale id is safe to hold: lookups simply return nil.
func ExampleArena() {
	blocks := arena.New[string]()

	a := blocks.Insert("cyan")
	b := blocks.Insert("purple")

	blocks.Remove(a)

	fmt.Println(blocks.Len())
	fmt.Println(blocks.Get(a) == nil)
	fmt.Println(*blocks.Get(b))
	// Output:
	// 1
	// true
	// purple
}
