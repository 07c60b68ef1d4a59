// Package arena stores values in stable, generation-checked slots.
// Values are addressed by Id instead of by pointer, so an Id can be copied
// into lookup tables (such as a play-field grid) without aliasing the value.
package arena

import "iter"

const (
	chunkSize = 64
)

// Arena holds values of type T in chunks of fixed-size slots.
// Removing a value bumps the slot generation so outstanding ids go stale.
type Arena[T any] struct {
	chunks    [][chunkSize]T
	gens      [][chunkSize]uint32
	filled    [][chunkSize]bool
	freeSlots []int
	nextIndex int
	live      int
}

// New creates an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores a value and returns its id.
func (a *Arena[T]) Insert(value T) Id {
	var index int
	if len(a.freeSlots) > 0 {
		index = a.freeSlots[len(a.freeSlots)-1]
		a.freeSlots = a.freeSlots[:len(a.freeSlots)-1]
	} else {
		index = a.nextIndex
		a.nextIndex++

		if index/chunkSize >= len(a.chunks) {
			a.chunks = append(a.chunks, [chunkSize]T{})
			a.gens = append(a.gens, [chunkSize]uint32{})
			a.filled = append(a.filled, [chunkSize]bool{})
		}
	}

	chunkIdx := index / chunkSize
	slotIdx := index % chunkSize

	// generation 0 is reserved so that Id(0) is never live
	if a.gens[chunkIdx][slotIdx] == 0 {
		a.gens[chunkIdx][slotIdx] = 1
	}

	a.chunks[chunkIdx][slotIdx] = value
	a.filled[chunkIdx][slotIdx] = true
	a.live++

	return NewId(a.gens[chunkIdx][slotIdx], uint32(index))
}

// slot resolves an id to its chunk and slot, or false if the id is stale.
func (a *Arena[T]) slot(id Id) (int, int, bool) {
	if id == 0 {
		return 0, 0, false
	}

	index := int(id.Index())
	chunkIdx := index / chunkSize
	slotIdx := index % chunkSize

	if chunkIdx >= len(a.chunks) {
		return 0, 0, false
	}
	if !a.filled[chunkIdx][slotIdx] || a.gens[chunkIdx][slotIdx] != id.Generation() {
		return 0, 0, false
	}
	return chunkIdx, slotIdx, true
}

// Get returns a pointer to the value for id, or nil if the id is stale.
// The pointer is only valid until the value is removed.
func (a *Arena[T]) Get(id Id) *T {
	chunkIdx, slotIdx, ok := a.slot(id)
	if !ok {
		return nil
	}
	return &a.chunks[chunkIdx][slotIdx]
}

// Contains reports whether id refers to a live value.
func (a *Arena[T]) Contains(id Id) bool {
	_, _, ok := a.slot(id)
	return ok
}

// Remove deletes the value for id. It returns false if the id was already stale.
func (a *Arena[T]) Remove(id Id) bool {
	chunkIdx, slotIdx, ok := a.slot(id)
	if !ok {
		return false
	}

	var zero T
	a.chunks[chunkIdx][slotIdx] = zero
	a.filled[chunkIdx][slotIdx] = false
	a.gens[chunkIdx][slotIdx]++
	if a.gens[chunkIdx][slotIdx] == 0 {
		a.gens[chunkIdx][slotIdx] = 1
	}
	a.freeSlots = append(a.freeSlots, int(id.Index()))
	a.live--
	return true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.live
}

// Clear removes every value. Ids handed out before Clear go stale.
func (a *Arena[T]) Clear() {
	for id := range a.All() {
		a.Remove(id)
	}
}

// All returns an iterator over live ids and pointers to their values, in slot order.
// Removing the current value during iteration is allowed.
func (a *Arena[T]) All() iter.Seq2[Id, *T] {
	return func(yield func(Id, *T) bool) {
		for i := 0; i < a.nextIndex; i++ {
			chunkIdx := i / chunkSize
			slotIdx := i % chunkSize

			if !a.filled[chunkIdx][slotIdx] {
				continue
			}

			id := NewId(a.gens[chunkIdx][slotIdx], uint32(i))
			if !yield(id, &a.chunks[chunkIdx][slotIdx]) {
				return
			}
		}
	}
}
