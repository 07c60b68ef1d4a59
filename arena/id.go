package arena

// Id encodes both the slot generation (upper 32 bits) and the slot index (lower 32 bits).
// The zero Id never refers to a live value.
type Id uint64

// NewId creates an Id from a generation and a slot index
func NewId(generation uint32, index uint32) Id {
	return Id(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the slot generation from the id
func (id Id) Generation() uint32 {
	return uint32(id >> 32)
}

// Index extracts the slot index from the id
func (id Id) Index() uint32 {
	return uint32(id & 0xFFFFFFFF)
}
