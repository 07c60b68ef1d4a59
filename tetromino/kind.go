package tetromino

import "fmt"

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists every playable kind.
var Kinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// offsets holds the canonical block offsets per kind. The first offset is
// the rotation pivot.
var offsets = [...][4]Point{
	KindI: {{0, 0}, {0, -1}, {0, -2}, {0, 1}},
	KindO: {{0, 0}, {0, -1}, {1, 0}, {1, -1}},
	KindT: {{0, 0}, {-1, 0}, {1, 0}, {0, -1}},
	KindS: {{0, 0}, {-1, 0}, {0, -1}, {1, -1}},
	KindZ: {{0, 0}, {1, 0}, {0, -1}, {-1, -1}},
	KindJ: {{0, 0}, {0, -1}, {0, 1}, {-1, 1}},
	KindL: {{0, 0}, {0, -1}, {0, 1}, {1, 1}},
}

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "-"
	}
}

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindL
}

// Rotates reports whether the kind changes shape when rotated.
func (k Kind) Rotates() bool {
	return k != KindO
}

// Offsets returns the canonical block offsets for k.
func (k Kind) Offsets() [4]Point {
	if !k.Valid() {
		return [4]Point{}
	}
	return offsets[k]
}

// ParseKind converts a one-letter name back into a Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("unknown tetromino kind %q", name)
}
