package board

import "math/bits"

// PieceID identifies a single piece instance across its lifetime on the
// board: 0-15 for white pieces, 16-31 for black, bit 4 carrying color. A
// piece keeps the same PieceID from the moment it is placed until it is
// captured or promoted away, even as it moves from square to square.
type PieceID uint8

// NoPieceID marks the absence of a piece where an Option would be used in a
// language with sum types.
const NoPieceID PieceID = 32

// IsWhite reports whether the id belongs to a white piece.
func (id PieceID) IsWhite() bool { return id < 16 }

// IsBlack reports whether the id belongs to a black piece.
func (id PieceID) IsBlack() bool { return id >= 16 && id < 32 }

// Color returns the color encoded in the id.
func (id PieceID) Color() Color {
	if id.IsWhite() {
		return White
	}
	return Black
}

// Bitlist is a 32-bit set of PieceIDs: bit i set means PieceID(i) is a
// member. It is the fundamental currency of the attack table, piece-kind
// classification, and pin bookkeeping.
type Bitlist uint32

// whiteMask and blackMask select the half of the id space belonging to each
// color.
const (
	whiteMask Bitlist = 0x0000FFFF
	blackMask Bitlist = 0xFFFF0000
)

// maskForColor returns whiteMask or blackMask.
func maskForColor(c Color) Bitlist {
	if c == White {
		return whiteMask
	}
	return blackMask
}

// bitlistFrom builds a singleton Bitlist containing only id.
func bitlistFrom(id PieceID) Bitlist {
	return Bitlist(1) << uint(id)
}

// Add sets the bit for id. Panics in debug builds if it was already set.
func (b *Bitlist) Add(id PieceID) {
	if debugChecks && *b&bitlistFrom(id) != 0 {
		panic("bitlist: attempted to add an id already present")
	}
	*b |= bitlistFrom(id)
}

// Remove clears the bit for id. Panics in debug builds if it was not set.
func (b *Bitlist) Remove(id PieceID) {
	if debugChecks && *b&bitlistFrom(id) == 0 {
		panic("bitlist: attempted to remove an id not present")
	}
	*b &^= bitlistFrom(id)
}

// Contains reports whether id is a member.
func (b Bitlist) Contains(id PieceID) bool {
	return b&bitlistFrom(id) != 0
}

// Empty reports whether the set has no members.
func (b Bitlist) Empty() bool {
	return b == 0
}

// Count returns the number of members.
func (b Bitlist) Count() int {
	return bits.OnesCount32(uint32(b))
}

// Peek returns the lowest-numbered member and true, or (NoPieceID, false) if
// the set is empty.
func (b Bitlist) Peek() (PieceID, bool) {
	if b == 0 {
		return NoPieceID, false
	}
	return PieceID(bits.TrailingZeros32(uint32(b))), true
}

// Pop returns the lowest-numbered member and a copy of b with that member
// removed, along with true; or (NoPieceID, b, false) if empty.
func (b Bitlist) Pop() (PieceID, Bitlist, bool) {
	id, ok := b.Peek()
	if !ok {
		return NoPieceID, b, false
	}
	return id, b &^ bitlistFrom(id), true
}

// ForEach calls yield for every member in ascending order, stopping early if
// yield returns false.
func (b Bitlist) ForEach(yield func(PieceID) bool) {
	for b != 0 {
		id, rest, _ := b.Pop()
		if !yield(id) {
			return
		}
		b = rest
	}
}
