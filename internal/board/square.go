// Package board implements the move generator core: piece-identifier based
// attack tracking, pin discovery, legal move generation and perft.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	file := int(s[0] - 'a')
	rank := int(s[1] - '1')

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return NewSquare(file, rank), nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// relativeNorth returns the square one rank "forward" for c, or NoSquare if
// that would fall off the board.
func (sq Square) relativeNorth(c Color) (Square, bool) {
	if c == White {
		if sq.Rank() == 7 {
			return NoSquare, false
		}
		return sq + 8, true
	}
	if sq.Rank() == 0 {
		return NoSquare, false
	}
	return sq - 8, true
}

// relativeSouth is the inverse of relativeNorth.
func (sq Square) relativeSouth(c Color) (Square, bool) {
	return sq.relativeNorth(c.Other())
}

// to16x8 converts a Square into 0x88-style coordinates, where the board is
// embedded in a 16-file-wide grid so that ray walks can be bounds-checked
// with a single mask instead of comparing file and rank separately.
func (sq Square) to16x8() int {
	v := int(sq)
	return v + (v & ^7)
}

// squareFrom16x8 is the inverse of to16x8.
func squareFrom16x8(v int) Square {
	return Square((v + (v & 7)) >> 1)
}

// isOffBoard16x8 reports whether a 16x8 coordinate has left the board.
func isOffBoard16x8(v int) bool {
	return v&0x88 != 0
}

// Direction enumerates the eight ray/king directions followed by the eight
// knight leaps, in the order the offset table below is built in.
type Direction uint8

const (
	North Direction = iota
	NorthNorthEast
	NorthEast
	EastNorthEast
	East
	EastSouthEast
	SouthEast
	SouthSouthEast
	South
	SouthSouthWest
	SouthWest
	WestSouthWest
	West
	WestNorthWest
	NorthWest
	NorthNorthWest
	numDirections
)

// vectors holds the 16x8 offset for each Direction, indexed by Direction.
var vectors = [numDirections]int{
	North:          16,
	NorthNorthEast: 33,
	NorthEast:      17,
	EastNorthEast:  18,
	East:           1,
	EastSouthEast:  -14,
	SouthEast:      -15,
	SouthSouthEast: -31,
	South:          -16,
	SouthSouthWest: -33,
	SouthWest:      -17,
	WestSouthWest:  -18,
	West:           -1,
	WestNorthWest:  14,
	NorthWest:      15,
	NorthNorthWest: 31,
}

// rayDirections are the eight directions a slider or king steps in.
var rayDirections = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// knightDirections are the eight knight-leap directions.
var knightDirections = [8]Direction{
	NorthNorthEast, EastNorthEast, EastSouthEast, SouthSouthEast,
	SouthSouthWest, WestSouthWest, WestNorthWest, NorthNorthWest,
}

// opposite returns the direction that undoes a step in d.
func (d Direction) opposite() Direction {
	return (d + 8) % numDirections
}

// isDiagonal reports whether d is one of the four bishop rays.
func (d Direction) isDiagonal() bool {
	return d == NorthEast || d == SouthEast || d == SouthWest || d == NorthWest
}

// isOrthogonal reports whether d is one of the four rook rays.
func (d Direction) isOrthogonal() bool {
	return d == North || d == East || d == South || d == West
}

// validForSlider reports whether a slider of kind p can move one square in
// direction d; used by pin discovery to reject, e.g., a rook pinning along a
// diagonal.
func (d Direction) validForSlider(p PieceKind) bool {
	switch p {
	case Bishop:
		return d.isDiagonal()
	case Rook:
		return d.isOrthogonal()
	case Queen:
		return d.isDiagonal() || d.isOrthogonal()
	default:
		return false
	}
}

// directionTable maps (to16x8 - from16x8 + 119) to the unique direction that
// connects two squares a queen or knight move apart, built once at package
// initialization instead of hand-transcribed.
var directionTable [240]struct {
	dir   Direction
	valid bool
}

func init() {
	for _, d := range rayDirections {
		for i := 1; i < 8; i++ {
			v := vectors[d] * i
			directionTable[v+119] = struct {
				dir   Direction
				valid bool
			}{d, true}
		}
	}
	for _, d := range knightDirections {
		v := vectors[d]
		directionTable[v+119] = struct {
			dir   Direction
			valid bool
		}{d, true}
	}
}

// direction returns the direction that steps from sq toward dest, if the two
// squares are aligned on a ray or a knight leap apart.
func (sq Square) direction(dest Square) (Direction, bool) {
	delta := dest.to16x8() - sq.to16x8() + 119
	if delta < 0 || delta >= 240 {
		return 0, false
	}
	entry := directionTable[delta]
	return entry.dir, entry.valid
}

// travel returns the square one step from sq in direction d, or false if
// that step leaves the board.
func (sq Square) travel(d Direction) (Square, bool) {
	v := sq.to16x8() + vectors[d]
	if isOffBoard16x8(v) {
		return NoSquare, false
	}
	return squareFrom16x8(v), true
}

// rayAttacks calls yield for every square strictly beyond sq along direction
// d, in order, stopping at the board edge or when yield returns false. It
// does not yield sq itself; the caller is responsible for stopping at the
// first occupied square since this layer has no occupancy information.
func (sq Square) rayAttacks(d Direction, yield func(Square) bool) {
	v := sq.to16x8()
	step := vectors[d]
	for {
		v += step
		if isOffBoard16x8(v) {
			return
		}
		if !yield(squareFrom16x8(v)) {
			return
		}
	}
}

// kingAttacks calls yield for every square a king on sq could step to.
func (sq Square) kingAttacks(yield func(Square) bool) {
	for _, d := range rayDirections {
		if dest, ok := sq.travel(d); ok {
			if !yield(dest) {
				return
			}
		}
	}
}

// knightAttacks calls yield for every square a knight on sq could leap to.
func (sq Square) knightAttacks(yield func(Square) bool) {
	for _, d := range knightDirections {
		if dest, ok := sq.travel(d); ok {
			if !yield(dest) {
				return
			}
		}
	}
}
