package board

import "fmt"

// MoveKind distinguishes the handful of move shapes that need special
// handling in Make: a double pawn push sets an en passant target, a
// promotion replaces the pawn's kind, castling relocates a rook as well as
// the king, and so on.
type MoveKind uint8

const (
	Normal MoveKind = iota
	Capture
	Castle
	DoublePush
	EnPassant
	Promotion
	CapturePromotion
)

// Move encodes a chess move in 32 bits:
// bits 0-5:   from square (0-63)
// bits 6-11:  to square (0-63)
// bits 12-14: MoveKind
// bits 15-17: promotion PieceKind (only meaningful for Promotion/CapturePromotion)
type Move uint32

// NoMove represents an invalid or null move.
const NoMove Move = 0xFFFFFFFF

// NewMove builds a Move. promo is ignored unless kind is Promotion or
// CapturePromotion, in which case it must be one of Knight, Bishop, Rook or
// Queen.
func NewMove(from, to Square, kind MoveKind, promo PieceKind) Move {
	return Move(from) | Move(to)<<6 | Move(kind)<<12 | Move(promo)<<15
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Kind returns the MoveKind.
func (m Move) Kind() MoveKind {
	return MoveKind((m >> 12) & 0x7)
}

// Promotion returns the promotion piece kind. Only meaningful when Kind is
// Promotion or CapturePromotion.
func (m Move) Promotion() PieceKind {
	return PieceKind((m >> 15) & 0x7)
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	switch m.Kind() {
	case Capture, EnPassant, CapturePromotion:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Kind() == Promotion || m.Kind() == CapturePromotion
}

// String returns the UCI long-algebraic format of the move (e.g. "e2e4",
// "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.Promotion().Char())
	}
	return s
}

// ParseMove parses a UCI long-algebraic move string against pos, inferring
// its MoveKind from the board state since the wire format carries no flags
// of its own.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	id, ok := pos.data.PieceIndex(from)
	if !ok {
		return NoMove, fmt.Errorf("no piece at %s", from)
	}
	k := pos.data.KindOfPiece(id)
	capture := pos.data.HasPiece(to)

	if len(s) == 5 {
		var promo PieceKind
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		if capture {
			return NewMove(from, to, CapturePromotion, promo), nil
		}
		return NewMove(from, to, Promotion, promo), nil
	}

	if k == King && abs(int(to)-int(from)) == 2 {
		return NewMove(from, to, Castle, NoPieceKind), nil
	}
	if k == Pawn && to == pos.EnPassant && to != from && from.File() != to.File() {
		return NewMove(from, to, EnPassant, NoPieceKind), nil
	}
	if k == Pawn && abs(int(to)-int(from)) == 16 {
		return NewMove(from, to, DoublePush, NoPieceKind), nil
	}
	if capture {
		return NewMove(from, to, Capture, NoPieceKind), nil
	}
	return NewMove(from, to, Normal, NoPieceKind), nil
}

// MoveList is a fixed-size list of moves, sized generously above the known
// maximum number of legal moves in any reachable chess position, to avoid
// allocating on every call to a generator.
type MoveList struct {
	moves [256]Move
	count int
}

// Add appends m. With debugChecks enabled, overflowing the list is a logic
// fault and panics; in a release build it is silently dropped, since no
// legal position comes close to 256 moves and the one-in-a-million path
// isn't worth a branch on.
func (ml *MoveList) Add(m Move) {
	if ml.count >= len(ml.moves) {
		if debugChecks {
			panic("movelist: overflow")
		}
		return
	}
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set sets the move at index i, used by move-ordering passes.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Swap swaps two moves in the list.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear empties the list without reallocating.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains reports whether the list holds m.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves currently in the list.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
