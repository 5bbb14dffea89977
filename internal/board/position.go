package board

import "fmt"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// Position is an immutable-by-convention chess position: piece placement
// (via the embedded boardData attack table and location maps), side to
// move, castling rights, en passant target and incremental Zobrist hash.
// Callers never mutate a Position in place; Make and MakeNull return a new
// value, leaving the receiver untouched, so search code can hold onto a
// position while exploring a move without an explicit undo step.
type Position struct {
	data boardData

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // Target square for en passant, NoSquare if none
	HalfMoveClock  int    // Moves since last pawn move or capture
	FullMoveNumber int    // Full move counter, starts at 1

	Hash uint64
}

// NewPosition creates the starting position, hashed with DefaultZobristTable.
func NewPosition() *Position {
	pos, _ := FromFEN(StartFEN, DefaultZobristTable)
	return pos
}

// Clone returns a deep copy of the position. Because boardData holds only
// fixed-size arrays, a plain struct copy already duplicates every field;
// Clone exists so call sites read as an explicit "independent copy" rather
// than relying on Go's value-copy semantics implicitly.
func (p *Position) Clone() *Position {
	np := *p
	return &np
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	k, ok := p.data.KindAt(sq)
	if !ok {
		return NoPiece
	}
	c, _ := p.data.ColorAt(sq)
	return NewPiece(k, c)
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return !p.data.HasPiece(sq)
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.data.KingSquare(c)
}

// AttacksTo returns the ids of color c attacking sq.
func (p *Position) AttacksTo(sq Square, c Color) Bitlist {
	return p.data.AttacksTo(sq, c)
}

// Checkers returns the ids of the enemy pieces currently checking the side
// to move's king.
func (p *Position) Checkers() Bitlist {
	return p.data.AttacksTo(p.KingSquare(p.SideToMove), p.SideToMove.Other())
}

// InCheck returns true if the side to move is in check.
func (p *Position) InCheck() bool {
	return !p.Checkers().Empty()
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			piece := p.PieceAt(sq)
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", p.CastlingRights)
	s += fmt.Sprintf("En passant: %s\n", p.EnPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", p.HalfMoveClock)
	s += fmt.Sprintf("Full move: %d\n", p.FullMoveNumber)
	s += fmt.Sprintf("Hash: %016x\n", p.Hash)
	return s
}

// Validate checks basic structural invariants of the position.
func (p *Position) Validate() error {
	if (p.data.mask.Kings() & maskForColor(White)).Count() != 1 {
		return fmt.Errorf("white must have exactly one king")
	}
	if (p.data.mask.Kings() & maskForColor(Black)).Count() != 1 {
		return fmt.Errorf("black must have exactly one king")
	}
	pawns := p.data.mask.Pawns()
	var bad error
	pawns.ForEach(func(id PieceID) bool {
		sq := p.data.SquareOfPiece(id)
		if sq.Rank() == 0 || sq.Rank() == 7 {
			bad = fmt.Errorf("pawns cannot be on rank 1 or 8")
			return false
		}
		return true
	})
	return bad
}

// Material returns the material balance (positive favours white). Carried
// only as a diagnostic helper; the core does no evaluation.
func (p *Position) Material() int {
	score := 0
	for k := Pawn; k < King; k++ {
		var kindBits Bitlist
		switch k {
		case Pawn:
			kindBits = p.data.mask.Pawns()
		case Knight:
			kindBits = p.data.mask.Knights()
		case Bishop:
			kindBits = p.data.mask.Bishops()
		case Rook:
			kindBits = p.data.mask.Rooks()
		case Queen:
			kindBits = p.data.mask.Queens()
		}
		score += (kindBits & maskForColor(White)).Count() * PieceValue[k]
		score -= (kindBits & maskForColor(Black)).Count() * PieceValue[k]
	}
	return score
}

// MakeNull returns a copy of p with the side to move flipped and the en
// passant target cleared, used by search to probe "what if I pass".
func (p *Position) MakeNull(zt *ZobristTable) *Position {
	np := p.Clone()
	if np.EnPassant != NoSquare {
		np.Hash ^= zt.EnPassant(np.EnPassant.File())
	}
	np.EnPassant = NoSquare
	np.SideToMove = np.SideToMove.Other()
	np.Hash ^= zt.Side()
	return np
}

// HasNonPawnMaterial returns true if the side to move has non-pawn material.
func (p *Position) HasNonPawnMaterial() bool {
	us := maskForColor(p.SideToMove)
	sliders := p.data.mask.Knights() | p.data.mask.Bishops() | p.data.mask.Rooks() | p.data.mask.Queens()
	return !(sliders & us).Empty()
}
