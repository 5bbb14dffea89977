package board

// setEnPassant updates np's en passant target and incrementally XORs the
// hash, unsetting the old target's key before setting the new one (if any).
func (np *Position) setEnPassant(zt *ZobristTable, ep Square) {
	if np.EnPassant != NoSquare {
		np.Hash ^= zt.EnPassant(np.EnPassant.File())
	}
	np.EnPassant = ep
	if np.EnPassant != NoSquare {
		np.Hash ^= zt.EnPassant(np.EnPassant.File())
	}
}

// Make returns a new Position reflecting the effect of playing m, leaving p
// untouched. The caller is assumed to have obtained m from GenerateMoves (or
// a legal, already-validated source); Make does not re-check legality.
func (p *Position) Make(m Move, zt *ZobristTable) *Position {
	np := p.Clone()
	us := np.SideToMove
	from, to := m.From(), m.To()
	pawnMoved := false

	switch m.Kind() {
	case Normal:
		k := np.data.mask.KindOf(np.data.index.Get(from))
		pawnMoved = k == Pawn
		np.data.movePiece(from, to)
		np.Hash ^= zt.Piece(us, k, from) ^ zt.Piece(us, k, to)
		np.setEnPassant(zt, NoSquare)

	case DoublePush:
		pawnMoved = true
		k := np.data.mask.KindOf(np.data.index.Get(from))
		np.data.movePiece(from, to)
		np.Hash ^= zt.Piece(us, k, from) ^ zt.Piece(us, k, to)
		epTarget, _ := from.relativeNorth(us)
		np.setEnPassant(zt, epTarget)

	case Capture:
		victim, _ := np.data.PieceIndex(to)
		victimKind := np.data.mask.KindOf(victim)
		movingKind := np.data.mask.KindOf(np.data.index.Get(from))
		pawnMoved = movingKind == Pawn
		np.data.removePiece(victim, true)
		np.data.movePiece(from, to)
		np.Hash ^= zt.Piece(us, movingKind, from) ^ zt.Piece(us, movingKind, to) ^
			zt.Piece(us.Other(), victimKind, to)
		np.setEnPassant(zt, NoSquare)

	case Castle:
		var rookFrom, rookTo Square
		if to > from {
			rookFrom, _ = to.travel(East)
			rookTo, _ = to.travel(West)
		} else {
			w1, _ := to.travel(West)
			rookFrom, _ = w1.travel(West)
			rookTo, _ = to.travel(East)
		}
		np.data.movePiece(rookFrom, rookTo)
		np.Hash ^= zt.Piece(us, Rook, rookFrom) ^ zt.Piece(us, Rook, rookTo)

		np.data.movePiece(from, to)
		np.Hash ^= zt.Piece(us, King, from) ^ zt.Piece(us, King, to)
		np.setEnPassant(zt, NoSquare)

	case EnPassant:
		pawnMoved = true
		targetSquare, _ := np.EnPassant.relativeSouth(us)
		targetID, _ := np.data.PieceIndex(targetSquare)
		np.data.removePiece(targetID, true)
		np.data.movePiece(from, to)
		np.Hash ^= zt.Piece(us, Pawn, from) ^ zt.Piece(us, Pawn, to) ^
			zt.Piece(us.Other(), Pawn, targetSquare)
		np.setEnPassant(zt, NoSquare)

	case Promotion:
		pawnMoved = true
		id, _ := np.data.PieceIndex(from)
		np.data.removePiece(id, true)
		np.data.addPiece(m.Promotion(), us, to, true)
		np.Hash ^= zt.Piece(us, Pawn, from) ^ zt.Piece(us, m.Promotion(), to)
		np.setEnPassant(zt, NoSquare)

	case CapturePromotion:
		pawnMoved = true
		id, _ := np.data.PieceIndex(from)
		victim, _ := np.data.PieceIndex(to)
		victimKind := np.data.mask.KindOf(victim)
		np.data.removePiece(id, true)
		np.data.removePiece(victim, true)
		np.data.addPiece(m.Promotion(), us, to, true)
		np.Hash ^= zt.Piece(us, Pawn, from) ^ zt.Piece(us, m.Promotion(), to) ^
			zt.Piece(us.Other(), victimKind, to)
		np.setEnPassant(zt, NoSquare)
	}

	np.applyCastlingRevocation(zt, from, to)

	if pawnMoved || m.IsCapture() {
		np.HalfMoveClock = 0
	} else {
		np.HalfMoveClock++
	}
	if us == Black {
		np.FullMoveNumber++
	}

	np.SideToMove = us.Other()
	np.Hash ^= zt.Side()
	return np
}

// applyCastlingRevocation clears any castling right whose king or rook
// square was touched by this move, regardless of what was actually on that
// square - a rook captured on h1 revokes White's kingside right exactly as
// a rook moving away from h1 would.
func (np *Position) applyCastlingRevocation(zt *ZobristTable, from, to Square) {
	revoke := func(bit CastlingRights, key int) {
		if np.CastlingRights&bit != 0 {
			np.CastlingRights &^= bit
			np.Hash ^= zt.CastlingRight(key)
		}
	}

	if from == E1 {
		revoke(WhiteKingSideCastle, castleWhiteKingside)
		revoke(WhiteQueenSideCastle, castleWhiteQueenside)
	}
	if from == E8 {
		revoke(BlackKingSideCastle, castleBlackKingside)
		revoke(BlackQueenSideCastle, castleBlackQueenside)
	}
	if from == H1 || to == H1 {
		revoke(WhiteKingSideCastle, castleWhiteKingside)
	}
	if from == A1 || to == A1 {
		revoke(WhiteQueenSideCastle, castleWhiteQueenside)
	}
	if from == H8 || to == H8 {
		revoke(BlackKingSideCastle, castleBlackKingside)
	}
	if from == A8 || to == A8 {
		revoke(BlackQueenSideCastle, castleBlackQueenside)
	}
}
