package board

// tryPushMove appends a move to v unless the mover is pinned and the move
// leaves its pin ray; pinned sliders may still slide along the ray (or its
// reverse), and a pinned knight can never move at all since it has no
// direction that stays on the ray.
func (p *Position) tryPushMove(v *MoveList, from, to Square, kind MoveKind, promo PieceKind, info PinInfo) {
	id, _ := p.data.PieceIndex(from)
	if dir, pinned := info.PinDirection(id); pinned {
		moveDir, ok := from.direction(to)
		if !ok || (dir != moveDir && dir != moveDir.opposite()) {
			return
		}
	}
	v.Add(NewMove(from, to, kind, promo))
}

// GenerateMoves returns every legal move available to the side to move,
// dispatching on how many pieces currently give check: a double check can
// only be answered by a king move, a single check narrows to captures of
// the checker, blocks, and king moves, and otherwise every pseudo-legal
// move survives pin filtering.
func (p *Position) GenerateMoves() *MoveList {
	v := &MoveList{}

	kingSquare := p.KingSquare(p.SideToMove)
	checks := p.data.AttacksTo(kingSquare, p.SideToMove.Other())

	if checks.Count() == 1 {
		p.generateSingleCheck(v, checks)
		return v
	}
	if checks.Count() >= 2 {
		p.generateDoubleCheck(v, checks)
		return v
	}

	info := p.DiscoverPinnedPieces()
	p.generateCapturesInto(v, info)

	(p.data.mask.Pawns() & maskForColor(p.SideToMove)).ForEach(func(id PieceID) bool {
		p.generatePawnQuiet(v, p.data.SquareOfPiece(id), info)
		return true
	})

	for dest := Square(0); dest < 64; dest++ {
		if p.data.HasPiece(dest) {
			continue
		}
		attackers := p.data.AttacksTo(dest, p.SideToMove) &^ p.data.mask.Pawns()
		attackers.ForEach(func(attacker PieceID) bool {
			if p.data.mask.KindOf(attacker) == King && !p.data.AttacksTo(dest, p.SideToMove.Other()).Empty() {
				return true
			}
			from := p.data.SquareOfPiece(attacker)
			p.tryPushMove(v, from, dest, Normal, NoPieceKind, info)
			return true
		})
	}

	p.generateCastling(v, kingSquare, info)

	return v
}

// generateCastling appends kingside/queenside castling moves when the
// rights remain, the squares between king and rook are empty, and neither
// the king's start, transit, nor destination square is attacked. Rights
// are revoked on rook/king-square touch regardless of occupancy (see
// Make in make.go); this function only checks what remains granted.
func (p *Position) generateCastling(v *MoveList, kingSquare Square, info PinInfo) {
	us, them := p.SideToMove, p.SideToMove.Other()

	kingSide := p.CastlingRights.CanCastle(us, true)
	queenSide := p.CastlingRights.CanCastle(us, false)
	if !kingSide && !queenSide {
		return
	}

	if kingSide {
		east1, _ := kingSquare.travel(East)
		east2, _ := east1.travel(East)
		if p.data.AttacksTo(kingSquare, them).Empty() &&
			!p.data.HasPiece(east1) && p.data.AttacksTo(east1, them).Empty() &&
			!p.data.HasPiece(east2) && p.data.AttacksTo(east2, them).Empty() {
			p.tryPushMove(v, kingSquare, east2, Castle, NoPieceKind, info)
		}
	}

	if queenSide {
		west1, _ := kingSquare.travel(West)
		west2, _ := west1.travel(West)
		west3, _ := west2.travel(West)
		if p.data.AttacksTo(kingSquare, them).Empty() &&
			!p.data.HasPiece(west1) && p.data.AttacksTo(west1, them).Empty() &&
			!p.data.HasPiece(west2) && p.data.AttacksTo(west2, them).Empty() &&
			!p.data.HasPiece(west3) {
			p.tryPushMove(v, kingSquare, west2, Castle, NoPieceKind, info)
		}
	}
}

// generatePawnQuiet appends the single push, double push, and promotion
// variants available to the pawn on from.
func (p *Position) generatePawnQuiet(v *MoveList, from Square, info PinInfo) {
	north, ok := from.relativeNorth(p.SideToMove)
	if !ok || p.data.HasPiece(north) {
		return
	}

	if isRelativeEighth(north, p.SideToMove) {
		for _, promo := range []PieceKind{Queen, Knight, Rook, Bishop} {
			p.tryPushMove(v, from, north, Promotion, promo, info)
		}
		return
	}
	p.tryPushMove(v, from, north, Normal, NoPieceKind, info)

	north2, ok := north.relativeNorth(p.SideToMove)
	if ok && isRelativeFourth(north2, p.SideToMove) && !p.data.HasPiece(north2) {
		p.tryPushMove(v, from, north2, DoublePush, NoPieceKind, info)
	}
}

// generatePawnEnPassant appends the en passant capture(s) available, if any,
// excluding pawns the pin walk marked as en-passant-pinned.
func (p *Position) generatePawnEnPassant(v *MoveList, info PinInfo) {
	if p.EnPassant == NoSquare {
		return
	}
	attackers := p.data.AttacksTo(p.EnPassant, p.SideToMove) & p.data.mask.Pawns() &^ info.enpassantPinned
	attackers.ForEach(func(id PieceID) bool {
		p.tryPushMove(v, p.data.SquareOfPiece(id), p.EnPassant, EnPassant, NoPieceKind, info)
		return true
	})
}

// isRelativeEighth reports whether sq is the promotion rank for c.
func isRelativeEighth(sq Square, c Color) bool {
	if c == White {
		return sq.Rank() == 7
	}
	return sq.Rank() == 0
}

// isRelativeFourth reports whether sq is the double-push destination rank
// for c.
func isRelativeFourth(sq Square, c Color) bool {
	if c == White {
		return sq.Rank() == 3
	}
	return sq.Rank() == 4
}

// generateSingleCheck handles the case where exactly one enemy piece
// attacks the king: the reply must capture the checker, block the check
// (only possible against a slider), or move the king to a square the
// checker (and nothing else) does not attack - accounting for the slider's
// x-ray through the king's own square.
func (p *Position) generateSingleCheck(v *MoveList, checks Bitlist) {
	kingSquare := p.KingSquare(p.SideToMove)
	attackerID, _ := checks.Peek()
	attackerKind := p.data.mask.KindOf(attackerID)
	attackerSquare := p.data.SquareOfPiece(attackerID)
	attackerDir, hasAttackerDir := attackerSquare.direction(kingSquare)

	info := p.DiscoverPinnedPieces()
	us, them := p.SideToMove, p.SideToMove.Other()

	// Capture the checker.
	p.data.AttacksTo(attackerSquare, us).ForEach(func(capturer PieceID) bool {
		from := p.data.SquareOfPiece(capturer)
		if p.data.mask.KindOf(capturer) == King && !p.data.AttacksTo(attackerSquare, them).Empty() {
			return true
		}
		if p.data.mask.KindOf(capturer) == Pawn && isRelativeEighth(attackerSquare, us) {
			for _, promo := range []PieceKind{Queen, Knight, Rook, Bishop} {
				p.tryPushMove(v, from, attackerSquare, CapturePromotion, promo, info)
			}
			return true
		}
		p.tryPushMove(v, from, attackerSquare, Capture, NoPieceKind, info)
		return true
	})

	// Capture en passant, if that removes the checking pawn.
	if p.EnPassant != NoSquare && attackerKind == Pawn {
		if epSouth, ok := p.EnPassant.relativeSouth(us); ok && epSouth == attackerSquare {
			(p.data.AttacksTo(p.EnPassant, us) & p.data.mask.Pawns() &^ info.enpassantPinned).ForEach(func(id PieceID) bool {
				p.tryPushMove(v, p.data.SquareOfPiece(id), p.EnPassant, EnPassant, NoPieceKind, info)
				return true
			})
		}
	}

	// Block the check, if the checker is a slider.
	if attackerKind == Bishop || attackerKind == Rook || attackerKind == Queen {
		dir, _ := kingSquare.direction(attackerSquare)
		kingSquare.rayAttacks(dir, func(dest Square) bool {
			if dest == attackerSquare {
				return false
			}
			(p.data.AttacksTo(dest, us) &^ p.data.mask.Pawns() &^ p.data.mask.Kings()).ForEach(func(blocker PieceID) bool {
				p.tryPushMove(v, p.data.SquareOfPiece(blocker), dest, Normal, NoPieceKind, info)
				return true
			})
			p.addPawnBlock(v, dest, info)
			return true
		})
	}

	// Move the king.
	kingSquare.kingAttacks(func(square Square) bool {
		kind := Normal
		if p.data.HasPiece(square) {
			if square == attackerSquare {
				return true // handled above as a capture of the checker
			}
			if c, _ := p.data.ColorAt(square); c == us {
				return true
			}
			kind = Capture
		}
		if !p.data.AttacksTo(square, them).Empty() {
			return true
		}
		if hasAttackerDir {
			if xray, ok := kingSquare.travel(attackerDir); ok && xray == square &&
				(attackerKind == Bishop || attackerKind == Rook || attackerKind == Queen) {
				return true
			}
		}
		v.Add(NewMove(kingSquare, square, kind, NoPieceKind))
		return true
	})
}

// addPawnBlock appends the pawn push(es), if any, that land a friendly pawn
// on dest to block a check.
func (p *Position) addPawnBlock(v *MoveList, dest Square, info PinInfo) {
	from, ok := dest.relativeSouth(p.SideToMove)
	if !ok {
		return
	}
	if k, has := p.data.KindAt(from); has {
		if k != Pawn {
			return
		}
		if c, _ := p.data.ColorAt(from); c == p.SideToMove {
			if isRelativeEighth(dest, p.SideToMove) {
				for _, promo := range []PieceKind{Queen, Knight, Rook, Bishop} {
					p.tryPushMove(v, from, dest, Promotion, promo, info)
				}
			} else {
				p.tryPushMove(v, from, dest, Normal, NoPieceKind, info)
			}
		}
		return
	}
	if !isRelativeFourth(dest, p.SideToMove) {
		return
	}
	from2, ok := from.relativeSouth(p.SideToMove)
	if !ok {
		return
	}
	if k, has := p.data.KindAt(from2); has && k == Pawn {
		if c, _ := p.data.ColorAt(from2); c == p.SideToMove {
			p.tryPushMove(v, from2, dest, DoublePush, NoPieceKind, info)
		}
	}
}

// generateDoubleCheck handles the case where two enemy pieces attack the
// king simultaneously: only a king move can possibly answer it, since
// capturing or blocking can remove at most one checker.
func (p *Position) generateDoubleCheck(v *MoveList, checks Bitlist) {
	kingSquare := p.KingSquare(p.SideToMove)
	them := p.SideToMove.Other()

	a1, rest, _ := checks.Pop()
	a2, _, _ := rest.Pop()

	type attacker struct {
		kind PieceKind
		dir  Direction
		has  bool
	}
	mk := func(id PieceID) attacker {
		sq := p.data.SquareOfPiece(id)
		dir, ok := sq.direction(kingSquare)
		return attacker{p.data.mask.KindOf(id), dir, ok}
	}
	att1, att2 := mk(a1), mk(a2)

	isSlider := func(k PieceKind) bool { return k == Bishop || k == Rook || k == Queen }

	kingSquare.kingAttacks(func(square Square) bool {
		kind := Normal
		if p.data.HasPiece(square) {
			if c, _ := p.data.ColorAt(square); c == p.SideToMove {
				return true
			}
			kind = Capture
		}
		if !p.data.AttacksTo(square, them).Empty() {
			return true
		}
		if att1.has {
			if xray, ok := kingSquare.travel(att1.dir); ok && xray == square && isSlider(att1.kind) {
				return true
			}
		}
		if att2.has {
			if xray, ok := kingSquare.travel(att2.dir); ok && xray == square && isSlider(att2.kind) {
				return true
			}
		}
		v.Add(NewMove(kingSquare, square, kind, NoPieceKind))
		return true
	})
}

// generateCapturesInto appends every pseudo-legal capture (and en passant
// capture) to v, in MVV/LVA order: victims are visited queen-first down to
// pawns, and for each victim every attacker of it is tried.
func (p *Position) generateCapturesInto(v *MoveList, info PinInfo) {
	them := p.SideToMove.Other()
	themPieces := maskForColor(them)

	findAttackers := func(dest Square) {
		attacks := p.data.AttacksTo(dest, p.SideToMove)

		(attacks & p.data.mask.Pawns()).ForEach(func(capturer PieceID) bool {
			from := p.data.SquareOfPiece(capturer)
			if isRelativeEighth(dest, p.SideToMove) {
				for _, promo := range []PieceKind{Queen, Knight, Rook, Bishop} {
					p.tryPushMove(v, from, dest, CapturePromotion, promo, info)
				}
			} else {
				p.tryPushMove(v, from, dest, Capture, NoPieceKind, info)
			}
			return true
		})
		for _, kindBits := range []Bitlist{p.data.mask.Knights(), p.data.mask.Bishops(), p.data.mask.Rooks(), p.data.mask.Queens()} {
			(attacks & kindBits).ForEach(func(capturer PieceID) bool {
				p.tryPushMove(v, p.data.SquareOfPiece(capturer), dest, Capture, NoPieceKind, info)
				return true
			})
		}
		(attacks & p.data.mask.Kings()).ForEach(func(capturer PieceID) bool {
			if !p.data.AttacksTo(dest, them).Empty() {
				return true
			}
			p.tryPushMove(v, p.data.SquareOfPiece(capturer), dest, Capture, NoPieceKind, info)
			return true
		})
	}

	for _, victims := range []Bitlist{
		themPieces & p.data.mask.Queens(),
		themPieces & p.data.mask.Rooks(),
		themPieces & p.data.mask.Bishops(),
		themPieces & p.data.mask.Knights(),
		themPieces & p.data.mask.Pawns(),
	} {
		victims.ForEach(func(victim PieceID) bool {
			findAttackers(p.data.SquareOfPiece(victim))
			return true
		})
	}

	p.generatePawnEnPassant(v, info)
}

// GenerateCaptures returns every legal capture in MVV/LVA order. When the
// side to move is in check it returns the capturing evasions instead, in the
// order GenerateMoves produces them.
func (p *Position) GenerateCaptures() *MoveList {
	v := &MoveList{}
	if p.InCheck() {
		all := p.GenerateMoves()
		for i := 0; i < all.Len(); i++ {
			if m := all.Get(i); m.IsCapture() {
				v.Add(m)
			}
		}
		return v
	}
	info := p.DiscoverPinnedPieces()
	p.generateCapturesInto(v, info)
	return v
}

// GenerateCapturesOrdered calls yield for every legal capture in MVV/LVA
// order with losing-capture pruning: once a minor, rook, or queen recapture
// of the current victim class is known to exist, an equal-or-lesser
// attacker capturing a lower-value victim of that class is skipped, since
// the exchange loses material regardless of move order. When the side to
// move is in check it yields the capturing evasions instead, in the order
// GenerateMoves produces them and without pruning. Returning false from
// yield stops generation immediately.
func (p *Position) GenerateCapturesOrdered(yield func(Move) bool) {
	if p.InCheck() {
		all := p.GenerateMoves()
		for i := 0; i < all.Len(); i++ {
			if m := all.Get(i); m.IsCapture() && !yield(m) {
				return
			}
		}
		return
	}
	info := p.DiscoverPinnedPieces()
	them := p.SideToMove.Other()
	themPieces := maskForColor(them)

	var minorMask, rookMask, queenMask Bitlist

	tryMove := func(from, to Square, kind MoveKind, promo PieceKind) bool {
		id, _ := p.data.PieceIndex(from)
		if dir, pinned := info.PinDirection(id); pinned {
			moveDir, ok := from.direction(to)
			if !ok || (dir != moveDir && dir != moveDir.opposite()) {
				return true
			}
		}
		return yield(NewMove(from, to, kind, promo))
	}

	findAttackers := func(dest Square, victimKind PieceKind) bool {
		attacks := p.data.AttacksTo(dest, p.SideToMove)
		cont := true

		(attacks & p.data.mask.Pawns()).ForEach(func(capturer PieceID) bool {
			from := p.data.SquareOfPiece(capturer)
			if isRelativeEighth(dest, p.SideToMove) {
				for _, promo := range []PieceKind{Queen, Knight, Rook, Bishop} {
					if !tryMove(from, dest, CapturePromotion, promo) {
						cont = false
						return false
					}
				}
			} else if !tryMove(from, dest, Capture, NoPieceKind) {
				cont = false
				return false
			}
			return true
		})
		if !cont {
			return false
		}

		(attacks & (p.data.mask.Knights() | p.data.mask.Bishops())).ForEach(func(capturer PieceID) bool {
			if victimKind < Bishop && !(p.data.AttacksTo(dest, them) & minorMask).Empty() {
				return true // bad capture: pruned
			}
			if !tryMove(p.data.SquareOfPiece(capturer), dest, Capture, NoPieceKind) {
				cont = false
				return false
			}
			return true
		})
		if !cont {
			return false
		}

		(attacks & p.data.mask.Rooks()).ForEach(func(capturer PieceID) bool {
			if victimKind < Rook && !(p.data.AttacksTo(dest, them) & rookMask).Empty() {
				return true
			}
			if !tryMove(p.data.SquareOfPiece(capturer), dest, Capture, NoPieceKind) {
				cont = false
				return false
			}
			return true
		})
		if !cont {
			return false
		}

		(attacks & p.data.mask.Queens()).ForEach(func(capturer PieceID) bool {
			if victimKind < Queen && !(p.data.AttacksTo(dest, them) & queenMask).Empty() {
				return true
			}
			if !tryMove(p.data.SquareOfPiece(capturer), dest, Capture, NoPieceKind) {
				cont = false
				return false
			}
			return true
		})
		if !cont {
			return false
		}

		(attacks & p.data.mask.Kings()).ForEach(func(capturer PieceID) bool {
			if !p.data.AttacksTo(dest, them).Empty() {
				return true
			}
			if !tryMove(p.data.SquareOfPiece(capturer), dest, Capture, NoPieceKind) {
				cont = false
				return false
			}
			return true
		})
		return cont
	}

	minorMask |= themPieces & p.data.mask.Pawns()
	rookMask |= themPieces & p.data.mask.Pawns()
	queenMask |= themPieces & p.data.mask.Pawns()

	stop := false
	(themPieces & p.data.mask.Queens()).ForEach(func(victim PieceID) bool {
		if !findAttackers(p.data.SquareOfPiece(victim), Queen) {
			stop = true
			return false
		}
		return true
	})
	if stop {
		return
	}

	queenMask |= themPieces & (p.data.mask.Knights() | p.data.mask.Bishops())

	(themPieces & p.data.mask.Rooks()).ForEach(func(victim PieceID) bool {
		if !findAttackers(p.data.SquareOfPiece(victim), Rook) {
			stop = true
			return false
		}
		return true
	})
	if stop {
		return
	}

	queenMask |= themPieces & p.data.mask.Rooks()

	(themPieces & (p.data.mask.Knights() | p.data.mask.Bishops())).ForEach(func(victim PieceID) bool {
		if !findAttackers(p.data.SquareOfPiece(victim), Bishop) {
			stop = true
			return false
		}
		return true
	})
	if stop {
		return
	}

	rookMask |= themPieces & (p.data.mask.Knights() | p.data.mask.Bishops())

	(themPieces & p.data.mask.Pawns()).ForEach(func(victim PieceID) bool {
		if !findAttackers(p.data.SquareOfPiece(victim), Pawn) {
			stop = true
			return false
		}
		return true
	})
}

// HasLegalMoves reports whether the side to move has at least one legal
// move. Every move GenerateMoves returns is already fully legal (pin
// filtering and king-safety checks happen during generation, not after),
// so this is just a non-empty check rather than a make/unmake probe.
func (p *Position) HasLegalMoves() bool {
	return p.GenerateMoves().Len() > 0
}

// IsCheckmate reports whether the side to move is in check with no legal
// replies.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move is not in check but has no
// legal moves.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}
