package board

// PinInfo records, for each PieceID, the direction it is pinned along (if
// any), plus the set of pawns that cannot make an en passant capture this
// move because doing so would expose their king along a rank.
type PinInfo struct {
	pins           [32]Direction
	enpassantPinned Bitlist
}

// newPinInfo returns a PinInfo with nothing pinned.
func newPinInfo() PinInfo {
	info := PinInfo{}
	for i := range info.pins {
		info.pins[i] = noDirection
	}
	return info
}

// PinDirection returns the direction id is pinned along, and whether it is
// pinned at all.
func (info PinInfo) PinDirection(id PieceID) (Direction, bool) {
	d := info.pins[id]
	return d, d != noDirection
}

// DiscoverPinnedPieces walks every enemy slider aligned with the side to
// move's king and classifies the pieces between them. Exactly one friendly
// blocker and no enemy blocker means that friendly piece is pinned along
// the pinner-king ray; one friendly and one enemy blocker, both pawns, on
// an East/West ray, flags the friendly pawn as unable to capture en
// passant (capturing would remove both pawns from the rank and expose the
// king along it). Any other mix of blockers voids the pin entirely.
func (p *Position) DiscoverPinnedPieces() PinInfo {
	info := newPinInfo()

	sliders := p.data.mask.Sliders() & maskForColor(p.SideToMove.Other())
	kingSquare := p.KingSquare(p.SideToMove)

	sliders.ForEach(func(pinner PieceID) bool {
		pinnerSquare := p.data.SquareOfPiece(pinner)
		pinnerKind := p.data.mask.KindOf(pinner)

		dir, ok := pinnerSquare.direction(kingSquare)
		if !ok || !dir.validForSlider(pinnerKind) {
			return true
		}

		var friendly, enemy PieceID = NoPieceID, NoPieceID
		aborted := false

		pinnerSquare.rayAttacks(dir, func(sq Square) bool {
			if sq == kingSquare {
				return false
			}
			id, has := p.data.PieceIndex(sq)
			if !has {
				return true
			}
			if id.Color() == p.SideToMove.Other() {
				if enemy != NoPieceID {
					friendly, enemy, aborted = NoPieceID, NoPieceID, true
					return false
				}
				enemy = id
			} else {
				if friendly != NoPieceID {
					friendly, enemy, aborted = NoPieceID, NoPieceID, true
					return false
				}
				friendly = id
			}
			return true
		})

		if aborted || friendly == NoPieceID {
			return true
		}

		if enemy == NoPieceID {
			info.pins[friendly] = dir
			return true
		}

		if p.data.mask.KindOf(friendly) == Pawn && p.data.mask.KindOf(enemy) == Pawn &&
			(dir == East || dir == West) {
			info.enpassantPinned.Add(friendly)
		}
		return true
	})

	return info
}
