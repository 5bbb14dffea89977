package board

// boardData is the piece-placement half of a Position: the piece-kind
// bitlists, the bidirectional location maps, and the per-square attacker
// table. It carries no notion of side to move, castling rights or en
// passant - those live on Position alongside it.
//
// The attack table (attacks) holds, for every square, the Bitlist of piece
// ids currently attacking it. It is built once from scratch by
// rebuildAttacks and after that is never recomputed wholesale; every
// addPiece, removePiece and movePiece call updates exactly the entries that
// changed.
type boardData struct {
	attacks [64]Bitlist
	list    Piecelist
	index   PieceIndexArray
	mask    Piecemask
}

// newBoardData returns an empty board with no pieces placed.
func newBoardData() boardData {
	return boardData{
		list:  newPiecelist(),
		index: newPieceIndexArray(),
	}
}

// PieceIndex returns the id occupying square, if any.
func (d *boardData) PieceIndex(square Square) (PieceID, bool) {
	id := d.index.Get(square)
	return id, id != NoPieceID
}

// AttacksTo returns the Bitlist of ids of the given color attacking square.
func (d *boardData) AttacksTo(square Square, c Color) Bitlist {
	return d.attacks[square] & maskForColor(c)
}

// SquareOfPiece returns the square occupied by id.
func (d *boardData) SquareOfPiece(id PieceID) Square {
	return d.list.Get(id)
}

// HasPiece reports whether square is occupied.
func (d *boardData) HasPiece(square Square) bool {
	return d.index.Get(square) != NoPieceID
}

// KindOfPiece returns the kind of a live id.
func (d *boardData) KindOfPiece(id PieceID) PieceKind {
	return d.mask.KindOf(id)
}

// KindAt returns the kind of the piece on square, if any.
func (d *boardData) KindAt(square Square) (PieceKind, bool) {
	id, ok := d.PieceIndex(square)
	if !ok {
		return NoPieceKind, false
	}
	return d.mask.KindOf(id), true
}

// ColorAt returns the color of the piece on square, if any.
func (d *boardData) ColorAt(square Square) (Color, bool) {
	id, ok := d.PieceIndex(square)
	if !ok {
		return NoColor, false
	}
	return id.Color(), true
}

// KingSquare returns the square of c's king.
func (d *boardData) KingSquare(c Color) Square {
	id, ok := (d.mask.Kings() & maskForColor(c)).Peek()
	if !ok {
		panic("board: colour has no king")
	}
	return d.SquareOfPiece(id)
}

// addPiece allocates an id of kind k/color c, places it on square, and, if
// update is true, stamps its attacks into the table and retracts any slider
// ray beyond square, which the new piece now blocks.
func (d *boardData) addPiece(k PieceKind, c Color, square Square, update bool) PieceID {
	id := d.mask.AddPiece(c, k)
	d.list.AddPiece(id, square)
	d.index.AddPiece(id, square)

	if update {
		d.updateAttacks(square, id, k, true, noDirection)
		d.updateSliders(square, false)
	}
	return id
}

// removePiece takes id off the board. If update is true its attacks are
// cleared and any slider ray behind it is extended through the now-empty
// square.
func (d *boardData) removePiece(id PieceID, update bool) {
	square := d.SquareOfPiece(id)
	k := d.mask.KindOf(id)
	d.mask.RemovePiece(id)
	d.list.RemovePiece(id)
	d.index.RemovePiece(square)

	if update {
		d.updateAttacks(square, id, k, false, noDirection)
		d.updateSliders(square, true)
	}
}

// movePiece relocates the piece on fromSquare to toSquare, maintaining the
// attack table incrementally in five steps: remove the mover's own attacks
// (skipping its slide axis, if any), extend any ray behind fromSquare now
// that it is empty, relocate the location maps, retract any ray behind
// toSquare now that it is occupied, then re-stamp the mover's attacks from
// its new square.
func (d *boardData) movePiece(fromSquare, toSquare Square) {
	id, ok := d.PieceIndex(fromSquare)
	if !ok {
		panic("board: attempted to move a piece from an empty square")
	}
	k := d.mask.KindOf(id)

	slideDir, isSlideDir := noDirection, false
	if k == Bishop || k == Rook || k == Queen {
		if dir, ok := fromSquare.direction(toSquare); ok {
			slideDir, isSlideDir = dir, true
		}
	}

	d.updateAttacks(fromSquare, id, k, false, slideDir)
	d.updateSliders(fromSquare, true)
	if isSlideDir {
		d.attacks[fromSquare].Add(id)
	}

	d.list.MovePiece(id, fromSquare, toSquare)
	d.index.MovePiece(id, fromSquare, toSquare)

	if isSlideDir {
		d.attacks[toSquare].Remove(id)
	}
	d.updateAttacks(toSquare, id, k, true, slideDir)
	d.updateSliders(toSquare, false)

	if debugChecks && d.attacks[toSquare].Contains(id) {
		panic("board: piece cannot attack its own square")
	}
}

// rebuildAttacks clears and recomputes the entire attack table from the
// current piece placement. Used only when loading a position from FEN.
func (d *boardData) rebuildAttacks() {
	for sq := range d.attacks {
		d.attacks[sq] = 0
	}
	for sq := Square(0); sq < 64; sq++ {
		id, ok := d.PieceIndex(sq)
		if !ok {
			continue
		}
		d.updateAttacks(sq, id, d.mask.KindOf(id), true, noDirection)
	}
}

// noDirection is the skip_dir sentinel meaning "no axis is being skipped".
const noDirection Direction = numDirections

// updateAttacks adds (add=true) or removes (add=false) id's attacks from
// every square it attacks from square. skipDir, when not noDirection,
// excludes the ray along that axis (and its opposite) from a slider's
// update; the move-piece sequence uses this to avoid double-touching the
// axis it is sliding along, which the two updateSliders calls already
// handle.
func (d *boardData) updateAttacks(square Square, id PieceID, k PieceKind, add bool, skipDir Direction) {
	if debugChecks && d.attacks[square].Contains(id) {
		panic("board: piece cannot attack its own square")
	}

	mark := func(dest Square) {
		if add {
			d.attacks[dest].Add(id)
		} else {
			d.attacks[dest].Remove(id)
		}
	}

	leap := func(dir Direction) {
		if dest, ok := square.travel(dir); ok {
			mark(dest)
		}
	}

	slide := func(dir Direction) {
		if skipDir != noDirection && (skipDir == dir || skipDir == dir.opposite()) {
			return
		}
		cur, ok := square.travel(dir)
		iters := 0
		for ok {
			mark(cur)
			blocked := d.HasPiece(cur)
			iters++
			if blocked || iters > 6 {
				break
			}
			cur, ok = cur.travel(dir)
		}
	}

	switch k {
	case Pawn:
		if id.IsWhite() {
			leap(NorthEast)
			leap(NorthWest)
		} else {
			leap(SouthEast)
			leap(SouthWest)
		}
	case Knight:
		for _, dir := range knightDirections {
			leap(dir)
		}
	case King:
		for _, dir := range rayDirections {
			leap(dir)
		}
	case Bishop:
		slide(NorthEast)
		slide(SouthEast)
		slide(SouthWest)
		slide(NorthWest)
	case Rook:
		slide(North)
		slide(East)
		slide(South)
		slide(West)
	case Queen:
		for _, dir := range rayDirections {
			slide(dir)
		}
	}

	if debugChecks && d.attacks[square].Contains(id) {
		panic("board: piece cannot attack its own square")
	}
}

// updateSliders extends (add=true) or retracts (add=false) every slider's
// ray that passes through square, stopping at the first occupied square
// along the ray (inclusive of that square, since a piece attacks the square
// it is blocked by).
func (d *boardData) updateSliders(square Square, add bool) {
	sliders := d.attacks[square] & (d.mask.Bishops() | d.mask.Rooks() | d.mask.Queens())

	sliders.ForEach(func(id PieceID) bool {
		attacker := d.SquareOfPiece(id)
		dir, ok := attacker.direction(square)
		if !ok {
			return true
		}
		square.rayAttacks(dir, func(dest Square) bool {
			if add {
				d.attacks[dest].Add(id)
			} else {
				d.attacks[dest].Remove(id)
			}
			return !d.HasPiece(dest)
		})
		return true
	})
}
