package board

// Piecelist is the PieceID -> Square map: the location of every live piece,
// indexed by id.
type Piecelist [32]Square

// newPiecelist returns a Piecelist with every id unplaced.
func newPiecelist() Piecelist {
	var pl Piecelist
	for i := range pl {
		pl[i] = NoSquare
	}
	return pl
}

// Get returns the square occupied by id, or NoSquare if it has none.
func (pl Piecelist) Get(id PieceID) Square {
	return pl[id]
}

// AddPiece records that id now occupies square. Panics in debug builds if id
// was already placed somewhere.
func (pl *Piecelist) AddPiece(id PieceID, square Square) {
	if debugChecks && pl[id] != NoSquare {
		panic("piecelist: attempted to add an id already placed")
	}
	pl[id] = square
}

// RemovePiece clears id's location.
func (pl *Piecelist) RemovePiece(id PieceID) {
	pl[id] = NoSquare
}

// MovePiece updates id's location from one square to another.
func (pl *Piecelist) MovePiece(id PieceID, from, to Square) {
	if debugChecks && pl[id] != from {
		panic("piecelist: id was not at the expected square")
	}
	pl[id] = to
}

// PieceIndexArray is the Square -> PieceID map, the inverse of Piecelist.
type PieceIndexArray [64]PieceID

// newPieceIndexArray returns a PieceIndexArray with every square empty.
func newPieceIndexArray() PieceIndexArray {
	var ia PieceIndexArray
	for i := range ia {
		ia[i] = NoPieceID
	}
	return ia
}

// Get returns the id occupying square, or NoPieceID if empty.
func (ia PieceIndexArray) Get(square Square) PieceID {
	return ia[square]
}

// AddPiece records that square is now occupied by id. Panics in debug
// builds if square was already occupied.
func (ia *PieceIndexArray) AddPiece(id PieceID, square Square) {
	if debugChecks && ia[square] != NoPieceID {
		panic("pieceindex: attempted to add a piece to an occupied square")
	}
	ia[square] = id
}

// RemovePiece clears square's occupant.
func (ia *PieceIndexArray) RemovePiece(square Square) {
	ia[square] = NoPieceID
}

// MovePiece updates the occupant of from/to squares when id moves.
func (ia *PieceIndexArray) MovePiece(id PieceID, from, to Square) {
	ia[from] = NoPieceID
	ia[to] = id
}
