package board

import "testing"

func TestCheckmateBackRank(t *testing.T) {
	// White: Ka1, Ra8. Black: Kh8, pawns on g7/h7 boxing in their own king.
	// Black to move, already mated.
	pos, err := FromFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1", DefaultZobristTable)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	if !pos.InCheck() {
		t.Fatal("expected black to be in check")
	}
	if got := pos.GenerateMoves().Len(); got != 0 {
		t.Errorf("expected no legal moves, got %d", got)
	}
	if !pos.IsCheckmate() {
		t.Error("expected checkmate")
	}
	if pos.IsStalemate() {
		t.Error("checkmate must not also report as stalemate")
	}
}

func TestNotCheckmateKingCanCapture(t *testing.T) {
	// Black king on h8 can simply capture the undefended rook on g8.
	pos, err := FromFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1", DefaultZobristTable)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	if !pos.InCheck() {
		t.Fatal("expected black to be in check")
	}
	if pos.IsCheckmate() {
		t.Error("expected NOT checkmate, king can capture the checking rook")
	}

	moves := pos.GenerateMoves()
	found := false
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() == H8 && m.To() == G8 {
			found = true
		}
	}
	if !found {
		t.Error("expected Kxg8 to be a legal move")
	}
}

func TestNotCheckmateCanBlock(t *testing.T) {
	// White king on e1 in check from the rook on e8 (black king on a8); the
	// bishop on h5 can interpose on e2.
	pos, err := FromFEN("k3r3/8/8/7B/8/8/8/4K3 w - - 0 1", DefaultZobristTable)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	if !pos.InCheck() {
		t.Fatal("expected white to be in check")
	}
	if pos.IsCheckmate() {
		t.Error("expected NOT checkmate, Be2 blocks")
	}

	moves := pos.GenerateMoves()
	found := false
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() == H5 && m.To() == E2 {
			found = true
		}
	}
	if !found {
		t.Error("expected Be2 to be a legal blocking move")
	}
}

func TestStalemate(t *testing.T) {
	// Classic stalemate: black king on h8 has no moves and is not in check.
	pos, err := FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", DefaultZobristTable)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	if pos.InCheck() {
		t.Fatal("expected black not to be in check")
	}
	if got := pos.GenerateMoves().Len(); got != 0 {
		t.Errorf("expected no legal moves, got %d", got)
	}
	if !pos.IsStalemate() {
		t.Error("expected stalemate")
	}
	if pos.IsCheckmate() {
		t.Error("stalemate must not also report as checkmate")
	}
}

func TestHasLegalMovesMatchesGenerateMoves(t *testing.T) {
	positions := []string{
		StartFEN,
		"R6k/6pp/8/8/8/8/8/K7 b - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
	}

	for _, fen := range positions {
		pos, err := FromFEN(fen, DefaultZobristTable)
		if err != nil {
			t.Fatalf("FromFEN(%q): %v", fen, err)
		}
		want := pos.GenerateMoves().Len() > 0
		if got := pos.HasLegalMoves(); got != want {
			t.Errorf("HasLegalMoves() = %v for %q, want %v", got, fen, want)
		}
	}
}
