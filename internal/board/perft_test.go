package board

import "testing"

// TestPerftStartingPosition exercises the reference perft counts from the
// starting position.
func TestPerftStartingPosition(t *testing.T) {
	pos := NewPosition()

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		{5, 4865609},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := Perft(pos, tc.depth, DefaultZobristTable)
			if got != tc.expected {
				t.Errorf("Perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftKiwipete exercises the Kiwipete position, famous for stressing
// castling, promotion and en passant edge cases together.
func TestPerftKiwipete(t *testing.T) {
	pos, err := FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", DefaultZobristTable)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
		{4, 4085603},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := Perft(pos, tc.depth, DefaultZobristTable)
			if got != tc.expected {
				t.Errorf("Perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftPosition3 exercises a position heavy with pawn endgame edge
// cases: en passant, passed pawns and a king close to the action.
func TestPerftPosition3(t *testing.T) {
	pos, err := FromFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", DefaultZobristTable)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
		{5, 674624},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := Perft(pos, tc.depth, DefaultZobristTable)
			if got != tc.expected {
				t.Errorf("Perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftPosition4 exercises the standard "position 4" benchmark, known
// for castling and promotion interactions along both wings.
func TestPerftPosition4(t *testing.T) {
	pos, err := FromFEN("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", DefaultZobristTable)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 6},
		{2, 264},
		{3, 9467},
		{4, 422333},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := Perft(pos, tc.depth, DefaultZobristTable)
			if got != tc.expected {
				t.Errorf("Perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftPosition5 exercises the standard "position 5" benchmark.
func TestPerftPosition5(t *testing.T) {
	pos, err := FromFEN("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", DefaultZobristTable)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 44},
		{2, 1486},
		{3, 62379},
		{4, 2103487},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := Perft(pos, tc.depth, DefaultZobristTable)
			if got != tc.expected {
				t.Errorf("Perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftPosition6 exercises the standard "position 6" benchmark, a
// quiet middlegame position with no special moves available at the root.
func TestPerftPosition6(t *testing.T) {
	pos, err := FromFEN("r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", DefaultZobristTable)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 46},
		{2, 2079},
		{3, 89890},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := Perft(pos, tc.depth, DefaultZobristTable)
			if got != tc.expected {
				t.Errorf("Perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftEnPassantPin exercises the horizontal en passant pin: the black
// pawn on e4 cannot capture en passant onto d3 because doing so would
// remove both the e4 and d4 pawns from the fourth rank in the same instant,
// exposing the black king on a4 to the white rook on h4.
func TestPerftEnPassantPin(t *testing.T) {
	pos, err := FromFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1", DefaultZobristTable)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	moves := pos.GenerateMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.Kind() == EnPassant {
			t.Errorf("en passant move %v should be illegal (horizontal pin)", m)
		}
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 6},
		{2, 94},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			got := Perft(pos, tc.depth, DefaultZobristTable)
			if got != tc.expected {
				t.Errorf("Perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftEnPassantCaptureAvailable checks that a legal en passant capture
// is actually offered when nothing pins the capturing pawn, as a sanity
// counterpart to TestPerftEnPassantPin.
func TestPerftEnPassantCaptureAvailable(t *testing.T) {
	pos, err := FromFEN("8/8/1K6/2Pp4/8/8/8/2k5 w - d6 0 2", DefaultZobristTable)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	moves := pos.GenerateMoves()
	found := false
	for i := 0; i < moves.Len(); i++ {
		if moves.Get(i).Kind() == EnPassant {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an en passant capture to be legal here")
	}
}

// TestPerftDivideSumsToTotal checks that PerftDivide's per-move counts sum
// to the same total Perft reports, at a depth cheap enough to run eagerly.
func TestPerftDivideSumsToTotal(t *testing.T) {
	pos := NewPosition()

	total := Perft(pos, 3, DefaultZobristTable)
	divide := PerftDivide(pos, 3, DefaultZobristTable)

	var sum int64
	for _, n := range divide {
		sum += n
	}
	if sum != total {
		t.Errorf("divide sum = %d, Perft = %d", sum, total)
	}

	root := pos.GenerateMoves()
	if len(divide) != root.Len() {
		t.Errorf("divide has %d entries, want %d root moves", len(divide), root.Len())
	}
}

// TestPerftDoubleCheckKingMovesOnly checks that a double-check position only
// ever generates king moves: white's king on e1 is checked both by the
// rook on e8 along the open e-file and by the knight on d3 (black king on
// a8).
func TestPerftDoubleCheckKingMovesOnly(t *testing.T) {
	pos, err := FromFEN("k3r3/8/8/8/8/3n4/8/4K3 w - - 0 1", DefaultZobristTable)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}

	if pos.Checkers().Count() < 2 {
		t.Fatalf("expected double check position for this test to be meaningful")
	}

	moves := pos.GenerateMoves()
	kingSquare := pos.KingSquare(pos.SideToMove)
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if m.From() != kingSquare {
			t.Errorf("double check move %v does not move the king", m)
		}
	}
}
