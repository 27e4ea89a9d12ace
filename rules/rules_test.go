package rules

import "testing"

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestGetAvailableMovesStartingPosition(t *testing.T) {
	moves, err := GetAvailableMoves(startFEN)
	if err != nil {
		t.Fatalf("GetAvailableMoves: %v", err)
	}
	if len(moves) != 20 {
		t.Fatalf("len(moves) = %d, want 20", len(moves))
	}
}

func TestCanDoMove(t *testing.T) {
	ok, err := CanDoMove(startFEN, "e2e4")
	if err != nil {
		t.Fatalf("CanDoMove: %v", err)
	}
	if !ok {
		t.Errorf("e2e4 should be legal from the starting position")
	}

	ok, err = CanDoMove(startFEN, "e2e5")
	if err != nil {
		t.Fatalf("CanDoMove: %v", err)
	}
	if ok {
		t.Errorf("e2e5 should be illegal from the starting position")
	}
}

func TestGetAppliedMove(t *testing.T) {
	fen, err := GetAppliedMove(startFEN, "e2e4")
	if err != nil {
		t.Fatalf("GetAppliedMove: %v", err)
	}
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if fen != want {
		t.Errorf("GetAppliedMove = %q, want %q", fen, want)
	}
}

func TestGetAvailableMovesListsPromotionWithoutLetter(t *testing.T) {
	moves, err := GetAvailableMoves("8/P7/8/8/8/8/7k/K7 w - - 0 1")
	if err != nil {
		t.Fatalf("GetAvailableMoves: %v", err)
	}
	want := "a7a8"
	found := false
	for _, m := range moves {
		if m == want {
			found = true
		}
		if len(m) == 5 && m[:4] == want {
			t.Errorf("promotion move %q carries a piece letter, want %q", m, want)
		}
	}
	if !found {
		t.Errorf("expected %q among %v", want, moves)
	}
}

func TestGetAppliedMoveRejectsIllegalMove(t *testing.T) {
	if _, err := GetAppliedMove(startFEN, "e2e5"); err == nil {
		t.Errorf("expected error for illegal move")
	}
}

func TestIsWhiteTurn(t *testing.T) {
	white, err := IsWhiteTurn(startFEN)
	if err != nil {
		t.Fatalf("IsWhiteTurn: %v", err)
	}
	if !white {
		t.Errorf("expected white to move from the starting position")
	}
}

func TestIsLostConditionAndIsCheck(t *testing.T) {
	foolsMate := "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	check, err := IsCheck(foolsMate)
	if err != nil {
		t.Fatalf("IsCheck: %v", err)
	}
	if !check {
		t.Errorf("expected check in fool's mate position")
	}

	lost, err := IsLostCondition(foolsMate)
	if err != nil {
		t.Fatalf("IsLostCondition: %v", err)
	}
	if !lost {
		t.Errorf("expected lost condition in fool's mate position")
	}

	pat, err := IsPat(foolsMate)
	if err != nil {
		t.Fatalf("IsPat: %v", err)
	}
	if pat {
		t.Errorf("checkmate must not also report stalemate")
	}
}

func TestIsPat(t *testing.T) {
	stalemate := "7k/5K2/6Q1/8/8/8/8/8 b - - 0 1"

	pat, err := IsPat(stalemate)
	if err != nil {
		t.Fatalf("IsPat: %v", err)
	}
	if !pat {
		t.Errorf("expected stalemate")
	}

	lost, err := IsLostCondition(stalemate)
	if err != nil {
		t.Fatalf("IsLostCondition: %v", err)
	}
	if lost {
		t.Errorf("stalemate must not also report lost condition")
	}
}

func TestGetAvailableMovesPropagatesParseError(t *testing.T) {
	if _, err := GetAvailableMoves("not a fen"); err == nil {
		t.Errorf("expected error for malformed FEN")
	}
}
