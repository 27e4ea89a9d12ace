package engine

import (
	"sort"
	"testing"
)

func moveKey(m Move) string {
	return m.From.String() + m.To.String()
}

func sortedKeys(moves []Move) []string {
	keys := make([]string, len(moves))
	for i, m := range moves {
		keys[i] = moveKey(m)
	}
	sort.Strings(keys)
	return keys
}

func assertSameMoveSet(t *testing.T, fast, slow []Move) {
	t.Helper()
	fk, sk := sortedKeys(fast), sortedKeys(slow)
	if len(fk) != len(sk) {
		t.Fatalf("move count mismatch: fast=%d slow=%d", len(fk), len(sk))
	}
	for i := range fk {
		if fk[i] != sk[i] {
			t.Fatalf("move sets differ at %d: fast=%q slow=%q", i, fk[i], sk[i])
		}
	}
}

func TestEnumerateLegalStartingPosition(t *testing.T) {
	pos := NewStartingPosition()
	moves := EnumerateLegal(pos)
	if len(moves) != 20 {
		t.Fatalf("len(moves) = %d, want 20", len(moves))
	}
	assertSameMoveSet(t, moves, enumerateLegalSlow(pos))
}

func TestEnumerateLegalAgreesWithSlowOracle(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"8/5K1k/8/8/8/8/8/8 w - - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		assertSameMoveSet(t, EnumerateLegal(pos), enumerateLegalSlow(pos))
	}
}

func TestLoneKingScenario(t *testing.T) {
	pos, err := ParseFEN("8/5K1k/8/8/8/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := EnumerateLegal(pos)
	if len(moves) == 0 {
		t.Fatalf("expected white king to have legal moves")
	}
	for _, m := range moves {
		if m.To == (Coordinate{7, 7}) {
			t.Errorf("white king should not be able to move adjacent to black king: %+v", m)
		}
	}
}

func TestCastlingEnumeratedViaKingDisplacement(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := EnumerateLegal(pos)
	var sawKingSide, sawQueenSide bool
	for _, m := range moves {
		if m.From == (Coordinate{5, 1}) && m.To == (Coordinate{7, 1}) {
			sawKingSide = true
		}
		if m.From == (Coordinate{5, 1}) && m.To == (Coordinate{3, 1}) {
			sawQueenSide = true
		}
	}
	if !sawKingSide || !sawQueenSide {
		t.Fatalf("expected both castling moves, kingSide=%v queenSide=%v", sawKingSide, sawQueenSide)
	}

	next, err := ApplyMove(pos, Move{From: Coordinate{5, 1}, To: Coordinate{7, 1}})
	if err != nil {
		t.Fatalf("ApplyMove castling: %v", err)
	}
	rook := next.Board.Get(Coordinate{6, 1})
	if rook == nil || rook.Kind != Rook || rook.Color != White {
		t.Errorf("rook did not land on f1 after kingside castling: %v", rook)
	}
	king := next.Board.Get(Coordinate{7, 1})
	if king == nil || king.Kind != King {
		t.Errorf("king did not land on g1 after kingside castling: %v", king)
	}
	if next.CastlingFor(White).KingSide || next.CastlingFor(White).QueenSide {
		t.Errorf("white castling rights not cleared after castling")
	}
}

func TestPawnTwoStepSetsEnPassantTarget(t *testing.T) {
	pos := NewStartingPosition()
	next, err := ApplyMove(pos, Move{From: Coordinate{5, 2}, To: Coordinate{5, 4}})
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	want := Coordinate{5, 3}
	if next.EnPassantTarget == nil || *next.EnPassantTarget != want {
		t.Fatalf("EnPassantTarget = %v, want %v", next.EnPassantTarget, want)
	}
}

func TestEnPassantTargetClearedAfterUnrelatedMove(t *testing.T) {
	pos := NewStartingPosition()
	afterTwoStep, err := ApplyMove(pos, Move{From: Coordinate{5, 2}, To: Coordinate{5, 4}})
	if err != nil {
		t.Fatalf("ApplyMove two-step: %v", err)
	}
	if afterTwoStep.EnPassantTarget == nil {
		t.Fatalf("expected en-passant target to be set after the two-step")
	}

	// Any non-pawn move by the other side must clear the stale target, even
	// though ApplyMove clones the position (and so never reuses the same
	// *Coordinate pointer) before applying effects.
	afterUnrelated, err := ApplyMove(afterTwoStep, Move{From: Coordinate{2, 8}, To: Coordinate{3, 6}})
	if err != nil {
		t.Fatalf("ApplyMove unrelated knight move: %v", err)
	}
	if afterUnrelated.EnPassantTarget != nil {
		t.Fatalf("EnPassantTarget = %v, want nil after a subsequent non-pawn move", afterUnrelated.EnPassantTarget)
	}
}

func TestEnPassantCapture(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	next, err := ApplyMove(pos, Move{From: Coordinate{5, 5}, To: Coordinate{4, 6}})
	if err != nil {
		t.Fatalf("ApplyMove en passant: %v", err)
	}
	if p := next.Board.Get(Coordinate{4, 5}); p != nil {
		t.Errorf("captured pawn still present at d5: %v", p)
	}
	if p := next.Board.Get(Coordinate{4, 6}); p == nil || p.Kind != Pawn || p.Color != White {
		t.Errorf("capturing pawn not on d6: %v", p)
	}
}

func TestPromotionDefaultsToQueen(t *testing.T) {
	pos, err := ParseFEN("7k/P7/8/8/8/8/8/7K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	next, err := ApplyMove(pos, Move{From: Coordinate{1, 7}, To: Coordinate{1, 8}})
	if err != nil {
		t.Fatalf("ApplyMove promotion: %v", err)
	}
	p := next.Board.Get(Coordinate{1, 8})
	if p == nil || p.Kind != Queen || p.Color != White {
		t.Errorf("a8 = %v, want white queen", p)
	}
}

func TestPromotionToRequestedKind(t *testing.T) {
	pos, err := ParseFEN("7k/P7/8/8/8/8/8/7K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	next, err := ApplyMove(pos, Move{From: Coordinate{1, 7}, To: Coordinate{1, 8}, Extra: &Extra{Promotion: Knight}})
	if err != nil {
		t.Fatalf("ApplyMove promotion: %v", err)
	}
	p := next.Board.Get(Coordinate{1, 8})
	if p == nil || p.Kind != Knight || p.Color != White {
		t.Errorf("a8 = %v, want white knight", p)
	}
}

func TestIsCheckmateFoolsMate(t *testing.T) {
	pos, err := ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !InCheck(pos) {
		t.Fatalf("expected white to be in check")
	}
	if !IsCheckmate(pos) {
		t.Fatalf("expected checkmate")
	}
	if IsStalemate(pos) {
		t.Fatalf("checkmate must not also report stalemate")
	}
}

func TestIsStalemate(t *testing.T) {
	pos, err := ParseFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if InCheck(pos) {
		t.Fatalf("expected black not to be in check")
	}
	if !IsStalemate(pos) {
		t.Fatalf("expected stalemate")
	}
	if IsCheckmate(pos) {
		t.Fatalf("stalemate must not also report checkmate")
	}
}

func TestIsWhiteToMove(t *testing.T) {
	pos := NewStartingPosition()
	if !IsWhiteToMove(pos) {
		t.Errorf("starting position should have white to move")
	}
	next, err := ApplyMove(pos, Move{From: Coordinate{5, 2}, To: Coordinate{5, 4}})
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if IsWhiteToMove(next) {
		t.Errorf("after white's move, black should be to move")
	}
}

func TestCanDoMoveRejectsSelfCheck(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/r3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if CanDoMove(pos, Move{From: Coordinate{5, 1}, To: Coordinate{6, 1}}) {
		t.Errorf("king move along the rook's rank should still be in check")
	}
	if !CanDoMove(pos, Move{From: Coordinate{5, 1}, To: Coordinate{5, 2}}) {
		t.Errorf("king move off the rook's rank should be legal")
	}
}

func TestApplyMoveRejectsIllegalMove(t *testing.T) {
	pos := NewStartingPosition()
	_, err := ApplyMove(pos, Move{From: Coordinate{5, 2}, To: Coordinate{5, 5}})
	if err == nil {
		t.Fatalf("expected pawn three-step move to be rejected")
	}
}

func TestApplyMoveDoesNotMutateOriginal(t *testing.T) {
	pos := NewStartingPosition()
	fenBefore := ToFEN(pos)
	if _, err := ApplyMove(pos, Move{From: Coordinate{5, 2}, To: Coordinate{5, 4}}); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if ToFEN(pos) != fenBefore {
		t.Errorf("ApplyMove mutated its input position")
	}
}
