package engine

// catalogueKey indexes the move-candidate catalogue by piece kind and
// color (only pawns are color-dependent; for other kinds both colors map to
// the same displacement list).
type catalogueKey struct {
	Kind  PieceKind
	Color Color
}

// candidateCatalogue maps (kind, color) to the finite set of coordinate
// displacements that might be legal for that piece from any square. It is
// a performance optimization over scanning all 64 destination squares
// (enumerateLegalSlow does exactly that, and rules_test.go checks that both
// agree on the
// resulting legal-move set).
var candidateCatalogue = buildCatalogue()

func buildCatalogue() map[catalogueKey][]Coordinate {
	cat := make(map[catalogueKey][]Coordinate)

	cat[catalogueKey{Pawn, White}] = []Coordinate{
		up, up.Scale(2), up.Add(left), up.Add(right),
	}
	cat[catalogueKey{Pawn, Black}] = []Coordinate{
		down, down.Scale(2), down.Add(left), down.Add(right),
	}

	knightDeltas := []Coordinate{
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	}
	cat[catalogueKey{Knight, White}] = knightDeltas
	cat[catalogueKey{Knight, Black}] = knightDeltas

	var bishopDeltas []Coordinate
	for _, dir := range []Coordinate{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
		for k := 1; k <= 8; k++ {
			bishopDeltas = append(bishopDeltas, dir.Scale(k))
		}
	}
	cat[catalogueKey{Bishop, White}] = bishopDeltas
	cat[catalogueKey{Bishop, Black}] = bishopDeltas

	var rookDeltas []Coordinate
	for _, dir := range []Coordinate{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
		for k := 1; k <= 8; k++ {
			rookDeltas = append(rookDeltas, dir.Scale(k))
		}
	}
	cat[catalogueKey{Rook, White}] = rookDeltas
	cat[catalogueKey{Rook, Black}] = rookDeltas

	queenDeltas := append(append([]Coordinate{}, bishopDeltas...), rookDeltas...)
	cat[catalogueKey{Queen, White}] = queenDeltas
	cat[catalogueKey{Queen, Black}] = queenDeltas

	kingDeltas := []Coordinate{
		{0, 1}, {0, -1}, {1, 0}, {-1, 0},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	cat[catalogueKey{King, White}] = kingDeltas
	cat[catalogueKey{King, Black}] = kingDeltas

	return cat
}

// castlingCandidates are the two king displacements that might start a
// castling move; they are not part of candidateCatalogue because castling
// is recognized and validated separately (see checkCastling).
var castlingCandidates = []Coordinate{{2, 0}, {-2, 0}}
