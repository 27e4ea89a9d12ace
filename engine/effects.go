package engine

// effect is a deferred mutation on a Position. The legality routine
// returns a sequence of effects so a candidate move can be fully described,
// then replayed onto either the real position or a scratch clone for
// king-safety testing, without touching the position under test until the
// move is confirmed legal.
//
// spec.md's source material expresses this as closures (func(*Position));
// we use a small closed set of named mutation records instead, which reads
// the same but is exhaustively matchable and needs no per-test allocation
// of a closure value.
type effect interface {
	apply(*Position)
}

type setSquareEffect struct {
	at    Coordinate
	piece *ColoredPiece
}

func (e setSquareEffect) apply(p *Position) { p.Board.Set(e.at, e.piece) }

type setEnPassantEffect struct {
	target *Coordinate
}

func (e setEnPassantEffect) apply(p *Position) { p.EnPassantTarget = e.target }

// clearEnPassantIfUnchanged clears the en-passant target only if it is
// still the one that existed before this move started (i.e. no new one was
// set in the meantime by a pawn two-step effect earlier in the sequence).
type clearEnPassantIfUnchangedEffect struct {
	before *Coordinate
}

func (e clearEnPassantIfUnchangedEffect) apply(p *Position) {
	if coordinatePtrEqual(p.EnPassantTarget, e.before) {
		p.EnPassantTarget = nil
	}
}

// coordinatePtrEqual compares two optional coordinates by value: Clone
// always allocates a fresh *Coordinate, so pointer identity never survives
// a clone even when the pointed-to value is unchanged.
func coordinatePtrEqual(a, b *Coordinate) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type clearCastlingEffect struct {
	color Color
}

func (e clearCastlingEffect) apply(p *Position) {
	p.Castling[e.color.index()] = CastlingAvailability{}
}

type clearCastlingSideEffect struct {
	color    Color
	kingSide bool
}

func (e clearCastlingSideEffect) apply(p *Position) {
	avail := &p.Castling[e.color.index()]
	if e.kingSide {
		avail.KingSide = false
	} else {
		avail.QueenSide = false
	}
}

type flipSideEffect struct{}

func (e flipSideEffect) apply(p *Position) { p.SideToMove = p.SideToMove.Reverse() }

func applyEffects(effects []effect, p *Position) {
	for _, e := range effects {
		e.apply(p)
	}
}
