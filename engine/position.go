package engine

// CastlingAvailability records whether a side may still castle on each wing.
type CastlingAvailability struct {
	KingSide, QueenSide bool
}

// Extra carries the disambiguating detail a bare from/to pair can't express.
type Extra struct {
	// Promotion is the requested promotion piece kind; zero if this is not
	// a promotion request.
	Promotion PieceKind
	// Castling is a hint only: castling intent is always recognized from
	// the king's +/-2 file displacement regardless of this flag.
	Castling bool
}

// Move is a from/to displacement plus optional promotion/castling detail.
type Move struct {
	From, To Coordinate
	Extra    *Extra
}

// Position is the core, fully owned, freely cloneable value type: a board
// plus the side-to-move, castling rights, en-passant target, and the two
// opaque clock fields, which ParseFEN stores but the rules engine never
// consults or updates (ToFEN always writes them as "0 1").
type Position struct {
	Board           Board
	SideToMove      Color
	Castling        [2]CastlingAvailability // indexed by Color
	EnPassantTarget *Coordinate
	HalfmoveClock   int
	FullmoveNumber  int
}

// CastlingFor returns the castling availability for color.
func (p *Position) CastlingFor(color Color) CastlingAvailability {
	return p.Castling[color.index()]
}

// Clone returns an independent copy of the position; mutating the clone
// never affects the original.
func (p *Position) Clone() *Position {
	clone := *p
	clone.Board = p.Board.clone()
	if p.EnPassantTarget != nil {
		target := *p.EnPassantTarget
		clone.EnPassantTarget = &target
	}
	return &clone
}

// NewStartingPosition returns the standard initial chess position.
func NewStartingPosition() *Position {
	return &Position{
		Board:      NewStartingBoard(),
		SideToMove: White,
		Castling: [2]CastlingAvailability{
			{KingSide: true, QueenSide: true}, // White
			{KingSide: true, QueenSide: true}, // Black
		},
		HalfmoveClock:  0,
		FullmoveNumber: 1,
	}
}
