package engine

import "fmt"

// CanDoMove reports whether m is legal in position pos.
func CanDoMove(pos *Position, m Move) bool {
	_, err := checkMove(pos, m, true, false)
	return err == nil
}

// ApplyMove runs legality and, if m is legal, returns the resulting
// position. pos is never modified; on error it returns a nil position and
// the rejection reason.
func ApplyMove(pos *Position, m Move) (*Position, error) {
	effects, err := checkMove(pos, m, true, false)
	if err != nil {
		return nil, err
	}
	next := pos.Clone()
	applyEffects(effects, next)
	return next, nil
}

// checkMove is the central legality routine. It returns the ordered effect
// sequence that applying m would produce, or an error naming the first
// precondition m fails. considerKingSafety additionally rejects moves that
// would leave the mover's own king attacked. ignoreSideToMove skips the
// turn check, used internally to test whether a given color's piece could
// reach a square (attack detection) regardless of whose turn it actually
// is.
func checkMove(pos *Position, m Move, considerKingSafety, ignoreSideToMove bool) ([]effect, error) {
	if !m.From.OnBoard() || !m.To.OnBoard() {
		return nil, fmt.Errorf("One of the positions in move are not on the board")
	}

	piece := pos.Board.Get(m.From)
	if piece == nil {
		return nil, fmt.Errorf("Can't move non existing piece")
	}

	if !ignoreSideToMove && piece.Color != pos.SideToMove {
		return nil, fmt.Errorf("This is not a %s turn", piece.Color)
	}

	target := pos.Board.Get(m.To)
	if target != nil && target.Color == piece.Color {
		return nil, fmt.Errorf("Can't move %s piece into another %s piece", piece.Color, piece.Color)
	}

	var effects []effect
	var ok bool

	delta := m.To.Sub(m.From)
	switch {
	case piece.Kind == King && abs(delta.File) == 2 && delta.Rank == 0:
		effects, ok = checkCastling(pos, m, piece.Color)
	case piece.Kind == Pawn:
		effects, ok = checkPawn(pos, m, piece.Color)
	case piece.Kind == Knight:
		effects, ok = checkKnight(pos, m)
	case piece.Kind == Bishop:
		effects, ok = checkBishop(pos, m)
	case piece.Kind == Rook:
		effects, ok = checkRook(pos, m, piece.Color)
	case piece.Kind == Queen:
		effects, ok = checkQueen(pos, m)
	case piece.Kind == King:
		effects, ok = checkKing(pos, m, piece.Color)
	}
	if !ok {
		return nil, fmt.Errorf("Impossible move")
	}

	effects = append(effects,
		clearEnPassantIfUnchangedEffect{before: pos.EnPassantTarget},
		flipSideEffect{},
	)

	if considerKingSafety {
		scratch := pos.Clone()
		applyEffects(effects, scratch)
		kingSquare, found := findKing(scratch, piece.Color)
		if !found {
			panic("chessrules: no king on board for " + piece.Color.String())
		}
		if isAttacked(scratch, kingSquare, piece.Color.Reverse()) {
			return nil, fmt.Errorf("king could be attacked then")
		}
	}

	return effects, nil
}

// rawMove returns the two-effect sequence that relocates whatever piece
// currently sits at from to to, clearing from.
func rawMove(pos *Position, from, to Coordinate) []effect {
	return []effect{
		setSquareEffect{at: to, piece: pos.Board.Get(from)},
		setSquareEffect{at: from, piece: nil},
	}
}

// checkCastling validates a king move of two files along its rank as
// castling: the mover's right for that wing must be set and the squares
// between king and rook must be empty. It does not check whether the king's
// start or transit squares are attacked; the king-safety check in checkMove
// examines only the square the king lands on.
func checkCastling(pos *Position, m Move, color Color) ([]effect, bool) {
	from, to := m.From, m.To
	rank := from.Rank
	kingSide := to.File > from.File

	avail := pos.CastlingFor(color)
	if kingSide && !avail.KingSide {
		return nil, false
	}
	if !kingSide && !avail.QueenSide {
		return nil, false
	}

	var between []int
	if kingSide {
		between = []int{1, 2}
	} else {
		between = []int{1, 2, 3}
	}
	for _, d := range between {
		file := from.File + d
		if !kingSide {
			file = from.File - d
		}
		if pos.Board.Get(Coordinate{file, rank}) != nil {
			return nil, false
		}
	}

	effects := rawMove(pos, from, to)
	if kingSide {
		rookFrom := Coordinate{8, rank}
		rookTo := Coordinate{from.File + 1, rank}
		effects = append(effects, rawMove(pos, rookFrom, rookTo)...)
	} else {
		rookFrom := Coordinate{1, rank}
		rookTo := Coordinate{from.File - 1, rank}
		effects = append(effects, rawMove(pos, rookFrom, rookTo)...)
	}
	effects = append(effects, clearCastlingEffect{color: color})
	return effects, true
}

func checkPawn(pos *Position, m Move, color Color) ([]effect, bool) {
	from, to := m.From, m.To
	realUp := up.PointOfView(color)
	realDown := down.PointOfView(color)
	upLeft := from.Add(realUp).Add(left)
	upRight := from.Add(realUp).Add(right)

	var effects []effect
	switch {
	case pos.Board.Get(to) != nil:
		if to != upLeft && to != upRight {
			return nil, false
		}
		effects = rawMove(pos, from, to)
	case pos.EnPassantTarget != nil && to == *pos.EnPassantTarget:
		if to != upLeft && to != upRight {
			return nil, false
		}
		effects = rawMove(pos, from, to)
		effects = append(effects, setSquareEffect{at: to.Add(realDown), piece: nil})
	default:
		oneUp := to == from.Add(realUp)
		twoUp := to == from.Add(realUp.Scale(2))
		onSecondRank := from.Rank == RankFromPOV(2, color)
		if oneUp {
			effects = rawMove(pos, from, to)
		} else if twoUp && onSecondRank && pos.Board.Get(from.Add(realUp)) == nil {
			effects = rawMove(pos, from, to)
			target := from.Add(realUp)
			effects = append(effects, setEnPassantEffect{target: &target})
		} else {
			return nil, false
		}
	}

	if RankFromPOV(to.Rank, color) == 8 {
		kind := Queen
		if m.Extra != nil && m.Extra.Promotion != 0 && m.Extra.Promotion != King {
			kind = m.Extra.Promotion
		}
		effects = append(effects, setSquareEffect{at: to, piece: &ColoredPiece{Kind: kind, Color: color}})
	}

	return effects, true
}

func checkKnight(pos *Position, m Move) ([]effect, bool) {
	d := m.To.Sub(m.From).Abs()
	if (d.File == 1 && d.Rank == 2) || (d.File == 2 && d.Rank == 1) {
		return rawMove(pos, m.From, m.To), true
	}
	return nil, false
}

func checkBishop(pos *Position, m Move) ([]effect, bool) {
	d := m.To.Sub(m.From)
	if d.File == 0 || abs(d.File) != abs(d.Rank) {
		return nil, false
	}
	if pathBlocked(pos, m.From, m.To) {
		return nil, false
	}
	return rawMove(pos, m.From, m.To), true
}

func checkRook(pos *Position, m Move, color Color) ([]effect, bool) {
	d := m.To.Sub(m.From)
	if (d.File == 0) == (d.Rank == 0) {
		return nil, false
	}
	if pathBlocked(pos, m.From, m.To) {
		return nil, false
	}
	effects := rawMove(pos, m.From, m.To)
	homeRank := RankFromPOV(1, color)
	if m.From.Rank == homeRank {
		switch m.From.File {
		case 1:
			effects = append(effects, clearCastlingSideEffect{color: color, kingSide: false})
		case 8:
			effects = append(effects, clearCastlingSideEffect{color: color, kingSide: true})
		}
	}
	return effects, true
}

func checkQueen(pos *Position, m Move) ([]effect, bool) {
	d := m.To.Sub(m.From)
	straight := (d.File == 0) != (d.Rank == 0)
	diagonal := d.File != 0 && abs(d.File) == abs(d.Rank)
	if !straight && !diagonal {
		return nil, false
	}
	if pathBlocked(pos, m.From, m.To) {
		return nil, false
	}
	return rawMove(pos, m.From, m.To), true
}

func checkKing(pos *Position, m Move, color Color) ([]effect, bool) {
	d := m.To.Sub(m.From).Abs()
	if !((d.File+d.Rank == 1) || (d.File == 1 && d.Rank == 1)) {
		return nil, false
	}
	effects := rawMove(pos, m.From, m.To)
	effects = append(effects, clearCastlingEffect{color: color})
	return effects, true
}

// pathBlocked reports whether any square strictly between from and to
// (exclusive of both endpoints) is occupied. from and to must share a rank,
// file, or diagonal.
func pathBlocked(pos *Position, from, to Coordinate) bool {
	step := to.Sub(from).Sign()
	cur := from.Add(step)
	for cur != to {
		if pos.Board.Get(cur) != nil {
			return true
		}
		cur = cur.Add(step)
	}
	return false
}

func findKing(pos *Position, color Color) (Coordinate, bool) {
	for file := 1; file <= 8; file++ {
		for rank := 1; rank <= 8; rank++ {
			c := Coordinate{file, rank}
			if p := pos.Board.Get(c); p != nil && p.Kind == King && p.Color == color {
				return c, true
			}
		}
	}
	return Coordinate{}, false
}

// isAttacked reports whether any byColor piece could move to target in one
// (non-king-safety-checked) move.
func isAttacked(pos *Position, target Coordinate, byColor Color) bool {
	for file := 1; file <= 8; file++ {
		for rank := 1; rank <= 8; rank++ {
			from := Coordinate{file, rank}
			p := pos.Board.Get(from)
			if p == nil || p.Color != byColor {
				continue
			}
			if _, err := checkMove(pos, Move{From: from, To: target}, false, true); err == nil {
				return true
			}
		}
	}
	return false
}

// EnumerateLegal returns every legal move for the side to move, generated
// via the candidate catalogue. Order: outer iteration by file 1..8, inner
// by rank 1..8; the order is stable but not otherwise specified.
func EnumerateLegal(pos *Position) []Move {
	var moves []Move
	color := pos.SideToMove
	for file := 1; file <= 8; file++ {
		for rank := 1; rank <= 8; rank++ {
			from := Coordinate{file, rank}
			p := pos.Board.Get(from)
			if p == nil || p.Color != color {
				continue
			}
			for _, d := range candidateCatalogue[catalogueKey{p.Kind, color}] {
				to := from.Add(d)
				if !to.OnBoard() {
					continue
				}
				m := Move{From: from, To: to}
				if CanDoMove(pos, m) {
					moves = append(moves, m)
				}
			}
			if p.Kind == King {
				for _, d := range castlingCandidates {
					to := from.Add(d)
					if !to.OnBoard() {
						continue
					}
					m := Move{From: from, To: to}
					if CanDoMove(pos, m) {
						moves = append(moves, m)
					}
				}
			}
		}
	}
	return moves
}

// enumerateLegalSlow is the brute-force from/to test oracle: it tries every
// one of the 64x64 from-to pairs instead of consulting the catalogue. It
// must agree with EnumerateLegal as a set (see rules_test.go).
func enumerateLegalSlow(pos *Position) []Move {
	var moves []Move
	for ff := 1; ff <= 8; ff++ {
		for fr := 1; fr <= 8; fr++ {
			for tf := 1; tf <= 8; tf++ {
				for tr := 1; tr <= 8; tr++ {
					m := Move{From: Coordinate{ff, fr}, To: Coordinate{tf, tr}}
					if CanDoMove(pos, m) {
						moves = append(moves, m)
					}
				}
			}
		}
	}
	return moves
}

// InCheck reports whether the side to move's king is attacked.
func InCheck(pos *Position) bool {
	kingSquare, found := findKing(pos, pos.SideToMove)
	if !found {
		panic("chessrules: no king on board for " + pos.SideToMove.String())
	}
	return isAttacked(pos, kingSquare, pos.SideToMove.Reverse())
}

// IsCheckmate reports checkmate: the side to move is in check and has no
// legal move.
func IsCheckmate(pos *Position) bool {
	return InCheck(pos) && len(EnumerateLegal(pos)) == 0
}

// IsStalemate reports stalemate: the side to move has no legal move and is
// not in check.
func IsStalemate(pos *Position) bool {
	return len(EnumerateLegal(pos)) == 0 && !InCheck(pos)
}

// IsWhiteToMove reports whether White is to move.
func IsWhiteToMove(pos *Position) bool {
	return pos.SideToMove == White
}
