package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFEN parses a FEN record into a Position. It returns an error naming
// the first field that fails to parse; field order is placement, side to
// move, castling, en-passant target, halfmove clock, fullmove number.
func ParseFEN(s string) (*Position, error) {
	fields := strings.Split(s, " ")
	if len(fields) != 6 {
		return nil, fmt.Errorf("Incorrect format, fen should be 6 strings split by space")
	}

	board, err := parseFENBoard(fields[0])
	if err != nil {
		return nil, err
	}
	color, err := parseFENColor(fields[1])
	if err != nil {
		return nil, err
	}
	castling, err := parseFENCastling(fields[2])
	if err != nil {
		return nil, err
	}
	enPassant, err := parseFENOptionalCoord(fields[3])
	if err != nil {
		return nil, fmt.Errorf("during parsing en_passant:%s", err)
	}
	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("halfmove clock is not a number")
	}
	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("fullmove number is not a number")
	}

	return &Position{
		Board:           board,
		SideToMove:      color,
		Castling:        castling,
		EnPassantTarget: enPassant,
		HalfmoveClock:   halfmove,
		FullmoveNumber:  fullmove,
	}, nil
}

// parseFENBoard parses the placement field: eight ranks separated by '/',
// rank 8 first, each rank a run of piece letters and digit run-lengths
// summing to 8 files.
func parseFENBoard(s string) (Board, error) {
	var grid [8][8]*ColoredPiece
	it := 0
	lastSeenSlash := 0
	chars := []rune(s)

	for i, c := range chars {
		if it%8 == 0 && lastSeenSlash < it/8 {
			lastSeenSlash = it / 8
			if c == '/' {
				continue
			}
			return Board{}, fmt.Errorf("Expected \"/\" at %d index instead found %c", i, c)
		}
		if c >= '0' && c <= '9' {
			n := int(c - '0')
			if 8-(it%8) < n {
				return Board{}, fmt.Errorf("number overlflows at index %d", i)
			}
			it += n
			continue
		}
		piece := parsePieceRune(c)
		if piece == nil {
			return Board{}, fmt.Errorf("Unknown/unexpected symbol as a piece at %d index", i)
		}
		grid[it/8][it%8] = piece
		it++
	}

	return newBoardFromGrid(grid), nil
}

func parsePieceRune(c rune) *ColoredPiece {
	var kind PieceKind
	switch c {
	case 'P', 'p':
		kind = Pawn
	case 'N', 'n':
		kind = Knight
	case 'B', 'b':
		kind = Bishop
	case 'R', 'r':
		kind = Rook
	case 'Q', 'q':
		kind = Queen
	case 'K', 'k':
		kind = King
	default:
		return nil
	}
	color := Black
	if c >= 'A' && c <= 'Z' {
		color = White
	}
	return &ColoredPiece{Kind: kind, Color: color}
}

func parseFENColor(s string) (Color, error) {
	switch s {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	default:
		return 0, fmt.Errorf("Unknown letter color")
	}
}

func parseFENCastling(s string) ([2]CastlingAvailability, error) {
	var result [2]CastlingAvailability

	if len(s) > 4 {
		return result, fmt.Errorf("Castling data is too long")
	}
	if s == "-" {
		return result, nil
	}

	matched := 0
	if strings.Contains(s, "K") {
		result[White.index()].KingSide = true
		matched++
	}
	if strings.Contains(s, "Q") {
		result[White.index()].QueenSide = true
		matched++
	}
	if strings.Contains(s, "k") {
		result[Black.index()].KingSide = true
		matched++
	}
	if strings.Contains(s, "q") {
		result[Black.index()].QueenSide = true
		matched++
	}
	if matched < len(s) {
		return [2]CastlingAvailability{}, fmt.Errorf("Castling data contains illegal symbol")
	}
	return result, nil
}

// parseFENOptionalCoord parses the en-passant field: "-" or exactly two
// characters, with no range check beyond length.
func parseFENOptionalCoord(s string) (*Coordinate, error) {
	if s == "-" {
		return nil, nil
	}
	c, err := CoordinateFromString(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ParseMoveString parses the move grammar: two algebraic squares followed
// by an optional fifth character, either 'c' (castling hint) or a
// promotion piece letter.
func ParseMoveString(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("move should have len 4 or len 5")
	}
	from, err := CoordinateFromString(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := CoordinateFromString(s[2:4])
	if err != nil {
		return Move{}, err
	}
	if len(s) == 4 {
		return Move{From: from, To: to}, nil
	}

	c := rune(s[4])
	if c == 'c' {
		return Move{From: from, To: to, Extra: &Extra{Castling: true}}, nil
	}
	piece := parsePieceRune(c)
	if piece == nil {
		return Move{}, fmt.Errorf("promotion data includes wrong piece symbol")
	}
	return Move{From: from, To: to, Extra: &Extra{Promotion: piece.Kind}}, nil
}
