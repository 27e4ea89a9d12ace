package engine

import (
	"strconv"
	"strings"
)

// ToFEN serializes a position to a FEN record. Per this engine's contract
// the halfmove clock and fullmove number are always emitted as "0" and "1"
// regardless of the values stored on pos: this engine never advances them
// and round-trips them opaquely only through ParseFEN/Position, not through
// serialization.
func ToFEN(pos *Position) string {
	var b strings.Builder
	b.WriteString(serializeFENPlacement(pos.Board))
	b.WriteByte(' ')
	b.WriteString(serializeFENColor(pos.SideToMove))
	b.WriteByte(' ')
	b.WriteString(serializeFENCastling(pos.Castling))
	b.WriteByte(' ')
	if pos.EnPassantTarget != nil {
		b.WriteString(pos.EnPassantTarget.String())
	} else {
		b.WriteByte('-')
	}
	b.WriteString(" 0 1")
	return b.String()
}

func serializeFENPlacement(board Board) string {
	var b strings.Builder
	for rank := 8; rank >= 1; rank-- {
		run := 0
		for file := 1; file <= 8; file++ {
			p := board.Get(Coordinate{file, rank})
			if p == nil {
				run++
				continue
			}
			if run > 0 {
				b.WriteString(strconv.Itoa(run))
				run = 0
			}
			b.WriteByte(p.Char())
		}
		if run > 0 {
			b.WriteString(strconv.Itoa(run))
		}
		if rank != 1 {
			b.WriteByte('/')
		}
	}
	return b.String()
}

func serializeFENColor(c Color) string {
	if c == White {
		return "w"
	}
	return "b"
}

func serializeFENCastling(castling [2]CastlingAvailability) string {
	white := castling[White.index()]
	black := castling[Black.index()]
	if !white.KingSide && !white.QueenSide && !black.KingSide && !black.QueenSide {
		return "-"
	}
	var b strings.Builder
	if white.KingSide {
		b.WriteByte('K')
	}
	if white.QueenSide {
		b.WriteByte('Q')
	}
	if black.KingSide {
		b.WriteByte('k')
	}
	if black.QueenSide {
		b.WriteByte('q')
	}
	return b.String()
}
