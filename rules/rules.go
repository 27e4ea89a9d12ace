// Package rules is the string-in/string-out library facade over engine: the
// seven operations a host application (or a cgo/HTTP caller) needs, each
// taking a FEN record and returning a plain value or a FEN/move-string
// result. It owns no state; every call parses its FEN argument fresh.
package rules

import (
	"strings"

	"chessrules.dev/engine"
)

// GetAvailableMoves returns every legal move from boardFEN, each formatted
// as a four-character move string ("e2e4", "e1g1"). Enumerated moves carry
// no promotion detail, so a promoting pawn move is listed once, without a
// piece letter ("a7a8"); applying it as given promotes to a queen.
func GetAvailableMoves(boardFEN string) ([]string, error) {
	pos, err := engine.ParseFEN(boardFEN)
	if err != nil {
		return nil, err
	}
	moves := engine.EnumerateLegal(pos)
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = formatMove(m)
	}
	return out, nil
}

// CanDoMove reports whether mv is legal from boardFEN.
func CanDoMove(boardFEN, mv string) (bool, error) {
	pos, err := engine.ParseFEN(boardFEN)
	if err != nil {
		return false, err
	}
	m, err := engine.ParseMoveString(mv)
	if err != nil {
		return false, err
	}
	return engine.CanDoMove(pos, m), nil
}

// GetAppliedMove applies mv to boardFEN and returns the resulting FEN. An
// illegal move returns an error and no FEN.
func GetAppliedMove(boardFEN, mv string) (string, error) {
	pos, err := engine.ParseFEN(boardFEN)
	if err != nil {
		return "", err
	}
	m, err := engine.ParseMoveString(mv)
	if err != nil {
		return "", err
	}
	next, err := engine.ApplyMove(pos, m)
	if err != nil {
		return "", err
	}
	return engine.ToFEN(next), nil
}

// IsWhiteTurn reports whether White is to move in boardFEN.
func IsWhiteTurn(boardFEN string) (bool, error) {
	pos, err := engine.ParseFEN(boardFEN)
	if err != nil {
		return false, err
	}
	return engine.IsWhiteToMove(pos), nil
}

// IsLostCondition reports checkmate for the side to move in boardFEN.
func IsLostCondition(boardFEN string) (bool, error) {
	pos, err := engine.ParseFEN(boardFEN)
	if err != nil {
		return false, err
	}
	return engine.IsCheckmate(pos), nil
}

// IsCheck reports whether the side to move in boardFEN is in check.
func IsCheck(boardFEN string) (bool, error) {
	pos, err := engine.ParseFEN(boardFEN)
	if err != nil {
		return false, err
	}
	return engine.InCheck(pos), nil
}

// IsPat reports stalemate for the side to move in boardFEN: no legal move
// and not checkmate.
func IsPat(boardFEN string) (bool, error) {
	pos, err := engine.ParseFEN(boardFEN)
	if err != nil {
		return false, err
	}
	return engine.IsStalemate(pos), nil
}

func formatMove(m engine.Move) string {
	var b strings.Builder
	b.WriteString(m.From.String())
	b.WriteString(m.To.String())
	if m.Extra != nil && m.Extra.Promotion != 0 {
		// The promotion letter's case is fixed by the move-string grammar
		// (spec.md §6: uppercase), independent of which color is promoting.
		promoted := engine.ColoredPiece{Kind: m.Extra.Promotion, Color: engine.White}
		b.WriteByte(promoted.Char())
	}
	return b.String()
}
