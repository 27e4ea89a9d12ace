// Command capi builds a C shared/archive library (cgo buildmode=c-shared or
// c-archive) exposing the rules engine's seven operations as exported C
// functions, plus a process-wide last-error slot a host language consumes
// instead of a per-call (string, error) pair. This mirrors the "global
// error, consume and clear" contract of a C API that cannot return Go's
// multi-value errors directly.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"strings"
	"sync"
	"unsafe"

	"chessrules.dev/rules"
)

var (
	lastErrorMu sync.Mutex
	lastError   *string
)

func setError(err error) {
	lastErrorMu.Lock()
	defer lastErrorMu.Unlock()
	if err == nil {
		lastError = nil
		return
	}
	msg := err.Error()
	lastError = &msg
}

// ChessLastError returns the most recently recorded error message and
// clears it, or NULL if no error is pending. The caller owns the returned
// string and must free it with ChessFreeString.
//
//export ChessLastError
func ChessLastError() *C.char {
	lastErrorMu.Lock()
	defer lastErrorMu.Unlock()
	if lastError == nil {
		return nil
	}
	out := C.CString(*lastError)
	lastError = nil
	return out
}

// ChessFreeString releases a string previously returned by this package.
//
//export ChessFreeString
func ChessFreeString(ptr *C.char) {
	C.free(unsafe.Pointer(ptr))
}

func panicIfNull(ptr *C.char) {
	if ptr == nil {
		panic("chessrules: null pointer given as an argument")
	}
}

// ChessGetAvailableMoves returns every legal move from fenPtr, newline
// joined, or NULL on error (see ChessLastError).
//
//export ChessGetAvailableMoves
func ChessGetAvailableMoves(fenPtr *C.char) *C.char {
	panicIfNull(fenPtr)
	fen := C.GoString(fenPtr)

	moves, err := rules.GetAvailableMoves(fen)
	if err != nil {
		setError(err)
		return nil
	}
	setError(nil)
	return C.CString(strings.Join(moves, "\n"))
}

// ChessCanDoMove reports whether mvPtr is legal from fenPtr.
//
//export ChessCanDoMove
func ChessCanDoMove(fenPtr, mvPtr *C.char) C.bool {
	panicIfNull(fenPtr)
	panicIfNull(mvPtr)

	ok, err := rules.CanDoMove(C.GoString(fenPtr), C.GoString(mvPtr))
	setError(err)
	return C.bool(ok)
}

// ChessGetAppliedMove applies mvPtr to fenPtr and returns the resulting
// FEN, or NULL on error.
//
//export ChessGetAppliedMove
func ChessGetAppliedMove(fenPtr, mvPtr *C.char) *C.char {
	panicIfNull(fenPtr)
	panicIfNull(mvPtr)

	fen, err := rules.GetAppliedMove(C.GoString(fenPtr), C.GoString(mvPtr))
	if err != nil {
		setError(err)
		return nil
	}
	setError(nil)
	return C.CString(fen)
}

// ChessIsWhiteTurn reports whether White is to move in fenPtr.
//
//export ChessIsWhiteTurn
func ChessIsWhiteTurn(fenPtr *C.char) C.bool {
	return wrapBool(fenPtr, rules.IsWhiteTurn)
}

// ChessIsLostCondition reports checkmate for the side to move in fenPtr.
//
//export ChessIsLostCondition
func ChessIsLostCondition(fenPtr *C.char) C.bool {
	return wrapBool(fenPtr, rules.IsLostCondition)
}

// ChessIsCheck reports whether the side to move in fenPtr is in check.
//
//export ChessIsCheck
func ChessIsCheck(fenPtr *C.char) C.bool {
	return wrapBool(fenPtr, rules.IsCheck)
}

// ChessIsPat reports stalemate for the side to move in fenPtr.
//
//export ChessIsPat
func ChessIsPat(fenPtr *C.char) C.bool {
	return wrapBool(fenPtr, rules.IsPat)
}

func wrapBool(fenPtr *C.char, f func(string) (bool, error)) C.bool {
	panicIfNull(fenPtr)
	ok, err := f(C.GoString(fenPtr))
	setError(err)
	return C.bool(ok)
}

func main() {}
