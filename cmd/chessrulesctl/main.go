// chessrulesctl is a scriptable batch client over the rules facade: given a
// FEN and a subcommand it prints one result and exits. It is not an
// interactive play loop.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"chessrules.dev/rules"
)

var (
	fenFlag  = flag.String("fen", "", "FEN record to operate on (default: read from stdin)")
	moveFlag = flag.String("move", "", "move string for the check/apply subcommands (e.g. e2e4)")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}

	fen, err := resolveFEN(*fenFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := run(args[0], fen, *moveFlag); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// resolveFEN returns fen if non-empty, otherwise reads and trims one line
// from stdin.
func resolveFEN(fen string) (string, error) {
	if fen != "" {
		return fen, nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("no FEN given: pass -fen or pipe one line to stdin")
	}
	return line, nil
}

func run(subcommand, fen, move string) error {
	switch subcommand {
	case "moves":
		moves, err := rules.GetAvailableMoves(fen)
		if err != nil {
			return err
		}
		for _, m := range moves {
			fmt.Println(m)
		}
		return nil

	case "check":
		if move == "" {
			return fmt.Errorf("check requires -move")
		}
		ok, err := rules.CanDoMove(fen, move)
		if err != nil {
			return err
		}
		fmt.Println(ok)
		return nil

	case "apply":
		if move == "" {
			return fmt.Errorf("apply requires -move")
		}
		next, err := rules.GetAppliedMove(fen, move)
		if err != nil {
			return err
		}
		fmt.Println(next)
		return nil

	case "status":
		return printStatus(fen)

	default:
		return fmt.Errorf("unknown subcommand %q", subcommand)
	}
}

func printStatus(fen string) error {
	white, err := rules.IsWhiteTurn(fen)
	if err != nil {
		return err
	}
	check, err := rules.IsCheck(fen)
	if err != nil {
		return err
	}
	checkmate, err := rules.IsLostCondition(fen)
	if err != nil {
		return err
	}
	stalemate, err := rules.IsPat(fen)
	if err != nil {
		return err
	}

	turn := "black"
	if white {
		turn = "white"
	}
	fmt.Printf("turn=%s check=%t checkmate=%t stalemate=%t\n", turn, check, checkmate, stalemate)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrulesctl [-fen FEN] [-move MOVE] <moves|check|apply|status>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nSubcommands:\n")
	fmt.Fprintf(os.Stderr, "  moves   list every legal move from -fen\n")
	fmt.Fprintf(os.Stderr, "  check   report whether -move is legal from -fen\n")
	fmt.Fprintf(os.Stderr, "  apply   apply -move to -fen and print the resulting FEN\n")
	fmt.Fprintf(os.Stderr, "  status  print turn/check/checkmate/stalemate for -fen\n")
}
