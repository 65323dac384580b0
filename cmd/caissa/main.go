// caissa is a line-oriented command driver for the engine package: "position <fen>",
// "moves", "go [depth]", "move <uci>" and "quit".
package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/SrGaabriel/caissa/pkg/board"
	"github.com/SrGaabriel/caissa/pkg/engine"
	"github.com/seekerror/logw"
)

var (
	depth = flag.Int("depth", 4, "Default search depth, in plies")
	hash  = flag.Uint("hash", 16, "Transposition table: non-zero enables it (the table is not size-limited)")
	noise = flag.Uint("noise", 0, "Evaluation noise, in centipawns")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	e, err := engine.New(ctx, "caissa", "caissa", engine.WithOptions(engine.Options{
		Depth: *depth,
		Hash:  *hash,
		Noise: *noise,
	}))
	if err != nil {
		logw.Exitf(ctx, "failed to start: %v", err)
	}

	in := engine.ReadStdinLines(ctx)
	for line := range in {
		if f := strings.Fields(line); len(f) > 0 && f[0] == "quit" {
			return
		}
		if err := dispatch(ctx, e, line); err != nil {
			fmt.Println("error:", err)
		}
	}
}

func dispatch(ctx context.Context, e *engine.Engine, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "position":
		if len(fields) < 2 {
			return fmt.Errorf("usage: position <fen>")
		}
		return e.Reset(ctx, strings.Join(fields[1:], " "))

	case "moves":
		moves, err := e.LegalMovesForSide(ctx, e.SideToMove())
		if err != nil {
			return err
		}
		fmt.Println(formatMoves(moves))
		return nil

	case "move":
		if len(fields) != 2 {
			return fmt.Errorf("usage: move <uci>")
		}
		flags, err := e.Move(ctx, fields[1])
		if err != nil {
			return err
		}
		switch {
		case flags.Has(board.FlagCheckmate):
			fmt.Println("checkmate")
		case flags.Has(board.FlagStalemate):
			fmt.Println("stalemate")
		case flags.Has(board.FlagCheck):
			fmt.Println("check")
		}
		return nil

	case "go":
		d := 0
		if len(fields) == 2 {
			parsed, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("invalid depth: %v", fields[1])
			}
			d = parsed
		}
		m, score, err := e.BestMove(ctx, d)
		if err != nil {
			return err
		}
		fmt.Printf("bestmove %v score %v\n", m, score)
		return nil

	case "quit":
		return nil

	default:
		return fmt.Errorf("unknown command: %v", fields[0])
	}
}

func formatMoves(moves []board.Move) string {
	strs := make([]string, len(moves))
	for i, m := range moves {
		strs[i] = m.String()
	}
	return strings.Join(strs, " ")
}
