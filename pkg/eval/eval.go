// Package eval provides static position evaluation and move-ordering heuristics for
// the search package.
package eval

import (
	"context"
	"math/rand"

	"github.com/SrGaabriel/caissa/pkg/board"
)

// Evaluator assigns a centipawn score to a position, from the perspective of the side
// to move: positive favors the mover.
type Evaluator interface {
	Evaluate(ctx context.Context, pos *board.Position) int
}

// Material sums the fixed piece values (board.Piece.Value) for the side to move minus
// its opponent, the evaluation described in the core's design notes.
type Material struct{}

func (Material) Evaluate(_ context.Context, pos *board.Position) int {
	turn := pos.SideToMove()
	opp := turn.Opponent()

	var score int
	for p := board.ZeroPiece; p < board.NumPieces; p++ {
		diff := pos.Piece(turn, p).PopCount() - pos.Piece(opp, p).PopCount()
		score += diff * p.Value()
	}
	return score
}

// Random adds a small amount of noise to an underlying Evaluator, in the range
// [-limit/2; limit/2] centipawns, useful for varying otherwise-deterministic self-play.
// A Random built with limit 0 returns the base score unchanged. A zero-value Random has
// no Base and cannot evaluate.
type Random struct {
	Base  Evaluator
	limit int
	rnd   *rand.Rand
}

// NewRandom wraps base with up to limit centipawns of seeded noise.
func NewRandom(base Evaluator, limit int, seed int64) Random {
	return Random{Base: base, limit: limit, rnd: rand.New(rand.NewSource(seed))}
}

func (n Random) Evaluate(ctx context.Context, pos *board.Position) int {
	score := n.Base.Evaluate(ctx, pos)
	if n.limit <= 0 {
		return score
	}
	return score + n.rnd.Intn(n.limit) - n.limit/2
}

// CaptureGain estimates the material swing of playing m on pos, used for MVV-LVA move
// ordering (§4.8) without having to apply the move first: captured piece value, plus
// any promotion gain over a pawn.
func CaptureGain(pos *board.Position, m board.Move) int {
	var gain int
	if _, captured, ok := pos.Square(m.Target); ok {
		gain += captured.Value()
	} else if ep, has := pos.EnPassant(); has && ep == m.Target {
		if _, k, ok := pos.Square(m.Origin); ok && k == board.Pawn {
			gain += board.Pawn.Value()
		}
	}
	if m.Promotion != board.NoPiece {
		gain += m.Promotion.Value() - board.Pawn.Value()
	}
	return gain
}
