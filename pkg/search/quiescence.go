package search

import (
	"context"

	"github.com/SrGaabriel/caissa/pkg/board"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// quiescence extends the search along capture sequences only, to avoid misjudging a
// position in the middle of an exchange (the horizon effect): it stands pat on the
// static evaluation and only searches deeper through captures that could still improve
// on it (§4.8).
func (r *run) quiescence(ctx context.Context, alpha, beta int) int {
	if contextx.IsCancelled(ctx) {
		return 0
	}
	r.nodes++

	standPat := r.s.Eval.Evaluate(ctx, r.pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	side := r.pos.SideToMove()
	captures := order(r.pos, r.pos.CaptureMoves(side), board.Move{})

	for _, m := range captures {
		rec, ok := r.pos.MakeMove(m)
		if !ok {
			continue
		}
		score := -r.quiescence(ctx, -beta, -alpha)
		r.pos.UnmakeMove(rec)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
