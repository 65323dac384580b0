package search

import (
	"context"

	"github.com/SrGaabriel/caissa/pkg/board"
	"github.com/SrGaabriel/caissa/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Searcher runs a fixed-depth negamax search with alpha-beta pruning over a static
// Evaluator, backed by an optional TranspositionTable (§4.8). It does not manage a
// clock and does not deepen iteratively: the caller picks the depth.
type Searcher struct {
	Eval eval.Evaluator
	TT   TranspositionTable
	ZT   *board.ZobristTable
}

// Option configures a Searcher at construction time.
type Option func(*Searcher)

// WithZobristTable overrides the key table used to hash positions for the
// transposition table; the default is board.DefaultZobristTable().
func WithZobristTable(zt *board.ZobristTable) Option {
	return func(s *Searcher) { s.ZT = zt }
}

// New returns a Searcher. A nil tt is replaced with NoTable.
func New(e eval.Evaluator, tt TranspositionTable, opts ...Option) *Searcher {
	if tt == nil {
		tt = NoTable{}
	}
	s := &Searcher{Eval: e, TT: tt, ZT: board.DefaultZobristTable()}
	for _, fn := range opts {
		fn(s)
	}
	return s
}

// Result is the outcome of a fixed-depth search from one position.
type Result struct {
	Move  board.Move
	Score int
	Nodes uint64
}

// Search returns the best move for the position's side to move, searched to depth
// plies, alongside its score and the number of nodes visited. It returns
// board.ErrNoLegalMoves if the side to move has no legal moves.
func (s *Searcher) Search(ctx context.Context, pos *board.Position, depth int) (Result, error) {
	side := pos.SideToMove()
	moves := pos.LegalMoves(side)
	if len(moves) == 0 {
		return Result{}, board.ErrNoLegalMoves
	}

	r := &run{s: s, pos: pos}
	ttMove := board.Move{}
	if e, ok := s.TT.Read(s.ZT.Hash(pos)); ok {
		ttMove = e.Move
	}
	ordered := order(pos, moves, ttMove)

	best := ordered[0]
	bestScore := eval.NegInf
	alpha, beta := eval.NegInf, eval.Inf

	for _, m := range ordered {
		rec, ok := pos.MakeMove(m)
		if !ok {
			continue
		}
		r.nodes++
		score := -r.negamax(ctx, depth-1, -beta, -alpha)
		pos.UnmakeMove(rec)

		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}

	s.TT.Write(s.ZT.Hash(pos), Entry{Bound: ExactBound, Depth: depth, Score: bestScore, Move: best})
	return Result{Move: best, Score: bestScore, Nodes: r.nodes}, nil
}

// run carries the per-call mutable search state: the shared Position is mutated and
// restored in place via MakeMove/UnmakeMove rather than cloned at each node.
type run struct {
	s     *Searcher
	pos   *board.Position
	nodes uint64
}

func (r *run) negamax(ctx context.Context, depth, alpha, beta int) int {
	if contextx.IsCancelled(ctx) {
		return 0
	}

	hash := r.s.ZT.Hash(r.pos)
	var ttMove board.Move
	if e, ok := r.s.TT.Read(hash); ok {
		ttMove = e.Move
		if e.Depth >= depth {
			switch e.Bound {
			case ExactBound:
				return e.Score
			case LowerBound:
				alpha = eval.Max(alpha, e.Score)
			case UpperBound:
				beta = eval.Min(beta, e.Score)
			}
			if alpha >= beta {
				return e.Score
			}
		}
	}

	if depth <= 0 {
		return r.quiescence(ctx, alpha, beta)
	}

	side := r.pos.SideToMove()
	moves := r.pos.LegalMoves(side)
	if len(moves) == 0 {
		r.nodes++
		if r.pos.IsChecked(side) {
			return eval.MinScore
		}
		return 0
	}

	ordered := order(r.pos, moves, ttMove)
	origAlpha := alpha
	best := ordered[0]
	bestScore := eval.NegInf

	for _, m := range ordered {
		rec, ok := r.pos.MakeMove(m)
		if !ok {
			continue
		}
		r.nodes++
		score := -r.negamax(ctx, depth-1, -beta, -alpha)
		r.pos.UnmakeMove(rec)

		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	bound := ExactBound
	switch {
	case bestScore <= origAlpha:
		bound = UpperBound
	case bestScore >= beta:
		bound = LowerBound
	}
	r.s.TT.Write(hash, Entry{Bound: bound, Depth: depth, Score: bestScore, Move: best})

	return bestScore
}
