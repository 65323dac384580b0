// Package engine exposes the board, move-generation and search packages as a single
// stateful facade: the shape a UI or command-line front door drives.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/SrGaabriel/caissa/pkg/board"
	"github.com/SrGaabriel/caissa/pkg/board/fen"
	"github.com/SrGaabriel/caissa/pkg/eval"
	"github.com/SrGaabriel/caissa/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine-wide settings. Only Depth can be overridden per call, through
// BestMove's depth argument.
type Options struct {
	// Depth is the default search depth limit in plies.
	Depth int
	// Hash enables the transposition table when non-zero; zero disables it. The table
	// is an unbounded map, so the value does not limit its size.
	Hash uint
	// Noise adds up to this many centipawns of evaluation noise, for varied self-play.
	Noise uint
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, hash=%v, noise=%vcp}", o.Depth, o.Hash, o.Noise)
}

// Engine bundles a mutable position with the evaluation and search settings used to
// play or analyze it. It is safe for concurrent use.
type Engine struct {
	name, author string
	seed         int64
	zt           *board.ZobristTable
	opts         Options

	mu  sync.Mutex
	pos *board.Position
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithOptions sets the engine's default depth, hash size and evaluation noise.
func WithOptions(opts Options) Option {
	return func(e *Engine) { e.opts = opts }
}

// WithZobristSeed seeds both the engine's own Zobrist key table, used to hash
// positions for its transposition table, and its evaluation noise generator
// (eval.NewRandom). Two engines built with the same seed hash and search
// identically; production callers should leave this unset and get
// board.DefaultZobristSeed.
func WithZobristSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// New constructs an Engine at the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) (*Engine, error) {
	e := &Engine{name: name, author: author, opts: Options{Depth: 4}}
	for _, fn := range opts {
		fn(e)
	}
	if e.seed == 0 {
		e.seed = board.DefaultZobristSeed
	}
	e.zt = board.NewZobristTable(e.seed)
	if err := e.Reset(ctx, fen.Initial); err != nil {
		return nil, err
	}

	logw.Infof(ctx, "initialized %v: %v", e.Name(), e.opts)
	return e, nil
}

// Name returns the engine's name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the engine's declared author.
func (e *Engine) Author() string {
	return e.author
}

// Reset replaces the current position with the one described by a FEN string.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, _, _, _, err := fen.Decode(position)
	if err != nil {
		return err
	}
	e.pos = pos

	logw.Debugf(ctx, "reset to %v", position)
	return nil
}

// Position returns the current position in FEN notation.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.pos, e.pos.SideToMove(), 0, 1)
}

// SideToMove returns the color to move in the current position.
func (e *Engine) SideToMove() board.Color {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.SideToMove()
}

// LegalMovesForSide returns every legal move for the given side in the current
// position.
func (e *Engine) LegalMovesForSide(ctx context.Context, side board.Color) ([]board.Move, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Debugf(ctx, "legal moves for %v", side)
	return e.pos.LegalMoves(side), nil
}

// LegalMovesForPiece returns the legal moves originating from sq, or an empty slice if
// sq is empty or has no legal moves.
func (e *Engine) LegalMovesForPiece(ctx context.Context, sq board.Square) ([]board.Move, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	color, _, ok := e.pos.Square(sq)
	if !ok {
		return nil, nil
	}

	var out []board.Move
	for _, m := range e.pos.LegalMoves(color) {
		if m.Origin == sq {
			out = append(out, m)
		}
	}
	return out, nil
}

// ThreatenedSquares returns the full set of squares attacked by the given side,
// independent of whose turn it is.
func (e *Engine) ThreatenedSquares(ctx context.Context, by board.Color) (board.Bitboard, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.AttackedSquares(by), nil
}

// Move applies a move, given in coordinate notation (e.g. "e2e4" or "a7a8q"), to the
// current position. It must be legal. The returned flags describe the resulting
// position: FlagCheck, FlagCheckmate or FlagStalemate may be set.
func (e *Engine) Move(ctx context.Context, move string) (board.MoveFlag, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := board.ParseMove(move)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", board.ErrIllegalMove, err)
	}

	for _, m := range e.pos.LegalMoves(e.pos.SideToMove()) {
		if !m.Equals(candidate) {
			continue
		}
		rec, ok := e.pos.MakeMove(m)
		if !ok {
			return 0, fmt.Errorf("%w: %v", board.ErrIllegalMove, move)
		}
		logw.Infof(ctx, "played %v", m)
		return rec.Flags, nil
	}
	return 0, fmt.Errorf("%w: %v", board.ErrIllegalMove, move)
}

// BestMove runs a fixed-depth search from the current position and returns the best
// move found and its score, without applying it. depth <= 0 uses the engine's default.
func (e *Engine) BestMove(ctx context.Context, depth int) (board.Move, int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if depth <= 0 {
		depth = e.opts.Depth
	}

	var evaluator eval.Evaluator = eval.Material{}
	if e.opts.Noise > 0 {
		evaluator = eval.NewRandom(evaluator, int(e.opts.Noise), e.seed)
	}

	var tt search.TranspositionTable = search.NoTable{}
	if e.opts.Hash > 0 {
		tt = search.NewTable()
	}

	res, err := search.New(evaluator, tt, search.WithZobristTable(e.zt)).Search(ctx, e.pos.Clone(), depth)
	if err != nil {
		logw.Errorf(ctx, "search failed: %v", err)
		return board.Move{}, 0, err
	}

	logw.Infof(ctx, "best move %v, score=%v, nodes=%v", res.Move, res.Score, res.Nodes)
	return res.Move, res.Score, nil
}
