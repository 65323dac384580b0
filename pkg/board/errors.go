package board

import "errors"

// Sentinel errors returned by this package, meant to be tested with errors.Is after
// being wrapped with additional context via fmt.Errorf("%w: ...", ...).
var (
	// ErrMalformedFEN is returned when a FEN string cannot be parsed into a Position.
	ErrMalformedFEN = errors.New("malformed FEN")

	// ErrIllegalMove is returned when a requested move is not among the position's
	// legal moves.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoLegalMoves is returned when a side to move has no legal moves at all
	// (checkmate or stalemate).
	ErrNoLegalMoves = errors.New("no legal moves available")
)
