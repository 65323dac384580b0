package search

import (
	"testing"

	"github.com/SrGaabriel/caissa/pkg/board"
	"github.com/SrGaabriel/caissa/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPutsTranspositionMoveFirst(t *testing.T) {
	pos, _, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	moves := pos.LegalMoves(pos.SideToMove())
	ttMove := moves[len(moves)-1]

	ordered := order(pos, moves, ttMove)
	assert.True(t, ordered[0].Equals(ttMove))
	assert.Len(t, ordered, len(moves))
}

func TestOrderPrefersCapturesOverQuietMoves(t *testing.T) {
	const fenStr = "4k3/8/8/3p4/4Q3/8/8/4K3 w - - 0 1"
	pos, _, _, _, err := fen.Decode(fenStr)
	require.NoError(t, err)

	moves := pos.LegalMoves(pos.SideToMove())
	ordered := order(pos, moves, board.Move{})

	capture := board.Move{Origin: board.E4, Target: board.D5}
	assert.True(t, ordered[0].Equals(capture), "the only capture should be ordered first")
}
