package search_test

import (
	"context"
	"testing"

	"github.com/SrGaabriel/caissa/pkg/board"
	"github.com/SrGaabriel/caissa/pkg/board/fen"
	"github.com/SrGaabriel/caissa/pkg/eval"
	"github.com/SrGaabriel/caissa/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFindsMateInOne(t *testing.T) {
	// White to move: Ra1-a8 is a back-rank checkmate, the king boxed in by its own pawns.
	const fenStr = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	pos, _, _, _, err := fen.Decode(fenStr)
	require.NoError(t, err)

	s := search.New(eval.Material{}, nil)
	res, err := s.Search(context.Background(), pos, 2)
	require.NoError(t, err)

	assert.Equal(t, board.Move{Origin: board.A1, Target: board.A8}, res.Move)
	assert.Greater(t, res.Score, 10000, "a forced mate should score far above any material difference")
}

func TestSearchReturnsErrWhenNoLegalMoves(t *testing.T) {
	// Black to move, stalemated.
	const fenStr = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	pos, _, _, _, err := fen.Decode(fenStr)
	require.NoError(t, err)

	s := search.New(eval.Material{}, nil)
	_, err = s.Search(context.Background(), pos, 3)
	assert.ErrorIs(t, err, board.ErrNoLegalMoves)
}

func TestSearchPrefersWinningCapture(t *testing.T) {
	const fenStr = "4k3/8/8/3p4/4Q3/8/8/4K3 w - - 0 1"
	pos, _, _, _, err := fen.Decode(fenStr)
	require.NoError(t, err)

	s := search.New(eval.Material{}, search.NewTable())
	res, err := s.Search(context.Background(), pos, 3)
	require.NoError(t, err)

	assert.Equal(t, board.Move{Origin: board.E4, Target: board.D5}, res.Move)
}

func TestSearchLeavesPositionUnchanged(t *testing.T) {
	pos, _, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	before := pos.Clone()

	s := search.New(eval.Material{}, search.NewTable())
	_, err = s.Search(context.Background(), pos, 2)
	require.NoError(t, err)

	assert.True(t, before.Equals(pos))
}
