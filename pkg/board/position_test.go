package board_test

import (
	"testing"

	"github.com/SrGaabriel/caissa/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kings(wk, bk board.Square) []board.Placement {
	return []board.Placement{
		{Square: wk, Color: board.White, Piece: board.King},
		{Square: bk, Color: board.Black, Piece: board.King},
	}
}

func TestNewPosition(t *testing.T) {
	t.Run("rejects missing king", func(t *testing.T) {
		_, err := board.NewPosition([]board.Placement{
			{Square: board.E1, Color: board.White, Piece: board.King},
		}, 0, board.NoSquare, board.White)
		assert.Error(t, err)
	})

	t.Run("rejects duplicate square", func(t *testing.T) {
		placements := append(kings(board.E1, board.E8), board.Placement{
			Square: board.E1, Color: board.White, Piece: board.Queen,
		})
		_, err := board.NewPosition(placements, 0, board.NoSquare, board.White)
		assert.Error(t, err)
	})

	t.Run("rejects adjacent kings", func(t *testing.T) {
		_, err := board.NewPosition(kings(board.E1, board.E2), 0, board.NoSquare, board.White)
		assert.Error(t, err)
	})

	t.Run("accepts well-formed position", func(t *testing.T) {
		pos, err := board.NewPosition(kings(board.E1, board.E8), board.FullCastingRights, board.NoSquare, board.White)
		require.NoError(t, err)
		assert.Equal(t, board.E1, pos.KingSquare(board.White))
		assert.Equal(t, board.E8, pos.KingSquare(board.Black))
		assert.Equal(t, board.White, pos.SideToMove())
	})
}

func TestPositionSquareLookup(t *testing.T) {
	placements := append(kings(board.E1, board.E8), board.Placement{
		Square: board.D4, Color: board.White, Piece: board.Queen,
	})
	pos, err := board.NewPosition(placements, 0, board.NoSquare, board.White)
	require.NoError(t, err)

	c, k, ok := pos.Square(board.D4)
	require.True(t, ok)
	assert.Equal(t, board.White, c)
	assert.Equal(t, board.Queen, k)

	assert.True(t, pos.IsEmpty(board.A1))
	_, _, ok = pos.Square(board.A1)
	assert.False(t, ok)
}

func TestAttackedAndIsChecked(t *testing.T) {
	placements := append(kings(board.E1, board.E8), board.Placement{
		Square: board.E7, Color: board.White, Piece: board.Rook,
	})
	pos, err := board.NewPosition(placements, 0, board.NoSquare, board.White)
	require.NoError(t, err)

	assert.True(t, pos.Attacked(board.E8, board.White))
	assert.True(t, pos.IsChecked(board.Black))
	assert.False(t, pos.IsChecked(board.White))
}

func TestAttackedSquaresExcludesOwnOccupancy(t *testing.T) {
	placements := append(kings(board.E1, board.E8), board.Placement{
		Square: board.D1, Color: board.White, Piece: board.Queen,
	})
	pos, err := board.NewPosition(placements, 0, board.NoSquare, board.White)
	require.NoError(t, err)

	attacks := pos.AttackedSquares(board.White)
	assert.False(t, attacks.IsSet(board.E1), "own king square must not appear as a threat")
	assert.True(t, attacks.IsSet(board.D4))
}

func TestPositionEqualsAndClone(t *testing.T) {
	pos, err := board.NewPosition(kings(board.E1, board.E8), board.FullCastingRights, board.NoSquare, board.White)
	require.NoError(t, err)

	clone := pos.Clone()
	assert.True(t, pos.Equals(clone))

	rec, ok := clone.MakeMove(board.Move{Origin: board.E1, Target: board.E2})
	require.True(t, ok)
	assert.False(t, pos.Equals(clone))

	clone.UnmakeMove(rec)
	assert.True(t, pos.Equals(clone))
}
