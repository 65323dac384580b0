package board_test

import (
	"testing"

	"github.com/SrGaabriel/caissa/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	m, err := board.ParseMove("e2e4")
	require.NoError(t, err)
	assert.Equal(t, board.E2, m.Origin)
	assert.Equal(t, board.E4, m.Target)
	assert.Equal(t, board.NoPiece, m.Promotion)

	m, err = board.ParseMove("a7a8q")
	require.NoError(t, err)
	assert.Equal(t, board.Queen, m.Promotion)

	_, err = board.ParseMove("e2")
	assert.Error(t, err)

	_, err = board.ParseMove("a7a8k")
	assert.Error(t, err, "king is not a legal promotion piece")

	_, err = board.ParseMove("z1a2")
	assert.Error(t, err)
}

func TestMoveEquals(t *testing.T) {
	a := board.Move{Origin: board.E2, Target: board.E4}
	b := board.Move{Origin: board.E2, Target: board.E4}
	c := board.Move{Origin: board.E2, Target: board.E4, Promotion: board.Queen}

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "e2e4", board.Move{Origin: board.E2, Target: board.E4}.String())
	assert.Equal(t, "a7a8q", board.Move{Origin: board.A7, Target: board.A8, Promotion: board.Queen}.String())
}
