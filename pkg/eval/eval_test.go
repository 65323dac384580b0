package eval_test

import (
	"context"
	"testing"

	"github.com/SrGaabriel/caissa/pkg/board"
	"github.com/SrGaabriel/caissa/pkg/board/fen"
	"github.com/SrGaabriel/caissa/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialEvaluateIsZeroAtStartingPosition(t *testing.T) {
	pos, _, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Zero(t, eval.Material{}.Evaluate(context.Background(), pos))
}

func TestMaterialEvaluateFavorsSideToMove(t *testing.T) {
	const fenStr = "4k3/8/8/8/8/8/8/3QK3 w - - 0 1"
	pos, _, _, _, err := fen.Decode(fenStr)
	require.NoError(t, err)

	assert.Equal(t, board.Queen.Value(), eval.Material{}.Evaluate(context.Background(), pos))
}

func TestRandomZeroLimitIsNoop(t *testing.T) {
	pos, _, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	r := eval.NewRandom(eval.Material{}, 0, 1)
	assert.Equal(t, eval.Material{}.Evaluate(context.Background(), pos), r.Evaluate(context.Background(), pos))
}

func TestRandomBoundedNoise(t *testing.T) {
	pos, _, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	base := eval.Material{}.Evaluate(context.Background(), pos)
	r := eval.NewRandom(eval.Material{}, 20, 7)
	got := r.Evaluate(context.Background(), pos)
	assert.GreaterOrEqual(t, got, base-10)
	assert.LessOrEqual(t, got, base+10)
}

func TestCaptureGain(t *testing.T) {
	const fenStr = "4k3/8/8/3p4/4Q3/8/8/4K3 w - - 0 1"
	pos, _, _, _, err := fen.Decode(fenStr)
	require.NoError(t, err)

	gain := eval.CaptureGain(pos, board.Move{Origin: board.E4, Target: board.D5})
	assert.Equal(t, board.Pawn.Value(), gain)
}

func TestCaptureGainPromotion(t *testing.T) {
	const fenStr = "8/P3k3/8/8/8/8/8/4K3 w - - 0 1"
	pos, _, _, _, err := fen.Decode(fenStr)
	require.NoError(t, err)

	gain := eval.CaptureGain(pos, board.Move{Origin: board.A7, Target: board.A8, Promotion: board.Queen})
	assert.Equal(t, board.Queen.Value()-board.Pawn.Value(), gain)
}
