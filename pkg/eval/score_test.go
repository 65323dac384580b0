package eval_test

import (
	"testing"

	"github.com/SrGaabriel/caissa/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestScoreBoundsAreSymmetricAroundInfinity(t *testing.T) {
	assert.Equal(t, eval.MaxScore+1, eval.Inf)
	assert.Equal(t, eval.MinScore-1, eval.NegInf)
	assert.True(t, eval.NegInf < eval.MinScore)
	assert.True(t, eval.Inf > eval.MaxScore)
}

func TestMaxMin(t *testing.T) {
	assert.Equal(t, 5, eval.Max(5, 3))
	assert.Equal(t, 3, eval.Max(3, 3))
	assert.Equal(t, 3, eval.Min(5, 3))
}
