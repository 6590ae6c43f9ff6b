package predictor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoissonPMF(t *testing.T) {
	// P(X=0) = e^-lambda
	assert.InDelta(t, math.Exp(-1.5), PoissonPMF(0, 1.5), 1e-12)
	assert.InDelta(t, math.Exp(-4.0), PoissonPMF(0, 4.0), 1e-12)

	// P(X=2) for lambda=1.5 is e^-1.5 * 1.5^2 / 2
	assert.InDelta(t, math.Exp(-1.5)*2.25/2.0, PoissonPMF(2, 1.5), 1e-12)

	// Degenerate inputs
	assert.Equal(t, 0.0, PoissonPMF(-1, 1.5))
	assert.Equal(t, 1.0, PoissonPMF(0, 0.0))
	assert.Equal(t, 0.0, PoissonPMF(3, 0.0))
}

func TestPoissonPMFSumsBelowOne(t *testing.T) {
	// Truncating at MaxGoals always leaves some tail mass behind
	for _, lambda := range []float64{0.5, 1.0, 2.0, 3.0, 4.0} {
		total := 0.0
		for k := 0; k < Config.MaxGoals; k++ {
			total += PoissonPMF(k, lambda)
		}
		assert.Less(t, total, 1.0, "lambda %f", lambda)
		assert.Greater(t, total, 0.0, "lambda %f", lambda)
	}
}

func TestScorelineMatrixShape(t *testing.T) {
	matrix := scorelineMatrix(2.0, 1.0, Config.MaxGoals)

	require.Len(t, matrix, 6)
	for _, row := range matrix {
		require.Len(t, row, 6)
		for _, prob := range row {
			assert.GreaterOrEqual(t, prob, 0.0)
			assert.LessOrEqual(t, prob, 1.0)
			assert.False(t, math.IsNaN(prob))
		}
	}
}

func TestMatchOutcomeProbabilitiesPartitionMatrix(t *testing.T) {
	matrix := scorelineMatrix(1.8, 1.2, Config.MaxGoals)
	homeWin, draw, awayWin := matchOutcomeProbabilities(matrix)

	var total float64
	for _, row := range matrix {
		for _, prob := range row {
			total += prob
		}
	}

	// Every entry lands in exactly one bucket
	assert.InDelta(t, total, homeWin+draw+awayWin, 1e-12)
}

func TestTopScorelinesSortedDescending(t *testing.T) {
	matrix := scorelineMatrix(3.3557333333333337, 1.6662857142857144, Config.MaxGoals)
	top := topScorelines(matrix, 5)

	require.Len(t, top, 5)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Probability, top[i].Probability)
	}

	// The first entry beats every matrix entry
	var maxEntry float64
	for _, row := range matrix {
		for _, prob := range row {
			if prob > maxEntry {
				maxEntry = prob
			}
		}
	}
	assert.InDelta(t, roundToDecimalPlaces(maxEntry*100.0, 2), top[0].Probability, 1e-9)
}

func TestTopScorelinesTieBreakIsMatrixOrder(t *testing.T) {
	// A uniform matrix makes every scoreline equally likely, so the stable
	// sort must preserve home-ascending then away-ascending order
	matrix := make([][]float64, Config.MaxGoals)
	for i := range matrix {
		matrix[i] = make([]float64, Config.MaxGoals)
		for j := range matrix[i] {
			matrix[i][j] = 1.0 / 36.0
		}
	}

	top := topScorelines(matrix, 5)
	require.Len(t, top, 5)
	assert.Equal(t, "0-0", top[0].Score)
	assert.Equal(t, "0-1", top[1].Score)
	assert.Equal(t, "0-2", top[2].Score)
	assert.Equal(t, "0-3", top[3].Score)
	assert.Equal(t, "0-4", top[4].Score)
}

func TestRoundToDecimalPlaces(t *testing.T) {
	assert.Equal(t, 57.8, roundToDecimalPlaces(57.756, 1))
	assert.Equal(t, 6.92, roundToDecimalPlaces(6.9151, 2))
	assert.Equal(t, 1.0, roundToDecimalPlaces(0.999999, 1))
}
