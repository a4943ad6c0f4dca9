package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/match-odds/internal/models"
)

func buildTestMatrix(t *testing.T, home, away float64) *ScorelineMatrix {
	t.Helper()
	matrix, err := BuildScorelineMatrix(models.GoalExpectancy{Home: home, Away: away}, 8)
	require.NoError(t, err)
	return matrix
}

func TestComputeMarketsComplementarity(t *testing.T) {
	matrix := buildTestMatrix(t, 1.4, 1.1)

	results, err := ComputeMarkets(matrix, nil, DefaultMarginPercent)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for _, result := range results {
		// Over is the exact complement of Under by construction, so the pair
		// sums to one regardless of the truncated tail.
		assert.Equal(t, 1.0, result.UnderProbability+result.OverProbability)
		assert.Greater(t, result.UnderProbability, 0.0)
		assert.Less(t, result.UnderProbability, 1.0)
	}
}

func TestComputeMarketsOrderingAndMonotonicity(t *testing.T) {
	matrix := buildTestMatrix(t, 1.8, 1.3)

	results, err := ComputeMarkets(matrix, nil, 3)
	require.NoError(t, err)

	wantThresholds := []float64{0.5, 1.5, 2.5, 3.5}
	for i, result := range results {
		assert.Equal(t, wantThresholds[i], result.Threshold)
		if i > 0 {
			assert.GreaterOrEqual(t, result.UnderProbability, results[i-1].UnderProbability)
		}
	}
}

func TestComputeMarketsOddsAndMargin(t *testing.T) {
	matrix := buildTestMatrix(t, 1.4, 1.1)

	results, err := ComputeMarkets(matrix, nil, 3)
	require.NoError(t, err)

	for _, result := range results {
		assert.InDelta(t, 1/result.UnderProbability, result.FairUnderOdds, 1e-12)
		assert.InDelta(t, 1/result.OverProbability, result.FairOverOdds, 1e-12)
		assert.GreaterOrEqual(t, result.UnderOddsWithMargin, result.FairUnderOdds)
		assert.GreaterOrEqual(t, result.OverOddsWithMargin, result.FairOverOdds)
		assert.InDelta(t, result.FairUnderOdds*1.03, result.UnderOddsWithMargin, 1e-12)
	}
}

func TestComputeMarketsZeroProbabilityYieldsInfiniteOdds(t *testing.T) {
	matrix := buildTestMatrix(t, 1.0, 1.0)

	// A threshold below zero goals has no qualifying scorelines.
	results, err := ComputeMarkets(matrix, []float64{-0.5}, 3)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Zero(t, results[0].UnderProbability)
	assert.True(t, math.IsInf(results[0].FairUnderOdds, 1))
	assert.True(t, math.IsInf(results[0].UnderOddsWithMargin, 1))
	assert.Equal(t, 1.0, results[0].OverProbability)
}

func TestComputeMarketsRejectsNegativeMargin(t *testing.T) {
	matrix := buildTestMatrix(t, 1.0, 1.0)

	_, err := ComputeMarkets(matrix, nil, -1)
	assert.ErrorIs(t, err, models.ErrNegativeValue)
}

func TestComputeMarketsNilMatrix(t *testing.T) {
	_, err := ComputeMarkets(nil, nil, 3)
	assert.ErrorIs(t, err, models.ErrInvalidExpectancy)
}

func TestApplyMargin(t *testing.T) {
	assert.InDelta(t, 2.06, ApplyMargin(2.0, 3), 1e-12)
	assert.InDelta(t, 2.0, ApplyMargin(2.0, 0), 1e-12)
	assert.True(t, math.IsInf(ApplyMargin(math.Inf(1), 3), 1))
}
