package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/match-odds/internal/models"
)

func TestPoissonPMF(t *testing.T) {
	tests := []struct {
		name   string
		k      int
		lambda float64
		want   float64
	}{
		{name: "zero goals", k: 0, lambda: 1.5, want: math.Exp(-1.5)},
		{name: "one goal", k: 1, lambda: 1.5, want: 1.5 * math.Exp(-1.5)},
		{name: "two goals", k: 2, lambda: 2.0, want: 2.0 * math.Exp(-2.0)},
		{name: "eight goals", k: 8, lambda: 2.5, want: math.Pow(2.5, 8) * math.Exp(-2.5) / 40320},
		{name: "negative count", k: -1, lambda: 2.0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PoissonPMF(tt.k, tt.lambda), 1e-12)
		})
	}
}

func TestBuildScorelineMatrix(t *testing.T) {
	exp := models.GoalExpectancy{Home: 1.4, Away: 1.1}

	matrix, err := BuildScorelineMatrix(exp, 0)
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxGoals, matrix.MaxGoals())

	// Each cell is the product of the two marginal PMFs.
	assert.InDelta(t, PoissonPMF(2, 1.4)*PoissonPMF(1, 1.1), matrix.Prob(2, 1), 1e-12)
	assert.InDelta(t, PoissonPMF(0, 1.4)*PoissonPMF(0, 1.1), matrix.Prob(0, 0), 1e-12)

	// The truncated grid sums to just under one.
	total := matrix.TotalProbability()
	assert.Less(t, total, 1.0)
	assert.Greater(t, total, 0.99)

	// Out-of-grid scorelines carry no mass.
	assert.Zero(t, matrix.Prob(9, 0))
	assert.Zero(t, matrix.Prob(-1, 2))
}

func TestBuildScorelineMatrixRejectsBadExpectancy(t *testing.T) {
	_, err := BuildScorelineMatrix(models.GoalExpectancy{Home: 0, Away: 1.2}, 8)
	assert.ErrorIs(t, err, models.ErrInvalidExpectancy)

	_, err = BuildScorelineMatrix(models.GoalExpectancy{Home: 1.2, Away: -0.5}, 8)
	assert.ErrorIs(t, err, models.ErrInvalidExpectancy)
}

func TestUnderProbability(t *testing.T) {
	matrix, err := BuildScorelineMatrix(models.GoalExpectancy{Home: 1.3, Away: 0.9}, 8)
	require.NoError(t, err)

	// Under 0.5 is exactly the 0-0 cell.
	assert.InDelta(t, matrix.Prob(0, 0), matrix.UnderProbability(0.5), 1e-12)

	// Under 1.5 adds the 1-0 and 0-1 cells.
	want := matrix.Prob(0, 0) + matrix.Prob(1, 0) + matrix.Prob(0, 1)
	assert.InDelta(t, want, matrix.UnderProbability(1.5), 1e-12)
}

func TestMatchOutcomePartitionsTheGrid(t *testing.T) {
	matrix, err := BuildScorelineMatrix(models.GoalExpectancy{Home: 1.6, Away: 1.2}, 8)
	require.NoError(t, err)

	outcome := matrix.MatchOutcome()
	assert.InDelta(t, matrix.TotalProbability(), outcome.HomeWin+outcome.Draw+outcome.AwayWin, 1e-12)
	assert.Greater(t, outcome.HomeWin, outcome.AwayWin)
}

func TestBothTeamsToScorePartitionsTheGrid(t *testing.T) {
	matrix, err := BuildScorelineMatrix(models.GoalExpectancy{Home: 1.6, Away: 1.2}, 8)
	require.NoError(t, err)

	both, notBoth := matrix.BothTeamsToScore()
	assert.InDelta(t, matrix.TotalProbability(), both+notBoth, 1e-12)
	assert.Greater(t, both, 0.0)
}

func TestMostLikelyScoreline(t *testing.T) {
	// With lambdas below one the mode of each marginal is zero goals.
	matrix, err := BuildScorelineMatrix(models.GoalExpectancy{Home: 0.8, Away: 0.6}, 8)
	require.NoError(t, err)

	assert.Equal(t, models.Scoreline{HomeGoals: 0, AwayGoals: 0}, matrix.MostLikelyScoreline())
}

func TestCellsReturnsACopy(t *testing.T) {
	matrix, err := BuildScorelineMatrix(models.GoalExpectancy{Home: 1.0, Away: 1.0}, 4)
	require.NoError(t, err)

	cells := matrix.Cells()
	cells[0][0] = 99
	assert.NotEqual(t, 99.0, matrix.Prob(0, 0))
}
