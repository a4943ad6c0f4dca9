package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/match-odds/internal/models"
)

func TestComputeExpectancySimpleBaseline(t *testing.T) {
	strengths, err := ComputeStrengths(simpleInput())
	require.NoError(t, err)

	exp, err := ComputeExpectancy(strengths, models.NewSimpleBaseline(2.7))
	require.NoError(t, err)

	assert.InDelta(t, 0.866, exp.Home, 0.001)
	assert.InDelta(t, 0.488, exp.Away, 0.001)
	assert.InDelta(t, exp.Home+exp.Away, exp.Total(), 1e-12)
}

func TestComputeExpectancySplitBaseline(t *testing.T) {
	baseline := models.NewSplitBaseline(1.6, 1.2)
	input := models.MatchInput{
		Home:     models.TeamAverages{GoalsFor: 2.0, GoalsAgainst: 0.8},
		Away:     models.TeamAverages{GoalsFor: 1.1, GoalsAgainst: 1.5},
		Baseline: baseline,
	}
	strengths, err := ComputeStrengths(input)
	require.NoError(t, err)

	exp, err := ComputeExpectancy(strengths, baseline)
	require.NoError(t, err)

	assert.InDelta(t, strengths.HomeAttack*strengths.AwayDefense*1.6, exp.Home, 1e-12)
	assert.InDelta(t, strengths.AwayAttack*strengths.HomeDefense*1.2, exp.Away, 1e-12)
}

func TestComputeExpectancySwapSymmetry(t *testing.T) {
	baseline := models.NewSplitBaseline(1.4, 1.4)
	input := models.MatchInput{
		Home:     models.TeamAverages{GoalsFor: 1.8, GoalsAgainst: 1.1},
		Away:     models.TeamAverages{GoalsFor: 1.2, GoalsAgainst: 1.3},
		Baseline: baseline,
	}
	swapped := models.MatchInput{
		Home:     input.Away,
		Away:     input.Home,
		Baseline: baseline,
	}

	original, err := ComputeStrengths(input)
	require.NoError(t, err)
	mirrored, err := ComputeStrengths(swapped)
	require.NoError(t, err)

	expOriginal, err := ComputeExpectancy(original, baseline)
	require.NoError(t, err)
	expMirrored, err := ComputeExpectancy(mirrored, baseline)
	require.NoError(t, err)

	// Swapping the teams swaps the expectancies exactly and preserves the total.
	assert.InDelta(t, expOriginal.Home, expMirrored.Away, 1e-12)
	assert.InDelta(t, expOriginal.Away, expMirrored.Home, 1e-12)
	assert.InDelta(t, expOriginal.Total(), expMirrored.Total(), 1e-12)
}

func TestComputeExpectancyRequiresStrengths(t *testing.T) {
	_, err := ComputeExpectancy(models.StrengthVector{}, models.NewSimpleBaseline(2.7))
	assert.ErrorIs(t, err, models.ErrStrengthsNotComputed)
}
