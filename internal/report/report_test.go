package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yourusername/match-odds/internal/models"
)

func TestFormatOdds(t *testing.T) {
	assert.Equal(t, "2.06", FormatOdds(2.06))
	assert.Equal(t, "1.33", FormatOdds(4.0/3.0))
	assert.Equal(t, "inf", FormatOdds(math.Inf(1)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "45.67%", FormatPercent(0.4567))
	assert.Equal(t, "0.00%", FormatPercent(0))
	assert.Equal(t, "100.00%", FormatPercent(1))
}

func TestSummaryRowsMatchUnderlyingValues(t *testing.T) {
	summary := models.AnalysisSummary{
		HomeExpectedGoals:  0.8666666,
		AwayExpectedGoals:  0.4888888,
		TotalExpectedGoals: 1.3555554,
		Strengths: models.StrengthVector{
			HomeAttack:  0.6666666,
			HomeDefense: 0.4074074,
			AwayAttack:  0.4444444,
			AwayDefense: 0.4814814,
		},
	}

	rows := SummaryRows(summary)
	assert.Len(t, rows, 7)
	assert.Equal(t, [2]string{"Home Expected Goals", "0.87"}, rows[0])
	assert.Equal(t, [2]string{"Away Expected Goals", "0.49"}, rows[1])
	assert.Equal(t, [2]string{"Total Expected Goals", "1.36"}, rows[2])
	assert.Equal(t, [2]string{"Home Attack Strength", "0.67"}, rows[3])
}

func TestRenderMarkets(t *testing.T) {
	results := []models.MarketResult{
		{
			Threshold:           2.5,
			UnderProbability:    0.55,
			OverProbability:     0.45,
			FairUnderOdds:       1 / 0.55,
			FairOverOdds:        1 / 0.45,
			UnderOddsWithMargin: 1.03 / 0.55,
			OverOddsWithMargin:  1.03 / 0.45,
		},
	}

	out := RenderMarkets(results)
	assert.Contains(t, out, "Under 2.5")
	assert.Contains(t, out, "55.00%")
	assert.Contains(t, out, "45.00%")
	assert.Contains(t, out, "1.82")
}

func TestRenderOutcome(t *testing.T) {
	out := RenderOutcome(models.MatchOutcome{HomeWin: 0.5, Draw: 0.3, AwayWin: 0.2},
		models.Scoreline{HomeGoals: 1, AwayGoals: 0})

	assert.Contains(t, out, "50.00%")
	assert.Contains(t, out, "1-0")
}
