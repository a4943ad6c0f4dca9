package engine

import (
	"fmt"
	"math"

	"github.com/yourusername/match-odds/internal/models"
)

// DefaultMarginPercent is the bookmaker margin applied when none is given.
const DefaultMarginPercent = 3.0

// DefaultThresholds returns the standard total-goals lines in ascending
// order. Callers receive a fresh slice and may reorder or extend it.
func DefaultThresholds() []float64 {
	return []float64{0.5, 1.5, 2.5, 3.5}
}

// ComputeMarkets derives one MarketResult per threshold, in the given order.
// Under is summed directly from the finite grid; Over is the exact complement
// so the truncated tail lands in the Over bucket rather than being counted
// twice. A zero probability yields infinite fair odds, never an error.
func ComputeMarkets(matrix *ScorelineMatrix, thresholds []float64, marginPercent float64) ([]models.MarketResult, error) {
	if matrix == nil {
		return nil, models.ErrInvalidExpectancy
	}
	if marginPercent < 0 {
		return nil, fmt.Errorf("margin percent must not be negative, got %v: %w", marginPercent, models.ErrNegativeValue)
	}
	if len(thresholds) == 0 {
		thresholds = DefaultThresholds()
	}

	results := make([]models.MarketResult, 0, len(thresholds))
	for _, threshold := range thresholds {
		under := matrix.UnderProbability(threshold)
		over := 1 - under

		result := models.MarketResult{
			Threshold:        threshold,
			UnderProbability: under,
			OverProbability:  over,
			FairUnderOdds:    fairOdds(under),
			FairOverOdds:     fairOdds(over),
		}
		result.UnderOddsWithMargin = ApplyMargin(result.FairUnderOdds, marginPercent)
		result.OverOddsWithMargin = ApplyMargin(result.FairOverOdds, marginPercent)
		results = append(results, result)
	}

	return results, nil
}

// fairOdds converts a probability to breakeven decimal odds.
func fairOdds(probability float64) float64 {
	if probability <= 0 {
		return math.Inf(1)
	}
	return 1 / probability
}

// ApplyMargin marks fair odds up by the bookmaker margin percentage.
func ApplyMargin(odds, marginPercent float64) float64 {
	return odds * (1 + marginPercent/100)
}
