package engine

import (
	"math"

	"github.com/yourusername/match-odds/internal/models"
)

// DefaultMaxGoals bounds the scoreline grid. Poisson mass beyond 8 goals per
// side is negligible for realistic football lambdas, and the dropped tail is
// deliberately absorbed into the Over bucket when markets are derived.
const DefaultMaxGoals = 8

// PoissonPMF returns P(X = k) for X ~ Poisson(lambda).
func PoissonPMF(k int, lambda float64) float64 {
	if k < 0 {
		return 0
	}
	return math.Pow(lambda, float64(k)) * math.Exp(-lambda) / factorial(k)
}

// factorial computes k! in double precision, exact for the goal counts used
// here (8! = 40320 is far below the float64 integer limit).
func factorial(k int) float64 {
	result := 1.0
	for i := 2; i <= k; i++ {
		result *= float64(i)
	}
	return result
}

// ScorelineMatrix is the truncated joint probability grid over
// (home goals, away goals) pairs under independent Poisson laws. The grid sum
// is slightly below one because mass beyond maxGoals is dropped.
type ScorelineMatrix struct {
	maxGoals int
	cells    [][]float64
}

// BuildScorelineMatrix fills the (maxGoals+1)² grid from the matchup
// expectancies. A maxGoals of zero or below selects DefaultMaxGoals.
func BuildScorelineMatrix(exp models.GoalExpectancy, maxGoals int) (*ScorelineMatrix, error) {
	if exp.Home <= 0 || exp.Away <= 0 {
		return nil, models.ErrInvalidExpectancy
	}
	if maxGoals <= 0 {
		maxGoals = DefaultMaxGoals
	}

	cells := make([][]float64, maxGoals+1)
	for h := 0; h <= maxGoals; h++ {
		cells[h] = make([]float64, maxGoals+1)
		homeProb := PoissonPMF(h, exp.Home)
		for a := 0; a <= maxGoals; a++ {
			cells[h][a] = homeProb * PoissonPMF(a, exp.Away)
		}
	}

	return &ScorelineMatrix{maxGoals: maxGoals, cells: cells}, nil
}

// MaxGoals returns the truncation bound of the grid.
func (m *ScorelineMatrix) MaxGoals() int {
	return m.maxGoals
}

// Prob returns the joint probability of the exact scoreline (h, a).
// Scorelines beyond the grid carry zero mass by construction.
func (m *ScorelineMatrix) Prob(h, a int) float64 {
	if h < 0 || a < 0 || h > m.maxGoals || a > m.maxGoals {
		return 0
	}
	return m.cells[h][a]
}

// Cells returns a copy of the grid, indexed [home goals][away goals].
func (m *ScorelineMatrix) Cells() [][]float64 {
	out := make([][]float64, len(m.cells))
	for i, row := range m.cells {
		out[i] = append([]float64{}, row...)
	}
	return out
}

// UnderProbability sums the cells whose total goals do not exceed the
// threshold. Thresholds are half-integers, so this is the mass at or below
// floor(threshold) total goals.
func (m *ScorelineMatrix) UnderProbability(threshold float64) float64 {
	under := 0.0
	for h := 0; h <= m.maxGoals; h++ {
		for a := 0; a <= m.maxGoals; a++ {
			if float64(h+a) <= threshold {
				under += m.cells[h][a]
			}
		}
	}
	return under
}

// TotalProbability returns the grid sum, slightly below one due to truncation.
func (m *ScorelineMatrix) TotalProbability() float64 {
	total := 0.0
	for h := 0; h <= m.maxGoals; h++ {
		for a := 0; a <= m.maxGoals; a++ {
			total += m.cells[h][a]
		}
	}
	return total
}

// MatchOutcome aggregates the grid into 1X2 probabilities: lower triangle for
// the home win, diagonal for the draw, upper triangle for the away win.
func (m *ScorelineMatrix) MatchOutcome() models.MatchOutcome {
	var outcome models.MatchOutcome
	for h := 0; h <= m.maxGoals; h++ {
		for a := 0; a <= m.maxGoals; a++ {
			switch {
			case h > a:
				outcome.HomeWin += m.cells[h][a]
			case h == a:
				outcome.Draw += m.cells[h][a]
			default:
				outcome.AwayWin += m.cells[h][a]
			}
		}
	}
	return outcome
}

// BothTeamsToScore returns the probability that neither side keeps a clean
// sheet, with its complement.
func (m *ScorelineMatrix) BothTeamsToScore() (both, notBoth float64) {
	for h := 0; h <= m.maxGoals; h++ {
		for a := 0; a <= m.maxGoals; a++ {
			if h > 0 && a > 0 {
				both += m.cells[h][a]
			} else {
				notBoth += m.cells[h][a]
			}
		}
	}
	return both, notBoth
}

// MostLikelyScoreline returns the highest-probability cell. Ties resolve to
// the lowest-scoring line, which is the first encountered in scan order.
func (m *ScorelineMatrix) MostLikelyScoreline() models.Scoreline {
	best := models.Scoreline{}
	bestProb := -1.0
	for h := 0; h <= m.maxGoals; h++ {
		for a := 0; a <= m.maxGoals; a++ {
			if m.cells[h][a] > bestProb {
				bestProb = m.cells[h][a]
				best = models.Scoreline{HomeGoals: h, AwayGoals: a}
			}
		}
	}
	return best
}
