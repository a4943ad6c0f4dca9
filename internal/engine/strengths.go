// Package engine implements the Poisson match odds core: attack/defense
// strengths relative to a league baseline, matchup goal expectancies, the
// truncated scoreline probability matrix and the Over/Under market odds
// derived from it.
package engine

import (
	"github.com/yourusername/match-odds/internal/models"
)

// ComputeStrengths derives the four attack/defense ratios from the configured
// averages and baseline. The baseline abstraction supplies the correct
// divisor for each rate, so simple and split league averages share one path:
// a team's defense always divides by the rate its side of the matchup
// normally concedes at, which is the rate the opposing side type scores at.
func ComputeStrengths(input models.MatchInput) (models.StrengthVector, error) {
	if err := input.Validate(); err != nil {
		return models.StrengthVector{}, err
	}

	b := input.Baseline
	return models.StrengthVector{
		HomeAttack:  input.Home.GoalsFor / b.HomeScoring(),
		HomeDefense: input.Home.GoalsAgainst / b.HomeConceding(),
		AwayAttack:  input.Away.GoalsFor / b.AwayScoring(),
		AwayDefense: input.Away.GoalsAgainst / b.AwayConceding(),
	}, nil
}
