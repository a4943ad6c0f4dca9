package engine

import (
	"github.com/yourusername/match-odds/internal/models"
)

// ComputeExpectancy combines strengths and the league baseline into the
// Poisson lambdas for this matchup. Each side's expected goals are its own
// attack strength, scaled down or up by the opponent's defense strength,
// anchored to the league scoring rate for that side of the fixture.
func ComputeExpectancy(strengths models.StrengthVector, baseline models.Baseline) (models.GoalExpectancy, error) {
	if strengths.IsZero() {
		return models.GoalExpectancy{}, models.ErrStrengthsNotComputed
	}
	if baseline == nil {
		return models.GoalExpectancy{}, models.ErrMissingInputs
	}
	if err := baseline.Validate(); err != nil {
		return models.GoalExpectancy{}, err
	}

	exp := models.GoalExpectancy{
		Home: strengths.HomeAttack * strengths.AwayDefense * baseline.HomeScoring(),
		Away: strengths.AwayAttack * strengths.HomeDefense * baseline.AwayScoring(),
	}
	if exp.Home <= 0 || exp.Away <= 0 {
		return models.GoalExpectancy{}, models.ErrInvalidExpectancy
	}
	return exp, nil
}
