// Package models defines the data types shared by the odds engine and its
// collaborators: team scoring averages, league baselines, strengths,
// expectancies and market results.
package models

// TeamAverages holds a team's per-game scoring rates for one side of a
// matchup (home or away).
type TeamAverages struct {
	GoalsFor     float64 `json:"goals_for" validate:"gte=0"`
	GoalsAgainst float64 `json:"goals_against" validate:"gte=0"`
}

// AveragesFromTotals derives per-game averages from season totals.
// Played must be a positive integer; totals must not be negative.
func AveragesFromTotals(played int, goalsScored, goalsConceded float64) (TeamAverages, error) {
	if goalsScored < 0 || goalsConceded < 0 {
		return TeamAverages{}, ErrNegativeValue
	}
	if played <= 0 {
		return TeamAverages{}, ErrNoGamesPlayed
	}
	return TeamAverages{
		GoalsFor:     goalsScored / float64(played),
		GoalsAgainst: goalsConceded / float64(played),
	}, nil
}

// Validate rejects negative rates at the boundary so they never reach the math.
func (a TeamAverages) Validate() error {
	if a.GoalsFor < 0 || a.GoalsAgainst < 0 {
		return ErrNegativeValue
	}
	return nil
}

// complete reports whether all rates are set. A zero rate counts as unset:
// strengths are ratios and a zero numerator never comes from real league play.
func (a TeamAverages) complete() bool {
	return a.GoalsFor > 0 && a.GoalsAgainst > 0
}

// MatchInput is the immutable configuration for a single match analysis.
// It is assembled once by a collaborator (CLI or HTTP handler) and passed
// into the engine's pure functions.
type MatchInput struct {
	Home     TeamAverages `json:"home"`
	Away     TeamAverages `json:"away"`
	Baseline Baseline     `json:"-"`
}

// Validate checks the full configuration before any derived computation runs.
func (in MatchInput) Validate() error {
	if err := in.Home.Validate(); err != nil {
		return err
	}
	if err := in.Away.Validate(); err != nil {
		return err
	}
	if in.Baseline == nil {
		return ErrMissingInputs
	}
	if err := in.Baseline.Validate(); err != nil {
		return err
	}
	if !in.Home.complete() || !in.Away.complete() {
		return ErrMissingInputs
	}
	return nil
}

// StrengthVector holds the four attack/defense ratios relative to the league
// baseline. Attack is own scoring over the league scoring rate for that side;
// defense is own conceding over the rate the opposing side type scores at.
type StrengthVector struct {
	HomeAttack  float64 `json:"home_attack"`
	HomeDefense float64 `json:"home_defense"`
	AwayAttack  float64 `json:"away_attack"`
	AwayDefense float64 `json:"away_defense"`
}

// IsZero reports whether the vector has never been computed.
func (s StrengthVector) IsZero() bool {
	return s == StrengthVector{}
}

// GoalExpectancy holds the Poisson lambdas for one specific matchup.
type GoalExpectancy struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
}

// Total returns the combined expected goals for the match.
func (e GoalExpectancy) Total() float64 {
	return e.Home + e.Away
}
