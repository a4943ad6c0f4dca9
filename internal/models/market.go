package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// MarketResult holds the probabilities and odds for one Over/Under
// total-goals threshold. Over is the exact complement of Under, so the two
// always sum to one regardless of matrix truncation.
type MarketResult struct {
	Threshold           float64 `json:"threshold"`
	UnderProbability    float64 `json:"under_probability"`
	OverProbability     float64 `json:"over_probability"`
	FairUnderOdds       float64 `json:"fair_under_odds"`
	FairOverOdds        float64 `json:"fair_over_odds"`
	UnderOddsWithMargin float64 `json:"under_odds_with_margin"`
	OverOddsWithMargin  float64 `json:"over_odds_with_margin"`
}

// Label returns the display name for the market, e.g. "Under 2.5".
func (m MarketResult) Label() string {
	return fmt.Sprintf("Under %s", strconv.FormatFloat(m.Threshold, 'f', -1, 64))
}

// MarshalJSON renders infinite odds as null, since JSON has no infinity
// literal. A null odds field means the probability on that side is zero.
func (m MarketResult) MarshalJSON() ([]byte, error) {
	type marketResultJSON struct {
		Threshold           float64  `json:"threshold"`
		UnderProbability    float64  `json:"under_probability"`
		OverProbability     float64  `json:"over_probability"`
		FairUnderOdds       *float64 `json:"fair_under_odds"`
		FairOverOdds        *float64 `json:"fair_over_odds"`
		UnderOddsWithMargin *float64 `json:"under_odds_with_margin"`
		OverOddsWithMargin  *float64 `json:"over_odds_with_margin"`
	}
	return json.Marshal(marketResultJSON{
		Threshold:           m.Threshold,
		UnderProbability:    m.UnderProbability,
		OverProbability:     m.OverProbability,
		FairUnderOdds:       finiteOrNil(m.FairUnderOdds),
		FairOverOdds:        finiteOrNil(m.FairOverOdds),
		UnderOddsWithMargin: finiteOrNil(m.UnderOddsWithMargin),
		OverOddsWithMargin:  finiteOrNil(m.OverOddsWithMargin),
	})
}

func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// AnalysisSummary carries the expected-goals pair and the strength values for
// presentation. Values stay full precision; rounding is a formatting concern.
type AnalysisSummary struct {
	HomeExpectedGoals  float64        `json:"home_expected_goals"`
	AwayExpectedGoals  float64        `json:"away_expected_goals"`
	TotalExpectedGoals float64        `json:"total_expected_goals"`
	Strengths          StrengthVector `json:"strengths"`
}

// MatchOutcome holds 1X2 probabilities derived from the scoreline matrix.
type MatchOutcome struct {
	HomeWin float64 `json:"home_win"`
	Draw    float64 `json:"draw"`
	AwayWin float64 `json:"away_win"`
}

// Scoreline is a single (home goals, away goals) pair.
type Scoreline struct {
	HomeGoals int `json:"home_goals"`
	AwayGoals int `json:"away_goals"`
}

// String returns the scoreline in "2-1" form.
func (s Scoreline) String() string {
	return fmt.Sprintf("%d-%d", s.HomeGoals, s.AwayGoals)
}
