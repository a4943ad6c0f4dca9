// Package report renders analysis results for display. The engine returns
// full-precision values; every rounding decision lives here.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yourusername/match-odds/internal/models"
)

// InfiniteOddsLabel is printed where a zero probability makes odds undefined.
const InfiniteOddsLabel = "inf"

// FormatOdds renders decimal odds with two places, or the infinite label.
func FormatOdds(odds float64) string {
	if math.IsInf(odds, 1) {
		return InfiniteOddsLabel
	}
	return decimal.NewFromFloat(odds).StringFixed(2)
}

// FormatPercent renders a probability as a two-decimal percentage.
func FormatPercent(probability float64) string {
	return decimal.NewFromFloat(probability).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatValue renders a plain figure (expected goals, strengths) with two places.
func FormatValue(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// SummaryRows returns the summary as ordered label/value pairs.
func SummaryRows(s models.AnalysisSummary) [][2]string {
	return [][2]string{
		{"Home Expected Goals", FormatValue(s.HomeExpectedGoals)},
		{"Away Expected Goals", FormatValue(s.AwayExpectedGoals)},
		{"Total Expected Goals", FormatValue(s.TotalExpectedGoals)},
		{"Home Attack Strength", FormatValue(s.Strengths.HomeAttack)},
		{"Home Defense Strength", FormatValue(s.Strengths.HomeDefense)},
		{"Away Attack Strength", FormatValue(s.Strengths.AwayAttack)},
		{"Away Defense Strength", FormatValue(s.Strengths.AwayDefense)},
	}
}

// RenderSummary renders the match summary as an aligned text block.
func RenderSummary(s models.AnalysisSummary) string {
	var b strings.Builder
	b.WriteString("Match Analysis Summary\n")
	for _, row := range SummaryRows(s) {
		fmt.Fprintf(&b, "  %-22s %s\n", row[0], row[1])
	}
	return b.String()
}

// RenderMarkets renders the Over/Under results as a text table in the order
// the engine produced them.
func RenderMarkets(results []models.MarketResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %12s %10s %14s %12s %14s\n",
		"Market", "Under Prob", "Fair Odds", "Odds+Margin", "Over Prob", "Over+Margin")
	for _, r := range results {
		fmt.Fprintf(&b, "%-10s %12s %10s %14s %12s %14s\n",
			r.Label(),
			FormatPercent(r.UnderProbability),
			FormatOdds(r.FairUnderOdds),
			FormatOdds(r.UnderOddsWithMargin),
			FormatPercent(r.OverProbability),
			FormatOdds(r.OverOddsWithMargin),
		)
	}
	return b.String()
}

// RenderOutcome renders the 1X2 view with the most likely scoreline.
func RenderOutcome(outcome models.MatchOutcome, mostLikely models.Scoreline) string {
	var b strings.Builder
	b.WriteString("Match Outcome\n")
	fmt.Fprintf(&b, "  %-22s %s\n", "Home Win", FormatPercent(outcome.HomeWin))
	fmt.Fprintf(&b, "  %-22s %s\n", "Draw", FormatPercent(outcome.Draw))
	fmt.Fprintf(&b, "  %-22s %s\n", "Away Win", FormatPercent(outcome.AwayWin))
	fmt.Fprintf(&b, "  %-22s %s\n", "Most Likely Score", mostLikely.String())
	return b.String()
}
