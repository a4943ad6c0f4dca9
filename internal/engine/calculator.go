package engine

import (
	"github.com/yourusername/match-odds/internal/models"
)

// calculatorState tags the lifecycle of one match analysis. Stages must run
// in order; out-of-order calls fail with a sequencing error instead of being
// auto-corrected.
type calculatorState int

const (
	stateUnconfigured calculatorState = iota
	stateConfigured
	stateStrengthsReady
)

// CalculatorConfig tunes one calculator. Zero values select the defaults,
// except the margin: nil means unset, while an explicit zero means fair odds.
type CalculatorConfig struct {
	MaxGoals      int
	Thresholds    []float64
	MarginPercent *float64
}

// Calculator runs a single match analysis: configure once, compute strengths,
// then derive expectancies, the scoreline matrix and market odds on demand
// any number of times. One instance serves one match; it carries no internal
// locking, so concurrent analyses should each use their own calculator.
type Calculator struct {
	state     calculatorState
	input     models.MatchInput
	strengths models.StrengthVector
	matrix    *ScorelineMatrix

	maxGoals      int
	thresholds    []float64
	marginPercent float64
}

// NewCalculator creates a calculator in the unconfigured state.
func NewCalculator(cfg CalculatorConfig) *Calculator {
	if cfg.MaxGoals <= 0 {
		cfg.MaxGoals = DefaultMaxGoals
	}
	if len(cfg.Thresholds) == 0 {
		cfg.Thresholds = DefaultThresholds()
	}
	marginPercent := DefaultMarginPercent
	if cfg.MarginPercent != nil {
		marginPercent = *cfg.MarginPercent
	}
	return &Calculator{
		maxGoals:      cfg.MaxGoals,
		thresholds:    cfg.Thresholds,
		marginPercent: marginPercent,
	}
}

// Configure validates and stores the match input. Validation failures leave
// the calculator unconfigured.
func (c *Calculator) Configure(input models.MatchInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	c.input = input
	c.strengths = models.StrengthVector{}
	c.matrix = nil
	c.state = stateConfigured
	return nil
}

// ComputeStrengths derives and stores the strength vector. It must run after
// Configure and before any expectancy, matrix or market derivation.
func (c *Calculator) ComputeStrengths() (models.StrengthVector, error) {
	if c.state == stateUnconfigured {
		return models.StrengthVector{}, models.ErrNotConfigured
	}
	strengths, err := ComputeStrengths(c.input)
	if err != nil {
		return models.StrengthVector{}, err
	}
	c.strengths = strengths
	c.matrix = nil
	c.state = stateStrengthsReady
	return strengths, nil
}

// Strengths returns the computed strength vector.
func (c *Calculator) Strengths() (models.StrengthVector, error) {
	if err := c.requireStrengths(); err != nil {
		return models.StrengthVector{}, err
	}
	return c.strengths, nil
}

// Expectancy derives the matchup goal expectancies from the stored strengths.
func (c *Calculator) Expectancy() (models.GoalExpectancy, error) {
	if err := c.requireStrengths(); err != nil {
		return models.GoalExpectancy{}, err
	}
	return ComputeExpectancy(c.strengths, c.input.Baseline)
}

// Matrix returns the truncated scoreline probability grid, building it on
// first use. The cached grid is invalidated whenever the inputs or strengths
// change.
func (c *Calculator) Matrix() (*ScorelineMatrix, error) {
	if c.matrix != nil {
		if err := c.requireStrengths(); err != nil {
			return nil, err
		}
		return c.matrix, nil
	}
	exp, err := c.Expectancy()
	if err != nil {
		return nil, err
	}
	matrix, err := BuildScorelineMatrix(exp, c.maxGoals)
	if err != nil {
		return nil, err
	}
	c.matrix = matrix
	return matrix, nil
}

// Markets derives the Over/Under market results in ascending threshold order.
func (c *Calculator) Markets() ([]models.MarketResult, error) {
	matrix, err := c.Matrix()
	if err != nil {
		return nil, err
	}
	return ComputeMarkets(matrix, c.thresholds, c.marginPercent)
}

// Summary returns the expected-goals pair, their sum and the four strength
// values at full precision.
func (c *Calculator) Summary() (models.AnalysisSummary, error) {
	exp, err := c.Expectancy()
	if err != nil {
		return models.AnalysisSummary{}, err
	}
	return models.AnalysisSummary{
		HomeExpectedGoals:  exp.Home,
		AwayExpectedGoals:  exp.Away,
		TotalExpectedGoals: exp.Total(),
		Strengths:          c.strengths,
	}, nil
}

// Reset returns the calculator to the unconfigured state.
func (c *Calculator) Reset() {
	c.input = models.MatchInput{}
	c.strengths = models.StrengthVector{}
	c.matrix = nil
	c.state = stateUnconfigured
}

func (c *Calculator) requireStrengths() error {
	switch c.state {
	case stateUnconfigured:
		return models.ErrNotConfigured
	case stateConfigured:
		return models.ErrStrengthsNotComputed
	}
	return nil
}
