package models

// Baseline abstracts the league scoring context used when deriving team
// strengths and goal expectancies. Two variants exist: a single league-wide
// goals-per-game figure, or a split home/away pair. Each variant exposes the
// four derived rates so the engine never branches on the baseline mode.
type Baseline interface {
	// HomeScoring is the rate home sides typically score at.
	HomeScoring() float64
	// AwayScoring is the rate away sides typically score at.
	AwayScoring() float64
	// HomeConceding is the rate home sides typically concede at. Across a
	// league this equals the away scoring rate: goals conceded by one side
	// are goals scored by the other.
	HomeConceding() float64
	// AwayConceding is the rate away sides typically concede at.
	AwayConceding() float64
	// Validate reports whether the baseline is fully specified and positive.
	Validate() error
}

// SimpleBaseline is a single league average applied uniformly to every rate.
type SimpleBaseline float64

// NewSimpleBaseline creates a uniform league baseline.
func NewSimpleBaseline(avg float64) SimpleBaseline {
	return SimpleBaseline(avg)
}

func (b SimpleBaseline) HomeScoring() float64   { return float64(b) }
func (b SimpleBaseline) AwayScoring() float64   { return float64(b) }
func (b SimpleBaseline) HomeConceding() float64 { return float64(b) }
func (b SimpleBaseline) AwayConceding() float64 { return float64(b) }

// Validate ensures the league average is positive.
func (b SimpleBaseline) Validate() error {
	if b < 0 {
		return ErrNegativeValue
	}
	if b == 0 {
		return ErrMissingInputs
	}
	return nil
}

// SplitBaseline carries separate league averages for home-side and away-side
// scoring. Conceding rates are derived, never stored.
type SplitBaseline struct {
	HomeScoringAvg float64 `json:"home_scoring_avg" validate:"required,gt=0"`
	AwayScoringAvg float64 `json:"away_scoring_avg" validate:"required,gt=0"`
}

// NewSplitBaseline creates a home/away split league baseline.
func NewSplitBaseline(homeScoring, awayScoring float64) SplitBaseline {
	return SplitBaseline{HomeScoringAvg: homeScoring, AwayScoringAvg: awayScoring}
}

func (b SplitBaseline) HomeScoring() float64   { return b.HomeScoringAvg }
func (b SplitBaseline) AwayScoring() float64   { return b.AwayScoringAvg }
func (b SplitBaseline) HomeConceding() float64 { return b.AwayScoringAvg }
func (b SplitBaseline) AwayConceding() float64 { return b.HomeScoringAvg }

// Validate ensures both league rates are present and positive.
func (b SplitBaseline) Validate() error {
	if b.HomeScoringAvg < 0 || b.AwayScoringAvg < 0 {
		return ErrNegativeValue
	}
	if b.HomeScoringAvg == 0 || b.AwayScoringAvg == 0 {
		return ErrMissingInputs
	}
	return nil
}
