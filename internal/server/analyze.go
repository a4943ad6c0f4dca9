package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/yourusername/match-odds/internal/engine"
	"github.com/yourusername/match-odds/internal/metrics"
	"github.com/yourusername/match-odds/internal/models"
)

// TeamStatsRequest accepts either direct per-game averages or season totals
// for one side of the matchup.
type TeamStatsRequest struct {
	GoalsFor      *float64 `json:"goals_for,omitempty" validate:"omitempty,gte=0"`
	GoalsAgainst  *float64 `json:"goals_against,omitempty" validate:"omitempty,gte=0"`
	GamesPlayed   *int     `json:"games_played,omitempty"`
	GoalsScored   *float64 `json:"goals_scored,omitempty" validate:"omitempty,gte=0"`
	GoalsConceded *float64 `json:"goals_conceded,omitempty" validate:"omitempty,gte=0"`
}

// averages resolves the request into per-game averages, deriving them from
// totals when averages are not supplied directly.
func (t TeamStatsRequest) averages() (models.TeamAverages, error) {
	if t.GoalsFor != nil && t.GoalsAgainst != nil {
		return models.TeamAverages{GoalsFor: *t.GoalsFor, GoalsAgainst: *t.GoalsAgainst}, nil
	}
	if t.GamesPlayed != nil && t.GoalsScored != nil && t.GoalsConceded != nil {
		return models.AveragesFromTotals(*t.GamesPlayed, *t.GoalsScored, *t.GoalsConceded)
	}
	return models.TeamAverages{}, models.ErrMissingInputs
}

// BaselineRequest accepts the league baseline in simple or split form.
// Exactly one form must be supplied.
type BaselineRequest struct {
	LeagueAverage  *float64 `json:"league_average,omitempty" validate:"omitempty,gt=0"`
	HomeScoringAvg *float64 `json:"home_scoring_avg,omitempty" validate:"omitempty,gt=0"`
	AwayScoringAvg *float64 `json:"away_scoring_avg,omitempty" validate:"omitempty,gt=0"`
}

func (b BaselineRequest) baseline() (models.Baseline, error) {
	simple := b.LeagueAverage != nil
	split := b.HomeScoringAvg != nil && b.AwayScoringAvg != nil

	switch {
	case simple && split:
		return nil, errors.New("supply either league_average or the home/away scoring averages, not both")
	case simple:
		return models.NewSimpleBaseline(*b.LeagueAverage), nil
	case split:
		return models.NewSplitBaseline(*b.HomeScoringAvg, *b.AwayScoringAvg), nil
	default:
		return nil, models.ErrMissingInputs
	}
}

// AnalyzeRequest is the body of POST /api/v1/analyze.
type AnalyzeRequest struct {
	Home          TeamStatsRequest `json:"home" validate:"required"`
	Away          TeamStatsRequest `json:"away" validate:"required"`
	Baseline      BaselineRequest  `json:"baseline" validate:"required"`
	MarginPercent *float64         `json:"margin_percent,omitempty" validate:"omitempty,gte=0"`
	MaxGoals      *int             `json:"max_goals,omitempty" validate:"omitempty,gt=0"`
	IncludeMatrix bool             `json:"include_matrix,omitempty"`
}

// OutcomeView carries the matrix-derived side markets.
type OutcomeView struct {
	Outcome          models.MatchOutcome `json:"outcome"`
	BothTeamsToScore float64             `json:"both_teams_to_score"`
	MostLikelyScore  models.Scoreline    `json:"most_likely_score"`
}

// AnalyzeResponse is the body returned for a successful analysis.
type AnalyzeResponse struct {
	AnalysisID uuid.UUID              `json:"analysis_id"`
	Summary    models.AnalysisSummary `json:"summary"`
	Markets    []models.MarketResult  `json:"markets"`
	Outcome    OutcomeView            `json:"outcome_view"`
	Matrix     [][]float64            `json:"matrix,omitempty"`
}

var requestValidator = validator.New()

// handleAnalyze handles POST /api/v1/analyze.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var request AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		metrics.RecordAnalysisError("malformed_body")
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if err := requestValidator.Struct(request); err != nil {
		metrics.RecordAnalysisError("invalid_input")
		s.analysisLogger.LogAnalysisRejected(err.Error())
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := s.cache.Key(request)
	if cached := s.cache.Get(key); cached != nil {
		metrics.RecordCacheHit()
		s.analysisLogger.LogCacheHit(cached.AnalysisID.String())
		writeJSON(w, http.StatusOK, cached)
		return
	}
	metrics.RecordCacheMiss()

	started := time.Now()
	response, err := s.analyze(request)
	if err != nil {
		metrics.RecordAnalysisError("invalid_input")
		s.analysisLogger.LogAnalysisRejected(err.Error())
		writeError(w, statusForError(err), err.Error())
		return
	}

	duration := time.Since(started)
	metrics.RecordAnalysis(duration.Seconds(), response.Summary.TotalExpectedGoals)
	s.analysisLogger.LogAnalysisCompleted(
		response.AnalysisID.String(),
		response.Summary.HomeExpectedGoals,
		response.Summary.AwayExpectedGoals,
		len(response.Markets),
		float64(duration.Microseconds())/1000.0,
	)

	s.cache.Set(key, response)
	writeJSON(w, http.StatusOK, response)
}

// analyze runs the full pipeline for one request.
func (s *Server) analyze(request AnalyzeRequest) (*AnalyzeResponse, error) {
	home, err := request.Home.averages()
	if err != nil {
		return nil, err
	}
	away, err := request.Away.averages()
	if err != nil {
		return nil, err
	}
	baseline, err := request.Baseline.baseline()
	if err != nil {
		return nil, err
	}

	// An explicit zero margin means fair odds, so the request override is
	// resolved before the config reaches the calculator.
	margin := s.cfg.Analysis.MarginPercent
	if request.MarginPercent != nil {
		margin = *request.MarginPercent
	}
	calcConfig := engine.CalculatorConfig{
		MaxGoals:      s.cfg.Analysis.MaxGoals,
		Thresholds:    s.cfg.Analysis.Thresholds,
		MarginPercent: &margin,
	}
	if request.MaxGoals != nil {
		calcConfig.MaxGoals = *request.MaxGoals
	}

	calc := engine.NewCalculator(calcConfig)
	if err := calc.Configure(models.MatchInput{Home: home, Away: away, Baseline: baseline}); err != nil {
		return nil, err
	}
	if _, err := calc.ComputeStrengths(); err != nil {
		return nil, err
	}

	summary, err := calc.Summary()
	if err != nil {
		return nil, err
	}
	markets, err := calc.Markets()
	if err != nil {
		return nil, err
	}
	matrix, err := calc.Matrix()
	if err != nil {
		return nil, err
	}

	both, _ := matrix.BothTeamsToScore()
	response := &AnalyzeResponse{
		AnalysisID: uuid.New(),
		Summary:    summary,
		Markets:    markets,
		Outcome: OutcomeView{
			Outcome:          matrix.MatchOutcome(),
			BothTeamsToScore: both,
			MostLikelyScore:  matrix.MostLikelyScoreline(),
		},
	}
	if request.IncludeMatrix {
		response.Matrix = matrix.Cells()
	}
	return response, nil
}

// statusForError maps engine errors onto HTTP status codes. Every error the
// engine can return for a fresh request is an input problem.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotConfigured),
		errors.Is(err, models.ErrStrengthsNotComputed):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
