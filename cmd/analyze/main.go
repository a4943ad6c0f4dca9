// Package main provides the command line analysis tool. It takes team scoring
// rates and a league baseline and prints the expected goals, Over/Under odds
// and 1X2 view for a single fixture.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/match-odds/internal/config"
	"github.com/yourusername/match-odds/internal/engine"
	"github.com/yourusername/match-odds/internal/logger"
	"github.com/yourusername/match-odds/internal/models"
	"github.com/yourusername/match-odds/internal/report"
)

// Build information - set via ldflags
var (
	Version = "dev"
)

var (
	configFile string
	cfg        *config.Config
	appLogger  *logrus.Logger

	homeFor      float64
	homeAgainst  float64
	homePlayed   int
	homeScored   float64
	homeConceded float64

	awayFor      float64
	awayAgainst  float64
	awayPlayed   int
	awayScored   float64
	awayConceded float64

	leagueAvg     float64
	leagueHomeAvg float64
	leagueAwayAvg float64

	marginPercent float64
	maxGoals      int
	showMatrix    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")

	rootCmd.Flags().Float64Var(&homeFor, "home-for", 0, "Home team goals scored per game")
	rootCmd.Flags().Float64Var(&homeAgainst, "home-against", 0, "Home team goals conceded per game")
	rootCmd.Flags().IntVar(&homePlayed, "home-played", 0, "Home team games played (totals mode)")
	rootCmd.Flags().Float64Var(&homeScored, "home-scored", 0, "Home team total goals scored (totals mode)")
	rootCmd.Flags().Float64Var(&homeConceded, "home-conceded", 0, "Home team total goals conceded (totals mode)")

	rootCmd.Flags().Float64Var(&awayFor, "away-for", 0, "Away team goals scored per game")
	rootCmd.Flags().Float64Var(&awayAgainst, "away-against", 0, "Away team goals conceded per game")
	rootCmd.Flags().IntVar(&awayPlayed, "away-played", 0, "Away team games played (totals mode)")
	rootCmd.Flags().Float64Var(&awayScored, "away-scored", 0, "Away team total goals scored (totals mode)")
	rootCmd.Flags().Float64Var(&awayConceded, "away-conceded", 0, "Away team total goals conceded (totals mode)")

	rootCmd.Flags().Float64Var(&leagueAvg, "league-avg", 0, "League average total goals per game")
	rootCmd.Flags().Float64Var(&leagueHomeAvg, "league-home-avg", 0, "League average goals scored by home sides")
	rootCmd.Flags().Float64Var(&leagueAwayAvg, "league-away-avg", 0, "League average goals scored by away sides")

	rootCmd.Flags().Float64Var(&marginPercent, "margin", 0, "Bookmaker margin percent (overrides config)")
	rootCmd.Flags().IntVar(&maxGoals, "max-goals", 0, "Scoreline matrix size per side (overrides config)")
	rootCmd.Flags().BoolVar(&showMatrix, "show-matrix", false, "Print the full scoreline probability matrix")
}

var rootCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute match odds for a single fixture",
	Long: `Computes attack/defense strengths, Poisson goal expectancies, Over/Under
market odds and 1X2 probabilities for one fixture from per-game averages
(or season totals) and a league baseline.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		appLogger = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalysis(cmd)
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	loaded, err := config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	if err := config.Validate(loaded); err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// teamAverages resolves one side's flags into per-game averages. Averages win
// over totals when both are given.
func teamAverages(cmd *cobra.Command, side string, goalsFor, goalsAgainst float64, played int, scored, conceded float64) (models.TeamAverages, error) {
	if cmd.Flags().Changed(side+"-for") && cmd.Flags().Changed(side+"-against") {
		return models.TeamAverages{GoalsFor: goalsFor, GoalsAgainst: goalsAgainst}, nil
	}
	if cmd.Flags().Changed(side + "-played") {
		return models.AveragesFromTotals(played, scored, conceded)
	}
	return models.TeamAverages{}, fmt.Errorf("%s team: %w (supply --%s-for/--%s-against or --%s-played/--%s-scored/--%s-conceded)",
		side, models.ErrMissingInputs, side, side, side, side, side)
}

func leagueBaseline(cmd *cobra.Command) (models.Baseline, error) {
	simple := cmd.Flags().Changed("league-avg")
	split := cmd.Flags().Changed("league-home-avg") && cmd.Flags().Changed("league-away-avg")

	switch {
	case simple && split:
		return nil, fmt.Errorf("supply either --league-avg or the --league-home-avg/--league-away-avg pair, not both")
	case simple:
		return models.NewSimpleBaseline(leagueAvg), nil
	case split:
		return models.NewSplitBaseline(leagueHomeAvg, leagueAwayAvg), nil
	default:
		return nil, fmt.Errorf("league baseline: %w (supply --league-avg or --league-home-avg/--league-away-avg)", models.ErrMissingInputs)
	}
}

func runAnalysis(cmd *cobra.Command) error {
	home, err := teamAverages(cmd, "home", homeFor, homeAgainst, homePlayed, homeScored, homeConceded)
	if err != nil {
		return err
	}
	away, err := teamAverages(cmd, "away", awayFor, awayAgainst, awayPlayed, awayScored, awayConceded)
	if err != nil {
		return err
	}
	baseline, err := leagueBaseline(cmd)
	if err != nil {
		return err
	}

	// --margin 0 is a request for fair odds, not for the configured default.
	margin := cfg.Analysis.MarginPercent
	if cmd.Flags().Changed("margin") {
		margin = marginPercent
	}
	calcConfig := engine.CalculatorConfig{
		MaxGoals:      cfg.Analysis.MaxGoals,
		Thresholds:    cfg.Analysis.Thresholds,
		MarginPercent: &margin,
	}
	if cmd.Flags().Changed("max-goals") {
		calcConfig.MaxGoals = maxGoals
	}

	calc := engine.NewCalculator(calcConfig)
	if err := calc.Configure(models.MatchInput{Home: home, Away: away, Baseline: baseline}); err != nil {
		return err
	}
	if _, err := calc.ComputeStrengths(); err != nil {
		return err
	}

	summary, err := calc.Summary()
	if err != nil {
		return err
	}
	markets, err := calc.Markets()
	if err != nil {
		return err
	}
	matrix, err := calc.Matrix()
	if err != nil {
		return err
	}

	appLogger.WithFields(logrus.Fields{
		"home_xg": summary.HomeExpectedGoals,
		"away_xg": summary.AwayExpectedGoals,
	}).Debug("Analysis completed")

	fmt.Println(report.RenderSummary(summary))
	fmt.Println(report.RenderMarkets(markets))
	fmt.Println(report.RenderOutcome(matrix.MatchOutcome(), matrix.MostLikelyScoreline()))

	if showMatrix {
		fmt.Println(renderMatrix(matrix))
	}
	return nil
}

func renderMatrix(matrix *engine.ScorelineMatrix) string {
	var b strings.Builder
	b.WriteString("Scoreline Probabilities (home goals down, away goals across)\n")
	for h := 0; h <= matrix.MaxGoals(); h++ {
		for a := 0; a <= matrix.MaxGoals(); a++ {
			fmt.Fprintf(&b, " %7s", report.FormatPercent(matrix.Prob(h, a)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
