package models

import "errors"

// Custom errors
var (
	// Configuration errors, surfaced when inputs are set and before any derived computation.
	ErrMissingInputs = errors.New("team averages and league baseline must be set before calculating strengths")
	ErrNoGamesPlayed = errors.New("games played must be greater than zero")
	ErrNegativeValue = errors.New("goal figures must not be negative")

	// Sequencing errors, raised when a stage runs before its prerequisite completed.
	ErrNotConfigured        = errors.New("calculator not configured: set team averages and baseline first")
	ErrStrengthsNotComputed = errors.New("strengths must be calculated before goal expectancy or market analysis")

	// ErrInvalidExpectancy guards the scoreline stage against non-positive lambdas.
	ErrInvalidExpectancy = errors.New("goal expectancy must be positive")
)
