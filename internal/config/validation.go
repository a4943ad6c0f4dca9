// Package config provides configuration management for the match odds service.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)
	_ = v.RegisterValidation("thresholds", validateThresholds)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	// Additional cross-field validations
	if err := validateCrossField(cfg); err != nil {
		return err
	}

	return nil
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	env := fl.Field().String()
	switch env {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	level := fl.Field().String()
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateThresholds requires positive, strictly ascending half-integer
// total-goals lines. Half-integer lines keep the Under/Over split exact
// because integer goal totals can never land on the line.
func validateThresholds(fl validator.FieldLevel) bool {
	thresholds, ok := fl.Field().Interface().([]float64)
	if !ok || len(thresholds) == 0 {
		return false
	}

	previous := 0.0
	for _, threshold := range thresholds {
		if threshold <= 0 || threshold <= previous {
			return false
		}
		if threshold*2 != float64(int(threshold*2)) || threshold == float64(int(threshold)) {
			return false
		}
		previous = threshold
	}
	return true
}

// validateCrossField applies validations spanning multiple config sections
func validateCrossField(cfg *Config) error {
	if len(cfg.Analysis.Thresholds) > 0 {
		top := cfg.Analysis.Thresholds[len(cfg.Analysis.Thresholds)-1]
		if float64(cfg.Analysis.MaxGoals) <= top {
			return fmt.Errorf("analysis.max_goals (%d) must exceed the top threshold (%v)", cfg.Analysis.MaxGoals, top)
		}
	}
	return nil
}

// formatValidationErrors converts validator errors into a readable message
func formatValidationErrors(errs validator.ValidationErrors) error {
	messages := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		messages = append(messages, fmt.Sprintf("%s failed on the '%s' rule", fieldErr.Namespace(), fieldErr.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}
