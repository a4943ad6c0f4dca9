// Package logger provides analysis-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// AnalysisLogger provides dedicated logging for match analysis operations.
type AnalysisLogger struct {
	*logrus.Entry
}

// NewAnalysisLogger creates a new analysis logger.
func NewAnalysisLogger(baseLogger *logrus.Logger) *AnalysisLogger {
	return &AnalysisLogger{
		Entry: baseLogger.WithField("component", "analysis"),
	}
}

// LogAnalysisCompleted logs a completed match analysis.
func (al *AnalysisLogger) LogAnalysisCompleted(analysisID string, homeExpected, awayExpected float64, markets int, durationMs float64) {
	al.WithFields(logrus.Fields{
		"analysis_id":          analysisID,
		"home_expected_goals":  homeExpected,
		"away_expected_goals":  awayExpected,
		"markets":              markets,
		"analysis_duration_ms": durationMs,
	}).Info("Match analysis completed")
}

// LogAnalysisRejected logs an analysis rejected at the input boundary.
func (al *AnalysisLogger) LogAnalysisRejected(reason string) {
	al.WithFields(logrus.Fields{
		"reason": reason,
	}).Warn("Match analysis rejected")
}

// LogCacheHit logs an analysis served from the response cache.
func (al *AnalysisLogger) LogCacheHit(analysisID string) {
	al.WithFields(logrus.Fields{
		"analysis_id": analysisID,
	}).Debug("Analysis served from cache")
}
