/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger.go
Description: Logging system for the Akaylee Learner. Provides structured
logging with timestamped files, multiple output formats, and learner-specific
helpers for refinement steps, hypotheses, counterexamples, and session
summaries.
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/kleascm/akaylee-learner/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warn"
	LogLevelError   LogLevel = "error"
	LogLevelFatal   LogLevel = "fatal"
)

// LogFormat represents the logging format
type LogFormat string

const (
	LogFormatJSON   LogFormat = "json"
	LogFormatText   LogFormat = "text"
	LogFormatCustom LogFormat = "custom"
)

// LoggerConfig holds the configuration for the logger
type LoggerConfig struct {
	Level     LogLevel  `json:"level"`
	Format    LogFormat `json:"format"`
	OutputDir string    `json:"output_dir"` // empty: console only
	MaxFiles  int       `json:"max_files"`
	Timestamp bool      `json:"timestamp"`
	Colors    bool      `json:"colors"`
}

// Validate checks the LoggerConfig for invalid or missing values.
// Returns an error if the config is invalid, or nil if valid.
func (c *LoggerConfig) Validate() error {
	switch c.Format {
	case LogFormatJSON, LogFormatText, LogFormatCustom:
	default:
		return fmt.Errorf("unsupported log format: %s", c.Format)
	}
	switch c.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError, LogLevelFatal:
	default:
		return fmt.Errorf("unsupported log level: %s", c.Level)
	}
	if c.OutputDir != "" && c.MaxFiles <= 0 {
		return fmt.Errorf("max_files must be positive when logging to files")
	}
	return nil
}

// Logger provides structured logging for learning sessions
type Logger struct {
	config     *LoggerConfig
	logger     *logrus.Logger
	fileHandle *os.File
	startTime  time.Time
}

// NewLogger creates a new logger instance. A nil config selects console-only
// text logging at info level.
func NewLogger(config *LoggerConfig) (*Logger, error) {
	if config == nil {
		config = &LoggerConfig{
			Level:     LogLevelInfo,
			Format:    LogFormatText,
			Timestamp: true,
			Colors:    true,
		}
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger config: %w", err)
	}

	l := &Logger{
		config:    config,
		logger:    logrus.New(),
		startTime: time.Now(),
	}
	if err := l.setup(); err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return l, nil
}

// setup configures the underlying logrus logger
func (l *Logger) setup() error {
	level, err := logrus.ParseLevel(string(l.config.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.logger.SetLevel(level)

	switch l.config.Format {
	case LogFormatJSON:
		l.logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	case LogFormatText:
		l.logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   l.config.Timestamp,
			TimestampFormat: time.RFC3339,
			ForceColors:     l.config.Colors,
			DisableColors:   !l.config.Colors,
		})
	case LogFormatCustom:
		l.logger.SetFormatter(&CustomFormatter{
			Timestamp: l.config.Timestamp,
			Colors:    l.config.Colors,
		})
	}

	return l.setupFileOutput()
}

// setupFileOutput tees log output into a timestamped file when an output
// directory is configured
func (l *Logger) setupFileOutput() error {
	if l.config.OutputDir == "" {
		return nil
	}
	if err := os.MkdirAll(l.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	name := fmt.Sprintf("akaylee-learner_%s.log", time.Now().Format("2006-01-02_15-04-05"))
	file, err := os.OpenFile(filepath.Join(l.config.OutputDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	l.fileHandle = file
	l.logger.SetOutput(io.MultiWriter(os.Stdout, file))
	return nil
}

// cleanup removes the oldest log files beyond the configured limit
func (l *Logger) cleanup() error {
	if l.config.OutputDir == "" {
		return nil
	}
	files, err := filepath.Glob(filepath.Join(l.config.OutputDir, "akaylee-learner_*.log"))
	if err != nil {
		return err
	}
	if len(files) <= l.config.MaxFiles {
		return nil
	}
	sort.Slice(files, func(i, j int) bool {
		statI, _ := os.Stat(files[i])
		statJ, _ := os.Stat(files[j])
		return statI.ModTime().Before(statJ.ModTime())
	})
	for _, file := range files[:len(files)-l.config.MaxFiles] {
		os.Remove(file)
	}
	return nil
}

// Close closes the logger and performs cleanup
func (l *Logger) Close() error {
	if l.fileHandle != nil {
		l.fileHandle.Close()
	}
	if err := l.cleanup(); err != nil {
		return fmt.Errorf("failed to cleanup log files: %w", err)
	}
	return nil
}

// GetLogger returns the underlying logrus logger
func (l *Logger) GetLogger() *logrus.Logger {
	return l.logger
}

// Learner-specific logging methods

// LogSessionStart logs the start of a learning session
func (l *Logger) LogSessionStart(sessionID, alphabet string, maxCELen, maxCESearches int) {
	l.logger.WithFields(logrus.Fields{
		"session_id":      sessionID,
		"alphabet":        alphabet,
		"max_ce_len":      maxCELen,
		"max_ce_searches": maxCESearches,
	}).Info("Learning session started")
}

// LogRefinement logs a single table refinement: a closure promotion or a new
// distinguishing experiment
func (l *Logger) LogRefinement(sessionID, kind, witness string) {
	l.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"kind":       kind,
		"witness":    witness,
	}).Debug("Observation table refined")
}

// LogHypothesis logs an extracted hypothesis automaton
func (l *Logger) LogHypothesis(sessionID string, states, rows, experiments int) {
	l.logger.WithFields(logrus.Fields{
		"session_id":  sessionID,
		"states":      states,
		"rows":        rows,
		"experiments": experiments,
	}).Info("Hypothesis automaton extracted")
}

// LogCounterexample logs a counterexample found by the bounded search
func (l *Logger) LogCounterexample(sessionID, counterexample string, length int) {
	l.logger.WithFields(logrus.Fields{
		"session_id":     sessionID,
		"counterexample": counterexample,
		"length":         length,
	}).Info("Counterexample found")
}

// LogSessionEnd logs the final statistics of a learning session
func (l *Logger) LogSessionEnd(stats *interfaces.LearnStats) {
	l.logger.WithFields(logrus.Fields{
		"session_id":         stats.SessionID,
		"states":             stats.States,
		"membership_queries": stats.MembershipQueries,
		"search_checks":      stats.SearchChecks,
		"counterexamples":    stats.Counterexamples,
		"hypotheses":         stats.Hypotheses,
		"table_rows":         stats.TableRows,
		"table_cells":        stats.TableCells,
		"duration":           stats.Duration,
	}).Info("Learning session completed")
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Info(msg)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Error(msg)
}
