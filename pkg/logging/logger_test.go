/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger_test.go
Description: Tests for the logging system. Tests logger creation, formats,
file output, cleanup, and the learner-specific logging helpers.
*/

package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kleascm/akaylee-learner/pkg/interfaces"
	"github.com/kleascm/akaylee-learner/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerCreation(t *testing.T) {
	// default configuration
	logger, err := logging.NewLogger(nil)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	defer logger.Close()

	// custom configuration with file output
	dir := t.TempDir()
	config := &logging.LoggerConfig{
		Level:     logging.LogLevelDebug,
		Format:    logging.LogFormatJSON,
		OutputDir: dir,
		MaxFiles:  5,
		Timestamp: true,
		Colors:    false,
	}
	logger, err = logging.NewLogger(config)
	require.NoError(t, err)
	defer logger.Close()

	logger.Info("file output", map[string]interface{}{"key": "value"})

	files, err := filepath.Glob(filepath.Join(dir, "akaylee-learner_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestLoggerConfigValidation(t *testing.T) {
	_, err := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LogLevelInfo,
		Format: "yaml",
	})
	assert.Error(t, err)

	_, err = logging.NewLogger(&logging.LoggerConfig{
		Level:  "loud",
		Format: logging.LogFormatText,
	})
	assert.Error(t, err)

	_, err = logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatText,
		OutputDir: t.TempDir(),
		MaxFiles:  0,
	})
	assert.Error(t, err)
}

func TestLogLevels(t *testing.T) {
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LogLevelDebug,
		Format: logging.LogFormatText,
	})
	require.NoError(t, err)
	defer logger.Close()

	logger.Debug("Debug message", map[string]interface{}{"key": "value"})
	logger.Info("Info message", map[string]interface{}{"key": "value"})
	logger.Warning("Warning message", map[string]interface{}{"key": "value"})
	logger.Error("Error message", map[string]interface{}{"key": "value"})
}

func TestLearnerLoggingHelpers(t *testing.T) {
	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LogLevelDebug,
		Format: logging.LogFormatCustom,
	})
	require.NoError(t, err)
	defer logger.Close()

	var buf bytes.Buffer
	logger.GetLogger().SetOutput(&buf)

	logger.LogSessionStart("session-1", "ab", 15, 100000)
	logger.LogRefinement("session-1", "close", "a")
	logger.LogHypothesis("session-1", 3, 4, 2)
	logger.LogCounterexample("session-1", "bab", 3)
	logger.LogSessionEnd(&interfaces.LearnStats{
		SessionID: "session-1",
		States:    3,
		Duration:  time.Millisecond,
	})

	out := buf.String()
	assert.Contains(t, out, "Learning session started")
	assert.Contains(t, out, "Observation table refined")
	assert.Contains(t, out, "Hypothesis automaton extracted")
	assert.Contains(t, out, "Counterexample found")
	assert.Contains(t, out, "Learning session completed")
}

func TestCustomFormatterSortsFields(t *testing.T) {
	formatter := &logging.CustomFormatter{Timestamp: false, Colors: false}
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.InfoLevel,
		Message: "refined",
		Data:    logrus.Fields{"zeta": 1, "alpha": 2},
		Time:    time.Now(),
	}

	out, err := formatter.Format(entry)
	require.NoError(t, err)
	line := string(out)
	assert.Contains(t, line, "INFO refined")
	assert.Less(t, bytes.Index(out, []byte("alpha=")), bytes.Index(out, []byte("zeta=")))
}

func TestLoggerCleanup(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 3; i++ {
		name := filepath.Join(dir, "akaylee-learner_2024-01-0"+string(rune('1'+i))+"_00-00-00.log")
		require.NoError(t, os.WriteFile(name, []byte("old"), 0644))
	}

	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatText,
		OutputDir: dir,
		MaxFiles:  2,
	})
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	files, err := filepath.Glob(filepath.Join(dir, "akaylee-learner_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
