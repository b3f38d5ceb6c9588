// Package logger configures the global logrus logger with console output
// and optional size-based file rotation.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RotationConfig contains log rotation settings
type RotationConfig struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// logWriter holds the rotating file writer for cleanup
var (
	logWriter   *lumberjack.Logger
	logWriterMu sync.Mutex
)

// NewLogger configures the global logrus logger.
// An empty logFilePath selects console-only logging; otherwise output goes
// to both the console and a size-rotated log file.
func NewLogger(logLevel string, logFilePath string, rotation RotationConfig) error {
	// Set log level on global logger
	level, err := parseLogLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(level)

	// Set custom formatter on global logger
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		ForceColors:     false, // Disable colors for file output
	})

	logWriterMu.Lock()
	defer logWriterMu.Unlock()

	// Close previous rotating writer if open
	if logWriter != nil {
		logWriter.Close()
		logWriter = nil
	}

	if logFilePath == "" {
		logrus.SetOutput(os.Stdout)
		logrus.WithField("level", logLevel).Info("Logger initialized with console output")
		return nil
	}

	// lumberjack creates the log directory on first write and rotates
	// by size, backup count, and age
	logWriter = &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
		Compress:   rotation.Compress,
	}

	// Set up multi-writer to write to both file and console
	multiWriter := io.MultiWriter(os.Stdout, logWriter)
	logrus.SetOutput(multiWriter)

	// Log initial message
	logrus.WithFields(logrus.Fields{
		"level":       logLevel,
		"log_file":    logFilePath,
		"max_size":    fmt.Sprintf("%dMB", rotation.MaxSizeMB),
		"max_backups": rotation.MaxBackups,
		"max_age":     fmt.Sprintf("%d days", rotation.MaxAgeDays),
		"compress":    rotation.Compress,
	}).Info("Logger initialized with file output")

	return nil
}

// Close closes the rotating log writer and should be called during shutdown
func Close() error {
	logWriterMu.Lock()
	defer logWriterMu.Unlock()

	if logWriter != nil {
		err := logWriter.Close()
		logWriter = nil
		return err
	}
	return nil
}

// parseLogLevel converts string log level to logrus.Level
func parseLogLevel(level string) (logrus.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return logrus.DebugLevel, nil
	case "INFO":
		return logrus.InfoLevel, nil
	case "WARNING", "WARN":
		return logrus.WarnLevel, nil
	case "ERROR":
		return logrus.ErrorLevel, nil
	default:
		return logrus.InfoLevel, fmt.Errorf("unknown log level: %s", level)
	}
}
