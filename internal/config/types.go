// Package config defines all configuration structures and default values
// for the countrydex server.
//
// Configuration Philosophy:
// - Sensible defaults allow zero-configuration startup
// - A single JSON file covers logging, HTTP, and lookup table settings
// - Built-in validation prevents misconfigurations
package config

import "time"

// Config represents the complete application configuration
type Config struct {
	// Logging
	LogLevel    string      `json:"log_level"`
	LogFile     string      `json:"log_file"` // Empty means console logging only
	LogRotation LogRotation `json:"log_rotation"`

	// HTTP server
	ListenAddr      string        `json:"listen_addr"`
	RequestTimeout  time.Duration `json:"request_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Country table override (empty means the embedded table)
	TablePath string `json:"table_path"`
}

// LogRotation defines log rotation settings
type LogRotation struct {
	MaxSizeMB  int  `json:"max_size_mb"`  // Maximum size in MB before rotation
	MaxBackups int  `json:"max_backups"`  // Maximum number of old log files to keep
	MaxAgeDays int  `json:"max_age_days"` // Maximum number of days to retain log files
	Compress   bool `json:"compress"`     // Whether to compress old log files
}

// FileLogRotation uses pointer fields for JSON parsing so that
// zero-values (0, false) can be distinguished from missing fields (nil).
type FileLogRotation struct {
	MaxSizeMB  *int  `json:"max_size_mb"`
	MaxBackups *int  `json:"max_backups"`
	MaxAgeDays *int  `json:"max_age_days"`
	Compress   *bool `json:"compress"`
}

// FileConfig represents the configuration file structure.
// Duration fields are strings ("10s", "1m") and parsed at load time.
type FileConfig struct {
	LogLevel        string          `json:"log_level"`
	LogFile         string          `json:"log_file"`
	LogRotation     FileLogRotation `json:"log_rotation"`
	ListenAddr      string          `json:"listen_addr"`
	RequestTimeout  string          `json:"request_timeout"`  // Will be parsed to time.Duration
	ShutdownTimeout string          `json:"shutdown_timeout"` // Will be parsed to time.Duration
	TablePath       string          `json:"table_path"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "INFO",
		LogFile:  "", // Console only until a log file is configured
		LogRotation: LogRotation{
			MaxSizeMB:  10,   // 10 MB per file
			MaxBackups: 5,    // Keep 5 old files
			MaxAgeDays: 7,    // Delete files older than 7 days
			Compress:   true, // Compress old files
		},
		ListenAddr:      ":8080",
		RequestTimeout:  10 * time.Second,
		ShutdownTimeout: 15 * time.Second,
		TablePath:       "",
	}
}
