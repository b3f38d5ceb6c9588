// Package config provides configuration management for the countrydex server
// with validation, defaults, and a single JSON configuration file.
//
// Configuration precedence (lowest to highest):
// - Built-in defaults
// - JSON config file (when a path is given)
// - COUNTRYDEX_* environment variables
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Environment variables recognized by applyEnvOverrides
const (
	envListenAddr = "COUNTRYDEX_ADDR"
	envLogLevel   = "COUNTRYDEX_LOG_LEVEL"
	envTablePath  = "COUNTRYDEX_TABLE"
)

// LoadConfig loads and validates the server configuration
//
// Loading strategy:
// 1. Start with sensible defaults from DefaultConfig()
// 2. Override with values from the JSON config file (when path is non-empty)
// 3. Apply COUNTRYDEX_* environment variable overrides
// 4. Validate all settings for operational requirements
//
// This approach ensures the server can start with no configuration at all
// while still allowing full customization for real deployments.
func LoadConfig(path string) (*Config, error) {
	// Start with default configuration
	cfg := DefaultConfig()

	// A .env file is optional; system environment variables always apply
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using system environment variables")
	}

	// Load the config file when one was requested
	if path != "" {
		if err := loadFileConfig(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Apply environment overrides
	applyEnvOverrides(cfg)

	// Validate configuration
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Info("Configuration loaded successfully")
	return cfg, nil
}

// loadFileConfig merges a JSON configuration file into cfg.
// Fields absent from the file keep their default values.
func loadFileConfig(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fileCfg FileConfig
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogFile != "" {
		cfg.LogFile = fileCfg.LogFile
	}
	if fileCfg.ListenAddr != "" {
		cfg.ListenAddr = fileCfg.ListenAddr
	}
	if fileCfg.TablePath != "" {
		cfg.TablePath = fileCfg.TablePath
	}

	// Apply log rotation settings (use defaults if not specified)
	// Prevents misconfiguration that could exhaust disk space
	// or create too many backup files
	if fileCfg.LogRotation.MaxSizeMB != nil {
		cfg.LogRotation.MaxSizeMB = *fileCfg.LogRotation.MaxSizeMB
	}
	if fileCfg.LogRotation.MaxBackups != nil {
		cfg.LogRotation.MaxBackups = *fileCfg.LogRotation.MaxBackups
	}
	if fileCfg.LogRotation.MaxAgeDays != nil {
		cfg.LogRotation.MaxAgeDays = *fileCfg.LogRotation.MaxAgeDays
	}
	if fileCfg.LogRotation.Compress != nil {
		cfg.LogRotation.Compress = *fileCfg.LogRotation.Compress
	}

	// Parse duration strings
	// Supports Go duration format: "10s", "1m", "1h30m"
	if fileCfg.RequestTimeout != "" {
		duration, err := time.ParseDuration(fileCfg.RequestTimeout)
		if err != nil {
			return fmt.Errorf("invalid request_timeout format: %w", err)
		}
		cfg.RequestTimeout = duration
	}

	if fileCfg.ShutdownTimeout != "" {
		duration, err := time.ParseDuration(fileCfg.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("invalid shutdown_timeout format: %w", err)
		}
		cfg.ShutdownTimeout = duration
	}

	return nil
}

// applyEnvOverrides applies environment variables on top of file settings
// so deployments can adjust a container without editing the config file
func applyEnvOverrides(cfg *Config) {
	if addr := os.Getenv(envListenAddr); addr != "" {
		cfg.ListenAddr = addr
	}
	if level := os.Getenv(envLogLevel); level != "" {
		cfg.LogLevel = level
	}
	if table := os.Getenv(envTablePath); table != "" {
		cfg.TablePath = table
	}
}

// validateConfig validates the loaded configuration
//
// Operational validations:
// - Log rotation limits prevent disk space exhaustion
// - Timeouts within reasonable bounds for an HTTP service
// - Table override path must exist before the server starts
func validateConfig(cfg *Config) error {
	// Validate log level
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG", "INFO", "WARNING", "ERROR":
		// Valid log levels
	default:
		return fmt.Errorf("invalid log level: %s (must be DEBUG, INFO, WARNING, or ERROR)", cfg.LogLevel)
	}

	// Validate log rotation settings
	if cfg.LogRotation.MaxSizeMB < 1 || cfg.LogRotation.MaxSizeMB > 1000 {
		return fmt.Errorf("invalid log rotation max_size_mb: %d (must be 1-1000)", cfg.LogRotation.MaxSizeMB)
	}
	if cfg.LogRotation.MaxBackups < 0 || cfg.LogRotation.MaxBackups > 50 {
		return fmt.Errorf("invalid log rotation max_backups: %d (must be 0-50)", cfg.LogRotation.MaxBackups)
	}
	if cfg.LogRotation.MaxAgeDays < 0 || cfg.LogRotation.MaxAgeDays > 365 {
		return fmt.Errorf("invalid log rotation max_age_days: %d (must be 0-365)", cfg.LogRotation.MaxAgeDays)
	}

	// Warn about potentially problematic log rotation configurations
	if cfg.LogRotation.MaxBackups == 0 && cfg.LogRotation.MaxAgeDays == 0 {
		log.Warn("Log rotation: max_backups=0 and max_age_days=0 will delete all old logs immediately")
	}

	// Validate listen address
	if cfg.ListenAddr == "" {
		return fmt.Errorf("listen_addr cannot be empty")
	}

	// Validate timeouts
	// Minimum 1 second avoids cutting off slow clients mid-request
	if cfg.RequestTimeout < time.Second || cfg.RequestTimeout > 5*time.Minute {
		return fmt.Errorf("request_timeout out of range: %v (must be 1s-5m)", cfg.RequestTimeout)
	}
	if cfg.ShutdownTimeout < time.Second || cfg.ShutdownTimeout > 5*time.Minute {
		return fmt.Errorf("shutdown_timeout out of range: %v (must be 1s-5m)", cfg.ShutdownTimeout)
	}

	// Validate the table override path when one is set
	if cfg.TablePath != "" {
		if _, err := os.Stat(cfg.TablePath); err != nil {
			return fmt.Errorf("table_path is not readable: %w", err)
		}
	}

	return nil
}
