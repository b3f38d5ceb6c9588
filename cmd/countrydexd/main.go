// Package main implements the countrydex lookup server, a small HTTP
// service answering country metadata queries by dial code, ISO 3166-1
// alpha-2 code, or English name.
//
// The server uses a modular architecture with separate components for:
// - The immutable country directory and its lookups
// - HTTP routing, request IDs, and response envelopes
// - Configurable logging with rotation
//
// Configuration is managed through an optional JSON file plus
// COUNTRYDEX_* environment variables.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/countrydex/countrydex/countries"
	"github.com/countrydex/countrydex/internal/api"
	"github.com/countrydex/countrydex/internal/config"
	"github.com/countrydex/countrydex/internal/logger"
)

// Application version
const Version = "1.0.0"

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to the JSON configuration file (optional)")
	listenAddr := flag.String("addr", "", "Listen address (overrides config and COUNTRYDEX_ADDR env)")
	version := flag.Bool("version", false, "Show version information")
	checkConfig := flag.Bool("check-config", false, "Validate configuration and exit")
	flag.Parse()

	// Show version and exit if requested
	if *version {
		fmt.Printf("countrydex server v%s\n", Version)
		os.Exit(0)
	}

	// Check-config mode: validate and exit
	if *checkConfig {
		_, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Printf("Configuration INVALID: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Configuration OK")
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Override listen address: flag > env > config
	cfg.ListenAddr = resolveListenAddr(*listenAddr, cfg.ListenAddr)

	// Initialize logger with configurable rotation settings
	rotationConfig := logger.RotationConfig{
		MaxSizeMB:  cfg.LogRotation.MaxSizeMB,
		MaxBackups: cfg.LogRotation.MaxBackups,
		MaxAgeDays: cfg.LogRotation.MaxAgeDays,
		Compress:   cfg.LogRotation.Compress,
	}
	if err := logger.NewLogger(cfg.LogLevel, cfg.LogFile, rotationConfig); err != nil {
		fmt.Printf("Error setting up logger: %v\n", err)
		os.Exit(1)
	}

	// Log initial message
	log.WithField("version", Version).Info("Starting countrydex server")

	// Load the country table: a configured file overrides the embedded one
	var dir *countries.Directory
	if cfg.TablePath != "" {
		dir, err = countries.LoadFile(cfg.TablePath)
		if err != nil {
			log.WithError(err).Fatal("Failed to load country table")
		}
		log.WithFields(log.Fields{
			"table":     cfg.TablePath,
			"countries": dir.Len(),
		}).Info("Country table loaded")
	} else {
		dir = countries.Default()
		log.WithField("countries", dir.Len()).Info("Embedded country table loaded")
	}

	// Set up Gin router
	if !strings.EqualFold(cfg.LogLevel, "DEBUG") {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(dir)

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      router,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	// Start server in the background so shutdown signals can be handled
	go func() {
		log.WithField("addr", cfg.ListenAddr).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Setup signal handling for graceful shutdown
	// Listens for SIGINT (Ctrl+C) and SIGTERM (systemd/docker stop)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown signal
	<-sigChan
	log.Info("Shutdown signal received, stopping server...")

	// Give outstanding requests time to complete
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	// Close logger to flush and release the log file
	if err := logger.Close(); err != nil {
		fmt.Printf("Warning: Failed to close logger: %v\n", err)
	}

	log.Info("Server stopped successfully")
}

// resolveListenAddr gives the -addr flag priority over the configured
// (file or environment) listen address.
func resolveListenAddr(flagVal, configVal string) string {
	if flagVal != "" {
		return flagVal
	}
	return configVal
}
