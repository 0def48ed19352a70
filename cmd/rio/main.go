// cmd/rio/main.go
package main

import (
	"io"
	stlog "log" // For fatal errors before the logger is ready
	"os"

	"github.com/vishal2376/rio-editor/internal/app"
	"github.com/vishal2376/rio-editor/internal/config"
	"github.com/vishal2376/rio-editor/internal/logger"
	"github.com/vishal2376/rio-editor/internal/theme"
)

func main() {
	// --- Flags & Configuration ---
	flags := &config.Flags{}
	args := flags.Parse()

	cfg, cfgErr := config.Load(*flags.ConfigFilePath)
	flags.ApplyOverrides(cfg)

	// --- Logger Initialization ---
	var logOutput io.Writer
	if cfg.Logger.LogFilePath != "" {
		f, err := os.OpenFile(cfg.Logger.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
		}
		defer f.Close()
		logOutput = f
	}
	logger.Init(cfg.Logger.Level(), logOutput)

	logger.Infof("Starting rio editor...")
	if cfgErr != nil {
		logger.Warnf("Config load problem (using defaults where needed): %v", cfgErr)
	}

	// --- Theme ---
	if cfg.Editor.ThemeFile != "" {
		if t, err := theme.LoadFile(cfg.Editor.ThemeFile); err != nil {
			logger.Warnf("Failed to load theme %q, keeping built-in: %v", cfg.Editor.ThemeFile, err)
		} else {
			theme.SetCurrent(t)
		}
	}

	// --- File Argument ---
	var filePath string
	if len(args) > 0 {
		filePath = args[0]
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	// --- Create and Run App ---
	rioApp, err := app.New(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := rioApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("rio editor finished.")
}
