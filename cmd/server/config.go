package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/workboard-api/internal/config"
	"github.com/phrazzld/workboard-api/internal/redact"
)

// loadAppConfig loads the application configuration from environment variables or config file.
// Returns the loaded config and any loading error.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	slog.Debug("Database configuration", "url", redact.URL(cfg.Database.URL))

	return cfg, nil
}
