// Package common holds the helpers shared by the CLI command actions.
package common

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/qduan/novelfmt/models"
)

// NewLogger builds the stderr JSON logger used by every command.
// --quiet raises the level to error.
func NewLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	if c.Bool("quiet") {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// ResolveConfig loads the YAML config named by --config, or the
// defaults when the flag is unset. A --db flag overrides the configured
// history database path.
func ResolveConfig(c *cli.Context) (*models.Config, error) {
	cfg := models.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	return cfg, nil
}
