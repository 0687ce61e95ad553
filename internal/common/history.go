package common

import (
	"log/slog"

	"github.com/qduan/novelfmt/models"
	"github.com/qduan/novelfmt/pkg/db"
	"github.com/qduan/novelfmt/pkg/pipeline"
)

// RecordRun persists a run when a history database is configured.
// History failures are logged, never fatal.
func RecordRun(logger *slog.Logger, cfg *models.Config, path, command string, inputBytes int64, outputLines int, result *pipeline.Result) {
	if cfg.DBPath == "" {
		return
	}
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("failed to open history database", "error", err)
		return
	}
	defer database.Close()

	runID, err := database.InsertRun(path, command, inputBytes, outputLines,
		len(result.QuoteIssues), len(result.PunctIssues))
	if err != nil {
		logger.Warn("failed to record run", "error", err)
		return
	}
	if err := database.InsertIssues(runID, result.QuoteIssues, result.PunctIssues); err != nil {
		logger.Warn("failed to record issues", "error", err)
	}
}
