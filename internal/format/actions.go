package format

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/qduan/novelfmt/internal/common"
	"github.com/qduan/novelfmt/pkg/pipeline"
	"github.com/qduan/novelfmt/pkg/quote"
	"github.com/qduan/novelfmt/pkg/report"
	"github.com/qduan/novelfmt/pkg/storage"
	"github.com/qduan/novelfmt/pkg/textutil"
)

// FormatAction normalizes a file in place: back up the original once,
// overwrite it with the formatted text, and append the issue report to
// the log file beside it. The pipeline runs entirely in memory first; a
// fatal encoding diagnostic aborts with exit code 2 before anything
// touches disk.
func FormatAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	if c.NArg() != 1 {
		return cli.Exit("usage: novelfmt format <path>", 1)
	}
	path := c.Args().First()

	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	store := &storage.Storage{}
	data, err := store.ReadFile(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	result, err := pipeline.Run(string(data))
	if err != nil {
		var encErr *quote.EncodingError
		if errors.As(err, &encErr) {
			return cli.Exit(encErr.Error(), 2)
		}
		return cli.Exit(err.Error(), 1)
	}

	backup, created, err := store.BackupIfAbsent(path, cfg.BackupSuffix)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if created {
		logger.Info("backup created", "path", backup)
	}

	if err := store.SaveFile(path, []byte(result.Text)); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	addition := report.Render(result.QuoteIssues, result.PunctIssues)
	logPath := storage.LogPath(path, cfg.LogName)
	if addition != "" {
		if err := store.AppendLog(logPath, []byte(addition)); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	outputLines := len(textutil.SplitLines(result.Text))
	common.RecordRun(logger, cfg, path, "format", int64(len(data)), outputLines, result)

	logger.Info("formatted",
		"path", path,
		"lines", outputLines,
		"quote_issues", len(result.QuoteIssues),
		"punct_issues", len(result.PunctIssues),
		"log", logPath)
	return nil
}
