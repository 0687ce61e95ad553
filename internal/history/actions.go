package history

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/qduan/novelfmt/internal/common"
	"github.com/qduan/novelfmt/pkg/db"
)

// HistoryAction lists recorded runs, or with a run id argument, prints
// that run's findings.
func HistoryAction(c *cli.Context) error {
	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if cfg.DBPath == "" {
		return cli.Exit("no history database configured; pass --db or set db_path in the config file", 1)
	}
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("opening history database: %v", err), 1)
	}
	defer database.Close()

	if c.NArg() == 0 {
		runs, err := database.ListRuns(c.Int("limit"))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		if len(runs) == 0 {
			fmt.Println("no runs recorded")
			return nil
		}
		for _, r := range runs {
			fmt.Printf("#%d %s %s %s lines=%d quote_issues=%d punct_issues=%d\n",
				r.RunID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Command,
				r.Path, r.OutputLines, r.QuoteIssueCount, r.PunctIssueCount)
		}
		return nil
	}

	runID, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid run id: %s", c.Args().First()), 1)
	}
	run, err := database.GetRun(runID)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	issues, err := database.GetRunIssues(runID)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Printf("#%d %s %s %s\n", run.RunID, run.CreatedAt.Format("2006-01-02 15:04:05"),
		run.Command, run.Path)
	if len(issues) == 0 {
		fmt.Println("no issues")
		return nil
	}
	for _, is := range issues {
		if is.ChapterTitle != "" {
			fmt.Printf("- Line %d (%s): %s [chapter: %s]\n", is.Line, is.Kind, is.Note, is.ChapterTitle)
			continue
		}
		fmt.Printf("- Line %d (%s): %s\n", is.Line, is.Kind, is.Note)
	}
	return nil
}
