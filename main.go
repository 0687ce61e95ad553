// novelfmt normalizes serialized web-novel plain text: one paragraph
// per line, script-aware punctuation and whitespace, consistent chapter
// spacing, and canonical dialogue quote nesting. Pairing and
// punctuation problems are reported, not fixed silently.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/qduan/novelfmt/internal/check"
	"github.com/qduan/novelfmt/internal/format"
	"github.com/qduan/novelfmt/internal/history"
	"github.com/qduan/novelfmt/internal/stats"
)

func main() {
	app := &cli.App{
		Name:  "novelfmt",
		Usage: "normalize serialized Chinese/English novel text",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML config file",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "run-history database path (overrides config)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "format",
				Usage:     "normalize a file in place (backup + log beside it)",
				ArgsUsage: "<path>",
				Action:    format.FormatAction,
			},
			{
				Name:      "check",
				Usage:     "report issues without writing anything",
				ArgsUsage: "<path>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "output",
						Value: "text",
						Usage: "report format: text or yaml",
					},
				},
				Action: check.CheckAction,
			},
			{
				Name:      "stats",
				Usage:     "per-chapter paragraph and language census",
				ArgsUsage: "<path>",
				Action:    stats.StatsAction,
			},
			{
				Name:      "history",
				Usage:     "list recorded runs, or show one run's issues",
				ArgsUsage: "[run-id]",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "max runs to list",
					},
				},
				Action: history.HistoryAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
