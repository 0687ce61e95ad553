package stats

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/qduan/novelfmt/internal/common"
	"github.com/qduan/novelfmt/pkg/langstat"
	"github.com/qduan/novelfmt/pkg/pipeline"
	"github.com/qduan/novelfmt/pkg/quote"
	"github.com/qduan/novelfmt/pkg/storage"
	"github.com/qduan/novelfmt/pkg/textutil"
)

// statsReport is the serialized shape of the stats output.
type statsReport struct {
	Path     string                 `yaml:"path"`
	Chapters []langstat.ChapterStat `yaml:"chapters"`
}

// StatsAction normalizes a file in memory and prints a per-chapter
// census: paragraph counts and the dominant language of the prose.
func StatsAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	if c.NArg() != 1 {
		return cli.Exit("usage: novelfmt stats <path>", 1)
	}
	path := c.Args().First()

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

	logger.Info("analyzing chapters", "path", path)
	analyzer := langstat.NewAnalyzer()
	chapters := analyzer.Analyze(textutil.SplitLines(result.Text))

	out, err := yaml.Marshal(statsReport{Path: path, Chapters: chapters})
	if err != nil {
		return cli.Exit(fmt.Sprintf("marshaling stats: %v", err), 1)
	}
	fmt.Print(string(out))
	return nil
}
