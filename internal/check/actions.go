package check

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/qduan/novelfmt/internal/common"
	"github.com/qduan/novelfmt/models"
	"github.com/qduan/novelfmt/pkg/pipeline"
	"github.com/qduan/novelfmt/pkg/quote"
	"github.com/qduan/novelfmt/pkg/report"
	"github.com/qduan/novelfmt/pkg/storage"
	"github.com/qduan/novelfmt/pkg/textutil"
)

// checkReport is the serialized shape of --output yaml.
type checkReport struct {
	Path        string                `yaml:"path"`
	QuoteIssues []models.ChapterIssue `yaml:"quote_issues"`
	PunctIssues []models.Issue        `yaml:"punct_issues"`
}

// CheckAction runs the pipeline without writing anything and reports
// the findings to stdout, as text or YAML.
func CheckAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	if c.NArg() != 1 {
		return cli.Exit("usage: novelfmt check <path>", 1)
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

	switch c.String("output") {
	case "yaml":
		out, err := yaml.Marshal(checkReport{
			Path:        path,
			QuoteIssues: result.QuoteIssues,
			PunctIssues: result.PunctIssues,
		})
		if err != nil {
			return cli.Exit(fmt.Sprintf("marshaling report: %v", err), 1)
		}
		fmt.Print(string(out))
	default:
		text := report.Render(result.QuoteIssues, result.PunctIssues)
		if text == "" {
			fmt.Fprintf(os.Stdout, "%s: no issues\n", path)
		} else {
			fmt.Print(text)
		}
	}

	outputLines := len(textutil.SplitLines(result.Text))
	common.RecordRun(logger, cfg, path, "check", int64(len(data)), outputLines, result)
	return nil
}
