// Package pipeline chains the formatting stages end to end: paragraph
// assembly, chapter spacing, quote substitution and canonicalization,
// trailing-quote migration, and punctuation validation. Every stage is
// a pure text-in/text-out pass, so the whole run is deterministic.
package pipeline

import (
	"strings"

	"github.com/qduan/novelfmt/models"
	"github.com/qduan/novelfmt/pkg/chapter"
	"github.com/qduan/novelfmt/pkg/paragraph"
	"github.com/qduan/novelfmt/pkg/quote"
	"github.com/qduan/novelfmt/pkg/textutil"
	"github.com/qduan/novelfmt/pkg/validate"
)

// Result is the outcome of one full pipeline run.
type Result struct {
	// Text is the normalized document, newline-terminated.
	Text string
	// QuoteIssues holds one report per chapter with a pairing problem.
	QuoteIssues []models.ChapterIssue
	// PunctIssues holds the paragraph punctuation findings.
	PunctIssues []models.Issue
}

// Run normalizes text and collects validation findings. The only error
// it can return is a fatal *quote.EncodingError; nothing is written to
// disk by callers before Run has succeeded. Encoding is checked on the
// raw lines up front, before assembly decodes runes and would fold
// malformed bytes into U+FFFD.
func Run(text string) (*Result, error) {
	if err := quote.CheckEncoding(textutil.SplitLines(text)); err != nil {
		return nil, err
	}
	lines := paragraph.Assemble(text)
	lines = chapter.FormatSpacing(lines)
	lines = quote.SubstituteCurly(lines)
	lines, quoteIssues, err := quote.Normalize(lines)
	if err != nil {
		return nil, err
	}
	lines = quote.MigrateTrailing(lines)
	punctIssues := validate.Check(lines)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return &Result{
		Text:        b.String(),
		QuoteIssues: quoteIssues,
		PunctIssues: punctIssues,
	}, nil
}
