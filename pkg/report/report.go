// Package report renders issue lists into the human-readable log
// format and appends them to an existing log file's content.
package report

import (
	"fmt"
	"strings"

	"github.com/qduan/novelfmt/models"
)

// RenderQuoteIssues renders per-chapter quote reports, one chapter
// header plus its first finding:
//
//	- Chapter at line 12: 第三章 夜谈
//	  First issue at line 48 (mismatch): closing 』 does not match open 「
func RenderQuoteIssues(issues []models.ChapterIssue) string {
	var b strings.Builder
	for _, ci := range issues {
		fmt.Fprintf(&b, "- Chapter at line %d: %s\n", ci.TitleLine, ci.Title)
		fmt.Fprintf(&b, "  First issue at line %d (%s): %s\n",
			ci.Issue.Line, ci.Issue.Kind, ci.Issue.Note)
	}
	return b.String()
}

// RenderPunctIssues renders paragraph punctuation findings:
//
//	- Line 73 (invalid_start): paragraph starts with '，'
func RenderPunctIssues(issues []models.Issue) string {
	var b strings.Builder
	for _, is := range issues {
		fmt.Fprintf(&b, "- Line %d (%s): %s\n", is.Line, is.Kind, is.Note)
	}
	return b.String()
}

// Render produces the full log addition for one run: quote reports
// first, punctuation findings after.
func Render(quote []models.ChapterIssue, punct []models.Issue) string {
	return RenderQuoteIssues(quote) + RenderPunctIssues(punct)
}
