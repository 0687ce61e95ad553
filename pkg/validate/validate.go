// Package validate flags paragraphs whose first or last codepoint
// breaks the punctuation conventions of finished prose.
package validate

import (
	"fmt"

	"github.com/qduan/novelfmt/models"
	"github.com/qduan/novelfmt/pkg/chapter"
	"github.com/qduan/novelfmt/pkg/paragraph"
	"github.com/qduan/novelfmt/pkg/textutil"
)

// validEndings are the runes allowed to terminate a paragraph once
// trailing closers are stripped.
var validEndings = map[rune]bool{
	'，': true, ',': true,
	'。': true, '.': true,
	'？': true, '?': true,
	'！': true, '!': true,
	'：': true, ':': true,
	'～': true, '~': true,
	'—': true, '…': true, '》': true,
}

// closers are quote and bracket runes stripped from a paragraph's tail
// before the ending check.
var closers = map[rune]bool{
	'」': true, '』': true, '】': true, '）': true,
}

// Check inspects every ordinary paragraph line and reports
// invalid_ending and invalid_start findings against 1-based line
// numbers. Blank lines, chapter titles, and separator paragraphs are
// exempt.
func Check(lines []string) []models.Issue {
	var issues []models.Issue
	for idx, line := range lines {
		if textutil.Trim(line) == "" || chapter.IsTitle(line) {
			continue
		}
		body := stripIndentMarker(line)
		if body == paragraph.Separator {
			continue
		}
		n := idx + 1
		rs := []rune(body)
		if len(rs) == 0 {
			continue
		}

		last := len(rs) - 1
		for last >= 0 && closers[rs[last]] {
			last--
		}
		if last < 0 || !validEndings[rs[last]] {
			end := rs[len(rs)-1]
			if last >= 0 {
				end = rs[last]
			}
			issues = append(issues, models.Issue{
				Line: n,
				Kind: models.KindInvalidEnding,
				Note: fmt.Sprintf("paragraph ends with %q", end),
			})
		}

		if validEndings[rs[0]] || closers[rs[0]] {
			issues = append(issues, models.Issue{
				Line: n,
				Kind: models.KindInvalidStart,
				Note: fmt.Sprintf("paragraph starts with %q", rs[0]),
			})
		}
	}
	return issues
}

// stripIndentMarker removes the leading indentation run so the checks
// see the paragraph text itself.
func stripIndentMarker(line string) string {
	rs := []rune(line)
	return string(rs[textutil.ConsumeIndent(rs, 0):])
}
