// Package quote validates and canonicalizes dialogue quotation marks.
//
// Dialogue uses two corner-quote pairs: 「」 at nesting depth zero and
// 『』 inside. Curly quotes are first folded onto the outer pair, then
// each chapter is checked for balanced pairing with an explicit stack.
// Chapters that pass are rewritten so the marker pair always reflects
// the nesting depth; chapters that fail keep their markers untouched
// and contribute a report instead.
package quote

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/qduan/novelfmt/models"
	"github.com/qduan/novelfmt/pkg/chapter"
)

const (
	OuterOpen  = '「'
	OuterClose = '」'
	InnerOpen  = '『'
	InnerClose = '』'
)

// IsOpen reports whether r is an opening dialogue marker.
func IsOpen(r rune) bool { return r == OuterOpen || r == InnerOpen }

// IsClose reports whether r is a closing dialogue marker.
func IsClose(r rune) bool { return r == OuterClose || r == InnerClose }

// SubstituteCurly folds curly single and double quotes onto the outer
// corner pair. Both styles collapse onto 「」; nesting depth is restored
// later by canonicalization.
func SubstituteCurly(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.Map(func(r rune) rune {
			switch r {
			case '‘', '“':
				return OuterOpen
			case '’', '”':
				return OuterClose
			}
			return r
		}, line)
	}
	return out
}

// Normalize groups lines into chapters and canonicalizes quote markers
// chapter by chapter. Lines before the first title pass through
// untouched. A malformed UTF-8 sequence inside a chapter is fatal and
// returned as an *EncodingError; pairing problems are returned as
// per-chapter reports and leave that chapter's markers unchanged.
func Normalize(lines []string) ([]string, []models.ChapterIssue, error) {
	out := make([]string, len(lines))
	copy(out, lines)
	var issues []models.ChapterIssue

	start := nextTitle(out, 0)
	for start < len(out) {
		end := nextTitle(out, start+1)
		ch := out[start:end]
		if err := checkEncoding(ch); err != nil {
			return nil, nil, err
		}
		if issue, bad := scanPairing(ch); bad {
			issue.Line += start + 1 // chapter-local to 1-based document line
			issues = append(issues, models.ChapterIssue{
				TitleLine: start + 1,
				Title:     out[start],
				Issue:     issue,
			})
		} else {
			canonicalize(ch)
		}
		start = end
	}
	return out, issues, nil
}

// CheckEncoding verifies chapter bodies are valid UTF-8, grouping lines
// into chapters the same way Normalize does. It exists so callers can
// validate the raw document before any rune-level rewriting replaces
// malformed bytes with U+FFFD and hides them. Lines before the first
// title are not inspected.
func CheckEncoding(lines []string) error {
	start := nextTitle(lines, 0)
	for start < len(lines) {
		end := nextTitle(lines, start+1)
		if err := checkEncoding(lines[start:end]); err != nil {
			return err
		}
		start = end
	}
	return nil
}

// nextTitle returns the index of the first title line at or after from,
// or len(lines).
func nextTitle(lines []string, from int) int {
	for from < len(lines) && !chapter.IsTitle(lines[from]) {
		from++
	}
	return from
}

type openMark struct {
	kind rune
	// line is chapter-local.
	line int
}

// scanPairing walks a chapter with a stack of open markers and returns
// the first anomaly: a close on an empty stack, a close whose kind
// disagrees with the top of the stack, or marks still open at chapter
// end (reported at the oldest open mark's line).
func scanPairing(ch []string) (models.Issue, bool) {
	var stack []openMark
	for li, line := range ch {
		for _, r := range line {
			switch {
			case IsOpen(r):
				stack = append(stack, openMark{kind: r, line: li})
			case IsClose(r):
				if len(stack) == 0 {
					return models.Issue{
						Line: li,
						Kind: models.KindExtraClose,
						Note: fmt.Sprintf("closing %c with no open quote", r),
					}, true
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				want := rune(OuterOpen)
				if r == InnerClose {
					want = InnerOpen
				}
				if top.kind != want {
					return models.Issue{
						Line: li,
						Kind: models.KindMismatch,
						Note: fmt.Sprintf("closing %c does not match open %c", r, top.kind),
					}, true
				}
			}
		}
	}
	if len(stack) > 0 {
		oldest := stack[0]
		return models.Issue{
			Line: oldest.line,
			Kind: models.KindUnclosed,
			Note: fmt.Sprintf("quote %c opened here is never closed", oldest.kind),
		}, true
	}
	return models.Issue{}, false
}

// canonicalize rewrites markers so depth selects the pair: 「」 at the
// outermost level, 『』 nested. Only called on chapters that passed
// scanPairing, so depth never goes negative.
func canonicalize(ch []string) {
	depth := 0
	for li, line := range ch {
		rs := []rune(line)
		changed := false
		for i, r := range rs {
			switch {
			case IsOpen(r):
				repl := rune(OuterOpen)
				if depth > 0 {
					repl = InnerOpen
				}
				if rs[i] != repl {
					rs[i] = repl
					changed = true
				}
				depth++
			case IsClose(r):
				repl := rune(InnerClose)
				if depth == 1 {
					repl = OuterClose
				}
				if rs[i] != repl {
					rs[i] = repl
					changed = true
				}
				depth--
			}
		}
		if changed {
			ch[li] = string(rs)
		}
	}
}

// checkEncoding verifies every byte sequence in the chapter is valid
// UTF-8. ch[0] is the title line.
func checkEncoding(ch []string) error {
	for li, line := range ch {
		if utf8.ValidString(line) {
			continue
		}
		pos := invalidBytePos(line)
		return &EncodingError{
			ChapterTitle: ch[0],
			AtTitle:      li == 0,
			LineIndex:    li,
			BytePos:      pos,
			Line:         line,
		}
	}
	return nil
}

func invalidBytePos(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
