// Package textutil provides the codepoint-level helpers shared by the
// formatting stages. Every function iterates by rune; none of them will
// split a multi-byte character.
package textutil

import "strings"

// IdeographicSpace is the full-width space used for paragraph indentation
// in Chinese prose.
const IdeographicSpace = '　'

// IsIndent reports whether r counts as indentation: ASCII space, tab, or
// the full-width space.
func IsIndent(r rune) bool {
	return r == ' ' || r == '\t' || r == IdeographicSpace
}

// ConsumeIndent returns the index just past the maximal run of
// indentation runes in rs starting at pos.
func ConsumeIndent(rs []rune, pos int) int {
	for pos < len(rs) && IsIndent(rs[pos]) {
		pos++
	}
	return pos
}

// IsASCIIWord reports whether r is an ASCII word character: [0-9A-Za-z_].
func IsASCIIWord(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z')
}

func isTrimmable(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == IdeographicSpace
}

// Trim strips leading and trailing ASCII whitespace and full-width
// spaces. Other Unicode whitespace is left alone.
func Trim(s string) string {
	return strings.TrimFunc(s, isTrimmable)
}

// SplitLines normalizes \r\n and bare \r to \n, then splits on \n. A
// trailing newline does not produce an empty final line; text without a
// trailing newline still yields its last line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
