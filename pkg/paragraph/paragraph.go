// Package paragraph assembles raw wrapped lines into one logical
// paragraph per output line and normalizes each line's whitespace and
// punctuation along the way.
//
// Output lines take one of three shapes: a chapter title verbatim (no
// prefix), a six-dash separator behind the indent marker, or ordinary
// prose behind the indent marker.
package paragraph

import (
	"strings"
	"unicode/utf8"

	"github.com/qduan/novelfmt/pkg/chapter"
	"github.com/qduan/novelfmt/pkg/textutil"
)

// IndentMarker prefixes every non-title, non-separator paragraph.
const IndentMarker = "　　"

// Separator is the literal rule line recognized and re-emitted verbatim.
const Separator = "------"

// Assemble merges wrapped source lines into logical paragraphs. A blank
// line, a separator line, a chapter title, or fresh indentation while a
// paragraph is open all terminate the current paragraph.
func Assemble(text string) []string {
	var out []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		p := cur.String()
		cur.Reset()
		if chapter.IsTitle(p) {
			out = append(out, p)
			return
		}
		out = append(out, IndentMarker+p)
	}

	for _, line := range textutil.SplitLines(text) {
		if textutil.Trim(line) == "" {
			flush()
			continue
		}
		if textutil.Trim(line) == Separator {
			flush()
			out = append(out, IndentMarker+Separator)
			continue
		}

		rs := []rune(line)
		indented := textutil.IsIndent(rs[0])
		norm := normalizeLine(line)
		if norm == "" {
			flush()
			continue
		}
		if chapter.IsTitle(norm) {
			flush()
			out = append(out, norm)
			continue
		}
		if indented && cur.Len() > 0 {
			flush()
		}
		appendChunk(&cur, norm)
	}
	flush()
	return out
}

// appendChunk concatenates a normalized chunk onto the open paragraph,
// inserting one ASCII space only when an ASCII word ends the paragraph
// and another begins the chunk. Wrapped English words stay separated;
// everything else joins tightly.
func appendChunk(cur *strings.Builder, chunk string) {
	if cur.Len() > 0 {
		prev, _ := lastRune(cur.String())
		first := []rune(chunk)[0]
		if textutil.IsASCIIWord(prev) && textutil.IsASCIIWord(first) {
			cur.WriteByte(' ')
		}
	}
	cur.WriteString(chunk)
}

func lastRune(s string) (rune, bool) {
	r, size := utf8.DecodeLastRuneInString(s)
	return r, size > 0
}
