package quote

import (
	"fmt"
	"strings"
)

// EncodingError reports a malformed UTF-8 sequence found during chapter
// validation. It is the one fatal condition in the pipeline: no output
// may be committed once it is returned.
type EncodingError struct {
	ChapterTitle string
	// AtTitle marks the title itself as the offending line.
	AtTitle bool
	// LineIndex is chapter-local; 0 is the title.
	LineIndex int
	BytePos   int
	Line      string
}

func (e *EncodingError) Error() string {
	where := "body line"
	if e.AtTitle {
		where = "title line"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "invalid UTF-8 in chapter %q: %s (chapter line %d), byte %d\n",
		e.ChapterTitle, where, e.LineIndex, e.BytePos)
	fmt.Fprintf(&b, "  preview: %s\n", asciiPreview(e.Line))
	fmt.Fprintf(&b, "  bytes:   %s", hexWindow(e.Line, e.BytePos))
	return b.String()
}

// asciiPreview renders the line with every non-printable or non-ASCII
// byte shown as a dot.
func asciiPreview(line string) string {
	out := make([]byte, len(line))
	for i := 0; i < len(line); i++ {
		b := line[i]
		if b >= 0x20 && b < 0x7f {
			out[i] = b
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// hexWindow dumps the bytes within 16 positions of pos, marking the
// offending byte.
func hexWindow(line string, pos int) string {
	start := pos - 16
	if start < 0 {
		start = 0
	}
	end := pos + 16
	if end > len(line) {
		end = len(line)
	}
	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteByte(' ')
		}
		if i == pos {
			fmt.Fprintf(&b, "[%02x]", line[i])
		} else {
			fmt.Fprintf(&b, "%02x", line[i])
		}
	}
	return b.String()
}
