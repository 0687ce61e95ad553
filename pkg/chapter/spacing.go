package chapter

import "github.com/qduan/novelfmt/pkg/textutil"

// FormatSpacing enforces the blank-line convention around titles: two
// blank lines before each title (none when the title opens the
// document), exactly one after. Trailing blank lines at end of document
// are dropped. Non-title lines pass through in order.
func FormatSpacing(lines []string) []string {
	out := make([]string, 0, len(lines))
	afterTitle := false
	for _, line := range lines {
		if IsTitle(line) {
			out = trimTrailingBlanks(out)
			if len(out) > 0 {
				out = append(out, "", "")
			}
			out = append(out, NormalizeTitle(line), "")
			afterTitle = true
			continue
		}
		if textutil.Trim(line) == "" {
			// The blank after a title is already in place.
			if afterTitle {
				continue
			}
			out = append(out, line)
			continue
		}
		afterTitle = false
		out = append(out, line)
	}
	return trimTrailingBlanks(out)
}

func trimTrailingBlanks(lines []string) []string {
	for len(lines) > 0 && textutil.Trim(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
