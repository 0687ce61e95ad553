package quote

import (
	"github.com/qduan/novelfmt/pkg/textutil"
)

// MigrateTrailing moves a line-final opening marker down to the next
// non-blank line, splicing it in just after that line's indentation. A
// source line left holding only indentation is removed from the
// sequence. A trailing opener with no following non-blank line stays
// where it is.
func MigrateTrailing(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)

	for i := 0; i < len(out); {
		rs := []rune(out[i])
		if len(rs) == 0 || !IsOpen(rs[len(rs)-1]) {
			i++
			continue
		}
		target := -1
		for j := i + 1; j < len(out); j++ {
			if textutil.Trim(out[j]) != "" {
				target = j
				break
			}
		}
		if target < 0 {
			i++
			continue
		}
		marker := rs[len(rs)-1]
		rest := rs[:len(rs)-1]

		ts := []rune(out[target])
		cut := textutil.ConsumeIndent(ts, 0)
		out[target] = string(ts[:cut]) + string(marker) + string(ts[cut:])

		if textutil.Trim(string(rest)) == "" {
			out = append(out[:i], out[i+1:]...)
			continue
		}
		out[i] = string(rest)
		i++
	}
	return out
}
