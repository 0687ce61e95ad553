package paragraph

import (
	"strings"

	"github.com/qduan/novelfmt/pkg/textutil"
)

type punctPair struct {
	ascii rune
	full  rune
}

// punctPairs maps each member of a punctuation pair to the pair itself,
// keyed by both spellings so either form in the input selects the
// contextually right one.

var punctPairs = buildPunctPairs()

func buildPunctPairs() map[rune]punctPair {
	pairs := []punctPair{
		{',', '，'},
		{'.', '。'},
		{'?', '？'},
		{'!', '！'},
		{':', '：'},
		{';', '；'},
		{'~', '～'},
		{'(', '（'},
		{')', '）'},
		{'[', '［'},
		{']', '］'},
		{'{', '｛'},
		{'}', '｝'},
	}
	m := make(map[rune]punctPair, len(pairs)*2)
	for _, p := range pairs {
		m[p.ascii] = p
		m[p.full] = p
	}
	return m
}

// foldFullwidth maps full-width Latin letters and digits to their ASCII
// equivalents. Full-width punctuation is left for the pair table.
func foldFullwidth(r rune) rune {
	switch {
	case r >= '０' && r <= '９',
		r >= 'Ａ' && r <= 'Ｚ',
		r >= 'ａ' && r <= 'ｚ':
		return r - 0xFEE0
	}
	return r
}

// normalizeLine applies the per-line rewrite rules, in order: whitespace
// collapse, full-width letter/digit folding, context-sensitive
// punctuation selection.
func normalizeLine(line string) string {
	rs := collapseWhitespace([]rune(line))
	for i, r := range rs {
		rs[i] = foldFullwidth(r)
	}
	return normalizePunct(rs)
}

// collapseWhitespace removes every run of ASCII space/tab or full-width
// space, except a run strictly between two ASCII word characters, which
// becomes a single ASCII space.
func collapseWhitespace(rs []rune) []rune {
	out := make([]rune, 0, len(rs))
	for i := 0; i < len(rs); {
		if !textutil.IsIndent(rs[i]) {
			out = append(out, rs[i])
			i++
			continue
		}
		j := i
		for j < len(rs) && textutil.IsIndent(rs[j]) {
			j++
		}
		if len(out) > 0 && j < len(rs) &&
			textutil.IsASCIIWord(out[len(out)-1]) && textutil.IsASCIIWord(rs[j]) {
			out = append(out, ' ')
		}
		i = j
	}
	return out
}

// normalizePunct chooses the ASCII or full-width form of each paired
// punctuation rune: ASCII when the nearest preceding non-space rune was
// an ASCII word character, full-width otherwise. The word state resets
// after punctuation and survives spaces.
func normalizePunct(rs []rune) string {
	var b strings.Builder
	prevWord := false
	for _, r := range rs {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		if p, ok := punctPairs[r]; ok {
			if prevWord {
				b.WriteRune(p.ascii)
			} else {
				b.WriteRune(p.full)
			}
			prevWord = false
			continue
		}
		b.WriteRune(r)
		prevWord = textutil.IsASCIIWord(r)
	}
	return b.String()
}
