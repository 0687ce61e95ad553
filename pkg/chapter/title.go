// Package chapter recognizes chapter-title lines and enforces the
// blank-line conventions around them.
//
// Three title grammars are tried in order: the prologue prefix 序章, the
// extra-chapter prefix 番外, and the numbered form 第…章 where … is one
// or more ASCII digits or Chinese numerals. Matching works on decoded
// runes so multi-byte prefixes are never split.
package chapter

import (
	"github.com/qduan/novelfmt/pkg/textutil"
)

const (
	prologuePrefix = "序章"
	extraPrefix    = "番外"
	numberedOpen   = '第'
	numberedClose  = '章'
)

// chineseNumerals covers 0, 1–9, 10, 100, 1000 and 10000.
var chineseNumerals = map[rune]bool{
	'〇': true, '一': true, '二': true, '三': true, '四': true,
	'五': true, '六': true, '七': true, '八': true, '九': true,
	'十': true, '百': true, '千': true, '万': true,
}

func isNumeral(r rune) bool {
	return (r >= '0' && r <= '9') || chineseNumerals[r]
}

// SplitPrefix splits line into a title prefix and the remaining text.
// ok is false when line does not start with any of the three title
// grammars.
func SplitPrefix(line string) (prefix, rest string, ok bool) {
	rs := []rune(line)
	for _, p := range [...]string{prologuePrefix, extraPrefix} {
		pr := []rune(p)
		if len(rs) >= len(pr) && rs[0] == pr[0] && rs[1] == pr[1] {
			return p, string(rs[len(pr):]), true
		}
	}
	if len(rs) < 3 || rs[0] != numberedOpen {
		return "", "", false
	}
	i := 1
	for i < len(rs) && isNumeral(rs[i]) {
		i++
	}
	if i == 1 || i >= len(rs) || rs[i] != numberedClose {
		return "", "", false
	}
	return string(rs[:i+1]), string(rs[i+1:]), true
}

// IsTitle reports whether line is a chapter title.
func IsTitle(line string) bool {
	_, _, ok := SplitPrefix(line)
	return ok
}

// NormalizeTitle rewrites a title line so the prefix and the remaining
// text are joined by exactly one ASCII space. Leading whitespace and
// colons after the prefix are stripped, repeatedly, so noise like
// "第一章  ：  标题" collapses to "第一章 标题". Non-title lines are
// returned unchanged.
func NormalizeTitle(line string) string {
	prefix, rest, ok := SplitPrefix(line)
	if !ok {
		return line
	}
	for {
		before := rest
		rs := []rune(rest)
		rs = rs[textutil.ConsumeIndent(rs, 0):]
		if len(rs) > 0 && (rs[0] == ':' || rs[0] == '：') {
			rs = rs[1:]
		}
		rest = string(rs)
		if rest == before {
			break
		}
	}
	if rest == "" {
		return prefix
	}
	return prefix + " " + rest
}
