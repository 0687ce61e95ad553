// Package langstat produces a per-chapter census of a normalized
// document: paragraph counts and the dominant language of the prose.
// Serialized novels in this domain mix Chinese narration with English
// names and phrases, so the split is worth surfacing.
package langstat

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/qduan/novelfmt/pkg/chapter"
	"github.com/qduan/novelfmt/pkg/textutil"
)

// ChapterStat summarizes one chapter of a normalized document.
type ChapterStat struct {
	Title      string  `json:"title" yaml:"title"`
	Line       int     `json:"line" yaml:"line"` // 1-based title line
	Paragraphs int     `json:"paragraphs" yaml:"paragraphs"`
	Language   string  `json:"language" yaml:"language"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Analyzer detects chapter languages. Building the underlying detector
// loads language models, so callers should reuse one Analyzer.
type Analyzer struct {
	detector lingua.LanguageDetector
}

// NewAnalyzer builds an Analyzer restricted to the two languages this
// domain mixes.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.Chinese, lingua.English).
			Build(),
	}
}

// Analyze walks normalized lines and returns one entry per chapter.
// Lines before the first title are reported under an empty title.
func (a *Analyzer) Analyze(lines []string) []ChapterStat {
	var stats []ChapterStat
	var cur *ChapterStat
	var body strings.Builder

	flush := func() {
		if cur == nil {
			return
		}
		text := body.String()
		if text != "" {
			if lang, ok := a.detector.DetectLanguageOf(text); ok {
				cur.Language = lang.String()
				cur.Confidence = a.detector.ComputeLanguageConfidence(text, lang)
			}
		}
		stats = append(stats, *cur)
		cur = nil
		body.Reset()
	}

	for i, line := range lines {
		if chapter.IsTitle(line) {
			flush()
			cur = &ChapterStat{Title: line, Line: i + 1}
			continue
		}
		if textutil.Trim(line) == "" {
			continue
		}
		if cur == nil {
			cur = &ChapterStat{Line: 1}
		}
		cur.Paragraphs++
		body.WriteString(line)
		body.WriteByte('\n')
	}
	flush()
	return stats
}
