package langstat

import "testing"

func TestAnalyzeChapterGrouping(t *testing.T) {
	a := NewAnalyzer()
	lines := []string{
		"　　引子段落。",
		"",
		"第一章 中文",
		"",
		"　　他们在长安城里住了三年，日子过得平静。",
		"　　后来战事一起，一切都变了。",
		"",
		"",
		"第二章 English",
		"",
		"　　The letter arrived on a quiet morning in late October.",
	}
	stats := a.Analyze(lines)
	if len(stats) != 3 {
		t.Fatalf("Analyze() = %d chapters, want 3 (preamble + 2)", len(stats))
	}

	preamble := stats[0]
	if preamble.Title != "" || preamble.Paragraphs != 1 {
		t.Errorf("preamble = %+v, want empty title and 1 paragraph", preamble)
	}

	first := stats[1]
	if first.Title != "第一章 中文" || first.Line != 3 {
		t.Errorf("chapter 1 = %+v, want title 第一章 中文 at line 3", first)
	}
	if first.Paragraphs != 2 {
		t.Errorf("chapter 1 paragraphs = %d, want 2", first.Paragraphs)
	}
	if first.Language != "Chinese" {
		t.Errorf("chapter 1 language = %q, want Chinese", first.Language)
	}

	second := stats[2]
	if second.Language != "English" {
		t.Errorf("chapter 2 language = %q, want English", second.Language)
	}
	if second.Confidence <= 0 {
		t.Errorf("chapter 2 confidence = %f, want > 0", second.Confidence)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	a := NewAnalyzer()
	if stats := a.Analyze(nil); len(stats) != 0 {
		t.Fatalf("Analyze(nil) = %v, want none", stats)
	}
}

func TestAnalyzeTitleOnlyChapter(t *testing.T) {
	a := NewAnalyzer()
	stats := a.Analyze([]string{"第一章"})
	if len(stats) != 1 {
		t.Fatalf("Analyze() = %d chapters, want 1", len(stats))
	}
	if stats[0].Paragraphs != 0 || stats[0].Language != "" {
		t.Errorf("empty chapter = %+v, want zero paragraphs and no language", stats[0])
	}
}
