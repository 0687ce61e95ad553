package report

import (
	"testing"

	"github.com/qduan/novelfmt/models"
)

func TestRenderQuoteIssues(t *testing.T) {
	issues := []models.ChapterIssue{
		{
			TitleLine: 12,
			Title:     "第三章 夜谈",
			Issue: models.Issue{
				Line: 48,
				Kind: models.KindMismatch,
				Note: "closing 』 does not match open 「",
			},
		},
	}
	want := "- Chapter at line 12: 第三章 夜谈\n" +
		"  First issue at line 48 (mismatch): closing 』 does not match open 「\n"
	if got := RenderQuoteIssues(issues); got != want {
		t.Errorf("RenderQuoteIssues() = %q, want %q", got, want)
	}
	if got := RenderQuoteIssues(nil); got != "" {
		t.Errorf("RenderQuoteIssues(nil) = %q, want empty", got)
	}
}

func TestRenderPunctIssues(t *testing.T) {
	issues := []models.Issue{
		{Line: 73, Kind: models.KindInvalidStart, Note: "paragraph starts with '，'"},
		{Line: 80, Kind: models.KindInvalidEnding, Note: "paragraph ends with '门'"},
	}
	want := "- Line 73 (invalid_start): paragraph starts with '，'\n" +
		"- Line 80 (invalid_ending): paragraph ends with '门'\n"
	if got := RenderPunctIssues(issues); got != want {
		t.Errorf("RenderPunctIssues() = %q, want %q", got, want)
	}
}

func TestRenderOrdersQuoteBeforePunct(t *testing.T) {
	quote := []models.ChapterIssue{
		{TitleLine: 1, Title: "第一章", Issue: models.Issue{Line: 2, Kind: models.KindUnclosed, Note: "n"}},
	}
	punct := []models.Issue{
		{Line: 5, Kind: models.KindInvalidEnding, Note: "m"},
	}
	want := "- Chapter at line 1: 第一章\n" +
		"  First issue at line 2 (unclosed): n\n" +
		"- Line 5 (invalid_ending): m\n"
	if got := Render(quote, punct); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if got := Render(nil, nil); got != "" {
		t.Errorf("Render(nil, nil) = %q, want empty", got)
	}
}
