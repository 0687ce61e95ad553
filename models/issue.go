package models

// IssueKind names a validation finding. Findings are collected and
// reported, never fatal.
type IssueKind string

const (
	KindInvalidEnding IssueKind = "invalid_ending"
	KindInvalidStart  IssueKind = "invalid_start"
	KindExtraClose    IssueKind = "extra_close"
	KindMismatch      IssueKind = "mismatch"
	KindUnclosed      IssueKind = "unclosed"
)

// Issue is a single finding at a 1-based output line number.
type Issue struct {
	Line int       `json:"line" yaml:"line"`
	Kind IssueKind `json:"kind" yaml:"kind"`
	Note string    `json:"note" yaml:"note"`
}

// ChapterIssue reports the first quote-pairing anomaly found in a
// chapter. TitleLine is the 1-based line number of the chapter title.
type ChapterIssue struct {
	TitleLine int    `json:"title_line" yaml:"title_line"`
	Title     string `json:"title" yaml:"title"`
	Issue     Issue  `json:"issue" yaml:"issue"`
}
