package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/qduan/novelfmt/models"
)

// Run is one recorded formatting run.
type Run struct {
	RunID           int64
	Path            string
	Command         string
	CreatedAt       time.Time
	InputBytes      int64
	OutputLines     int
	QuoteIssueCount int
	PunctIssueCount int
}

// RecordedIssue is a finding stored for a run. ChapterTitle is empty for
// punctuation findings.
type RecordedIssue struct {
	Line         int
	Kind         string
	Note         string
	ChapterTitle string
}

// InsertRun records a run and returns its run_id.
func (db *DB) InsertRun(path, command string, inputBytes int64, outputLines, quoteIssues, punctIssues int) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (path, command, input_bytes, output_lines, quote_issue_count, punct_issue_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`, path, command, inputBytes, outputLines, quoteIssues, punctIssues)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}
	return runID, nil
}

// InsertIssues stores a run's findings in one transaction.
func (db *DB) InsertIssues(runID int64, quote []models.ChapterIssue, punct []models.Issue) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO issues (run_id, line, kind, note, chapter_title)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, ci := range quote {
		if _, err := stmt.Exec(runID, ci.Issue.Line, string(ci.Issue.Kind), ci.Issue.Note, ci.Title); err != nil {
			return fmt.Errorf("failed to insert quote issue: %w", err)
		}
	}
	for _, is := range punct {
		if _, err := stmt.Exec(runID, is.Line, string(is.Kind), is.Note, ""); err != nil {
			return fmt.Errorf("failed to insert punctuation issue: %w", err)
		}
	}
	return tx.Commit()
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT run_id, path, command, created_at, input_bytes, output_lines,
		       quote_issue_count, punct_issue_count
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.Path, &r.Command, &r.CreatedAt, &r.InputBytes,
			&r.OutputLines, &r.QuoteIssueCount, &r.PunctIssueCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun returns a single run by id.
func (db *DB) GetRun(runID int64) (*Run, error) {
	var r Run
	err := db.QueryRow(`
		SELECT run_id, path, command, created_at, input_bytes, output_lines,
		       quote_issue_count, punct_issue_count
		FROM runs WHERE run_id = ?
	`, runID).Scan(&r.RunID, &r.Path, &r.Command, &r.CreatedAt, &r.InputBytes,
		&r.OutputLines, &r.QuoteIssueCount, &r.PunctIssueCount)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}

// GetRunIssues returns a run's findings in line order.
func (db *DB) GetRunIssues(runID int64) ([]RecordedIssue, error) {
	rows, err := db.Query(`
		SELECT line, kind, note, chapter_title
		FROM issues WHERE run_id = ?
		ORDER BY line, issue_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get issues: %w", err)
	}
	defer rows.Close()

	var issues []RecordedIssue
	for rows.Next() {
		var is RecordedIssue
		if err := rows.Scan(&is.Line, &is.Kind, &is.Note, &is.ChapterTitle); err != nil {
			return nil, fmt.Errorf("failed to scan issue: %w", err)
		}
		issues = append(issues, is)
	}
	return issues, rows.Err()
}
