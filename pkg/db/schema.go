package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Runs table: one row per formatting run
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL,
    command TEXT NOT NULL,              -- format, check
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    input_bytes INTEGER DEFAULT 0,
    output_lines INTEGER DEFAULT 0,
    quote_issue_count INTEGER DEFAULT 0,
    punct_issue_count INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_path ON runs(path);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);

-- Issues table: findings recorded for a run
CREATE TABLE IF NOT EXISTS issues (
    issue_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    line INTEGER NOT NULL,
    kind TEXT NOT NULL,                 -- invalid_ending, invalid_start, extra_close, mismatch, unclosed
    note TEXT,
    chapter_title TEXT,                 -- set for quote issues only
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_issues_run ON issues(run_id);
CREATE INDEX IF NOT EXISTS idx_issues_kind ON issues(kind);
`
