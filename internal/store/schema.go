package store

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TEXT NOT NULL,
    only_explicit BOOLEAN NOT NULL,
    include_installed BOOLEAN NOT NULL,
    package_count INTEGER NOT NULL,
    reported_count INTEGER NOT NULL,
    entry_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS run_entries (
    run_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    report_index INTEGER NOT NULL,
    package TEXT NOT NULL,
    text TEXT NOT NULL,
    installed BOOLEAN NOT NULL,
    PRIMARY KEY (run_id, position),
    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
