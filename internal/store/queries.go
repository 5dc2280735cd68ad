package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blackwell-systems/optdeps/internal/optdeps"
)

// SaveRun stores run and its reports in one transaction and returns the
// new run ID. run.ID is set on success. A zero CreatedAt is set to now.
func (s *Store) SaveRun(run *Run, reports []optdeps.Report) (int64, error) {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		INSERT INTO runs (created_at, only_explicit, include_installed, package_count, reported_count, entry_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		run.Options.OnlyExplicit,
		run.Options.IncludeInstalled,
		run.Packages,
		run.Reported,
		run.Entries,
	)
	if err != nil {
		return 0, wrapErr(err, "failed to insert run")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO run_entries (run_id, position, report_index, package, text, installed)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare entry insert: %w", err)
	}
	defer stmt.Close()

	position := 0
	for i, report := range reports {
		for _, entry := range report.Entries {
			if _, err := stmt.Exec(id, position, i, report.Package, entry.Text, entry.Installed); err != nil {
				return 0, fmt.Errorf("failed to insert entry for %s: %w", report.Package, err)
			}
			position++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	run.ID = id
	return id, nil
}

// ListRuns returns recorded runs, newest first. A limit of zero or less
// returns all of them.
func (s *Store) ListRuns(limit int) ([]*Run, error) {
	query := `
		SELECT id, created_at, only_explicit, include_installed, package_count, reported_count, entry_count
		FROM runs
		ORDER BY id DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, wrapErr(err, "failed to list runs")
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

// GetRun returns a run and its reports, in the order they were recorded.
func (s *Store) GetRun(id int64) (*Run, []optdeps.Report, error) {
	row := s.db.QueryRow(`
		SELECT id, created_at, only_explicit, include_installed, package_count, reported_count, entry_count
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("run %d: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.db.Query(`
		SELECT report_index, package, text, installed
		FROM run_entries
		WHERE run_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, nil, wrapErr(err, "failed to get entries for run %d", id)
	}
	defer rows.Close()

	// Entries are grouped by report index, not package name, so two
	// reports for the same package stay separate.
	var reports []optdeps.Report
	lastIndex := -1
	for rows.Next() {
		var index int
		var pkg string
		var entry optdeps.Entry
		if err := rows.Scan(&index, &pkg, &entry.Text, &entry.Installed); err != nil {
			return nil, nil, fmt.Errorf("failed to scan entry row: %w", err)
		}

		if len(reports) > 0 && index == lastIndex {
			reports[len(reports)-1].Entries = append(reports[len(reports)-1].Entries, entry)
			continue
		}
		reports = append(reports, optdeps.Report{Package: pkg, Entries: []optdeps.Entry{entry}})
		lastIndex = index
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return run, reports, nil
}

// DeleteRun removes a run and its entries.
func (s *Store) DeleteRun(id int64) error {
	result, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return wrapErr(err, "failed to delete run %d", id)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %d: %w", id, ErrRunNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var createdAt string

	err := row.Scan(
		&run.ID,
		&createdAt,
		&run.Options.OnlyExplicit,
		&run.Options.IncludeInstalled,
		&run.Packages,
		&run.Reported,
		&run.Entries,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, wrapErr(err, "failed to scan run row")
	}

	run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at for run %d: %w", run.ID, err)
	}

	return &run, nil
}
