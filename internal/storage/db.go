package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	d := &DB{connection: db}
	if err := d.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return d, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

func (db *DB) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS screening_runs (
			id BIGSERIAL PRIMARY KEY,
			run_uuid TEXT NOT NULL UNIQUE,
			file_count INT NOT NULL,
			fake_count INT NOT NULL,
			genuine_count INT NOT NULL,
			started_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS screening_results (
			id BIGSERIAL PRIMARY KEY,
			run_id BIGINT NOT NULL REFERENCES screening_runs(id),
			filename TEXT NOT NULL,
			verdict TEXT NOT NULL,
			matched_company TEXT NOT NULL DEFAULT '',
			matched_line TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.connection.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun records one screening batch and returns its row id.
func (db *DB) SaveRun(ctx context.Context, runUUID string, fileCount, fakeCount, genuineCount int) (int64, error) {
	var runID int64
	query := `
		INSERT INTO screening_runs (run_uuid, file_count, fake_count, genuine_count, started_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`
	err := db.connection.QueryRowContext(ctx, query,
		runUUID, fileCount, fakeCount, genuineCount,
	).Scan(&runID)

	return runID, err
}

// SaveResult records one document's classification within a run.
func (db *DB) SaveResult(ctx context.Context, runID int64, filename, verdict, matchedCompany, matchedLine string) error {
	query := `
		INSERT INTO screening_results (run_id, filename, verdict, matched_company, matched_line)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := db.connection.ExecContext(ctx, query, runID, filename, verdict, matchedCompany, matchedLine)
	return err
}

// RecentResults returns the latest recorded classifications, newest first.
func (db *DB) RecentResults(ctx context.Context, limit int) ([]*ResultRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, run_id, filename, verdict, matched_company, matched_line, created_at
		FROM screening_results
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := db.connection.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*ResultRecord
	for rows.Next() {
		r := &ResultRecord{}
		if err := rows.Scan(&r.ID, &r.RunID, &r.Filename, &r.Verdict,
			&r.MatchedCompany, &r.MatchedLine, &r.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, rows.Err()
}
