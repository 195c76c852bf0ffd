package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"connectivity-report/internal/models"
)

// DB wraps sql.DB with run persistence methods
type DB struct {
	*sql.DB
}

// New creates a new database connection
func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("database open failed: %w", err)
	}

	// Enable WAL mode for better concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	return &DB{db}, nil
}

// InitSchema creates all necessary tables
func (db *DB) InitSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS runs (
        id TEXT PRIMARY KEY,
        started_at DATETIME NOT NULL,
        finished_at DATETIME NOT NULL,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );

    CREATE TABLE IF NOT EXISTS target_results (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        run_id TEXT NOT NULL REFERENCES runs(id),
        position INTEGER NOT NULL,
        target TEXT NOT NULL,
        timestamp DATETIME NOT NULL,
        dns_resolved BOOLEAN NOT NULL,
        dns_address TEXT,
        ping_ok BOOLEAN NOT NULL,
        ping_error TEXT,
        packets_sent INTEGER,
        packets_received INTEGER,
        loss_pct INTEGER,
        min_ms REAL,
        avg_ms REAL,
        max_ms REAL
    );

    CREATE INDEX IF NOT EXISTS idx_target_results_run ON target_results(run_id, position);

    CREATE TABLE IF NOT EXISTS port_results (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        target_result_id INTEGER NOT NULL REFERENCES target_results(id),
        position INTEGER NOT NULL,
        port INTEGER NOT NULL,
        open BOOLEAN NOT NULL,
        latency_ms REAL
    );

    CREATE INDEX IF NOT EXISTS idx_port_results_target ON port_results(target_result_id, position);
    `

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("schema init failed: %w", err)
	}

	return nil
}

// SaveRun persists a complete run with all its target and port results.
func (db *DB) SaveRun(run *models.Run) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction failed: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, started_at, finished_at) VALUES (?, ?, ?)`,
		run.ID, run.StartedAt, run.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run failed: %w", err)
	}

	for i, result := range run.Results {
		res, err := tx.Exec(
			`INSERT INTO target_results
             (run_id, position, target, timestamp, dns_resolved, dns_address,
              ping_ok, ping_error, packets_sent, packets_received, loss_pct,
              min_ms, avg_ms, max_ms)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID, i, result.Target, result.Timestamp,
			result.DNS.Resolved, result.DNS.Address,
			result.PingOK, result.PingError,
			result.PingStats.Sent, result.PingStats.Received, result.PingStats.LossPct,
			result.PingStats.MinMs, result.PingStats.AvgMs, result.PingStats.MaxMs,
		)
		if err != nil {
			return fmt.Errorf("insert target result failed: %w", err)
		}

		targetID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id failed: %w", err)
		}

		for j, port := range result.Ports {
			_, err := tx.Exec(
				`INSERT INTO port_results (target_result_id, position, port, open, latency_ms)
                 VALUES (?, ?, ?, ?, ?)`,
				targetID, j, port.Port, port.Open, port.LatencyMs,
			)
			if err != nil {
				return fmt.Errorf("insert port result failed: %w", err)
			}
		}
	}

	return tx.Commit()
}
