// internal/storage/sqlite.go
package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"platanus-survivor/internal/interfaces"
)

// DB wraps the SQLite connection that stores the leaderboard
type DB struct {
	conn   *sql.DB
	limit  int
	logger *slog.Logger
	now    func() time.Time
}

// OpenDB opens (or creates) the leaderboard database.
// limit is how many best runs are kept.
func OpenDB(path string, limit int, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open leaderboard db: %w", err)
	}
	// Один писатель, запись, только в конце сессии
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable wal: %w", err)
	}

	db := &DB{conn: conn, limit: limit, logger: logger, now: time.Now}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scores (
		id TEXT PRIMARY KEY,
		score INTEGER NOT NULL,
		time_ms REAL NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scores_score ON scores(score DESC, created_at ASC);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("migrate leaderboard: %w", err)
	}
	return nil
}

// Load returns the best runs, highest score first. Errors are logged and yield nil.
func (db *DB) Load() []interfaces.ScoreEntry {
	rows, err := db.conn.Query(
		"SELECT id, score, time_ms, created_at FROM scores ORDER BY score DESC, created_at ASC LIMIT ?",
		db.limit,
	)
	if err != nil {
		db.logger.Warn("leaderboard load failed", "err", err)
		return nil
	}
	defer rows.Close()

	var entries []interfaces.ScoreEntry
	for rows.Next() {
		var e interfaces.ScoreEntry
		var created int64
		if err := rows.Scan(&e.ID, &e.Score, &e.TimeMs, &created); err != nil {
			db.logger.Warn("leaderboard row skipped", "err", err)
			continue
		}
		e.CreatedAt = time.Unix(0, created)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		db.logger.Warn("leaderboard load interrupted", "err", err)
	}
	return entries
}

// Add records a finished run and drops everything below the top limit.
func (db *DB) Add(score int, timeMs float64) {
	id := uuid.NewString()
	tx, err := db.conn.Begin()
	if err != nil {
		db.logger.Warn("leaderboard add failed", "err", err)
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO scores (id, score, time_ms, created_at) VALUES (?, ?, ?, ?)",
		id, score, timeMs, db.now().UnixNano(),
	); err != nil {
		db.logger.Warn("leaderboard insert failed", "err", err)
		return
	}
	if _, err := tx.Exec(
		`DELETE FROM scores WHERE id NOT IN (
			SELECT id FROM scores ORDER BY score DESC, created_at ASC LIMIT ?
		)`,
		db.limit,
	); err != nil {
		db.logger.Warn("leaderboard prune failed", "err", err)
		return
	}
	if err := tx.Commit(); err != nil {
		db.logger.Warn("leaderboard commit failed", "err", err)
		return
	}
	db.logger.Debug("leaderboard entry stored", "id", id, "score", score, "time_ms", timeMs)
}
