package storage

import (
	"io"
	"log/slog"

	"platanus-survivor/internal/interfaces"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenLeaderboard открывает SQLite-таблицу по пути, при ошибке, таблицу в памяти.
// Пустой путь сразу даёт таблицу в памяти.
func OpenLeaderboard(path string, limit int, logger *slog.Logger) (interfaces.Leaderboard, io.Closer) {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		return NewMemory(limit), nopCloser{}
	}
	db, err := OpenDB(path, limit, logger)
	if err != nil {
		logger.Warn("leaderboard db unavailable, scores kept in memory", "path", path, "err", err)
		return NewMemory(limit), nopCloser{}
	}
	return db, db
}
