package interfaces

import "time"

//go:generate go tool mockgen -destination=./mocks/leaderboard_mock.go -package=mocks . Leaderboard

// ScoreEntry: одна запись таблицы рекордов
type ScoreEntry struct {
	ID        string
	Score     int
	TimeMs    float64
	CreatedAt time.Time
}

// Leaderboard хранит лучшие результаты. Ошибки хранилища не выходят наружу.
type Leaderboard interface {
	Load() []ScoreEntry
	Add(score int, timeMs float64)
}
