package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"platanus-survivor/internal/interfaces"
)

// Memory: таблица рекордов без диска. Запасной вариант, когда БД недоступна.
type Memory struct {
	mu      sync.Mutex
	limit   int
	entries []interfaces.ScoreEntry
}

func NewMemory(limit int) *Memory {
	return &Memory{limit: limit}
}

func (m *Memory) Load() []interfaces.ScoreEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]interfaces.ScoreEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *Memory) Add(score int, timeMs float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, interfaces.ScoreEntry{
		ID:        uuid.NewString(),
		Score:     score,
		TimeMs:    timeMs,
		CreatedAt: time.Now(),
	})
	// Стабильная сортировка: при равенстве выше более ранний результат
	sort.SliceStable(m.entries, func(i, j int) bool {
		return m.entries[i].Score > m.entries[j].Score
	})
	if m.limit > 0 && len(m.entries) > m.limit {
		m.entries = m.entries[:m.limit]
	}
}
