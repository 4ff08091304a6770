package app

import (
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/event"
)

// SessionStats: счётчики для экрана окончания игры
type SessionStats struct {
	Kills         int
	BossKills     int
	BossesSpawned int
	GemsCollected int
}

// GameEventListener считает события текущей сессии.
type GameEventListener struct {
	SessionStats
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		l.Kills++
		if data, ok := e.Data.(event.EnemyKilledData); ok && data.Tier == defs.TierBoss {
			l.BossKills++
		}
	case event.BossSpawned:
		l.BossesSpawned++
	case event.GemCollected:
		l.GemsCollected++
	}
}

func (l *GameEventListener) reset() {
	l.SessionStats = SessionStats{}
}
