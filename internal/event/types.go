// internal/event/types.go
package event

import (
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/types"
)

const (
	GameStarted    EventType = "GameStarted"
	GameOver       EventType = "GameOver"       // HP игрока дошло до нуля
	EnemyKilled    EventType = "EnemyKilled"    // Враг уничтожен
	EnemyHit       EventType = "EnemyHit"       // Попадание без убийства
	PlayerDamaged  EventType = "PlayerDamaged"  // Контакт с врагом
	WeaponFired    EventType = "WeaponFired"    // Выстрел или импульс
	Explosion      EventType = "Explosion"      // Детонация ракеты
	GemCollected   EventType = "GemCollected"   // Кристалл подобран
	LevelUp        EventType = "LevelUp"        // Новый уровень
	WeaponUnlocked EventType = "WeaponUnlocked" // Открыт новый слот
	WeaponUpgraded EventType = "WeaponUpgraded" // Случайное улучшение
	BossSpawned    EventType = "BossSpawned"
	FeverStarted   EventType = "FeverStarted"
	FeverEnded     EventType = "FeverEnded"
)

// EnemyKilledData: данные события EnemyKilled
type EnemyKilledData struct {
	ID    types.EntityID
	Tier  defs.Tier
	X, Y  float64
	Score int
}

// PlayerDamagedData: данные события PlayerDamaged
type PlayerDamagedData struct {
	Amount int
	HP     int
}

// WeaponData: данные событий WeaponFired, WeaponUnlocked и WeaponUpgraded
type WeaponData struct {
	Kind  defs.WeaponKind
	Level int
}

// ExplosionData: данные события Explosion
type ExplosionData struct {
	X, Y, Radius float64
	Hits         int
}

// LevelUpData: данные события LevelUp
type LevelUpData struct {
	Level int
}

// GameOverData: итог сессии
type GameOverData struct {
	Score     int
	ElapsedMs float64
	Level     int
}
