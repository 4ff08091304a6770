package audio

import (
	"time"

	"platanus-survivor/internal/event"
)

// Tone: один короткий сигнал прямоугольной волны
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Cues: какие события озвучиваются и чем
var Cues = map[event.EventType]Tone{
	event.GameStarted:    {Freq: 440, Duration: 100 * time.Millisecond},
	event.WeaponFired:    {Freq: 1760, Duration: 15 * time.Millisecond},
	event.GemCollected:   {Freq: 1175, Duration: 30 * time.Millisecond},
	event.EnemyKilled:    {Freq: 660, Duration: 50 * time.Millisecond},
	event.LevelUp:        {Freq: 880, Duration: 200 * time.Millisecond},
	event.Explosion:      {Freq: 150, Duration: 200 * time.Millisecond},
	event.PlayerDamaged:  {Freq: 220, Duration: 100 * time.Millisecond},
	event.GameOver:       {Freq: 220, Duration: 500 * time.Millisecond},
	event.WeaponUnlocked: {Freq: 990, Duration: 250 * time.Millisecond},
	event.BossSpawned:    {Freq: 110, Duration: 400 * time.Millisecond},
	event.FeverStarted:   {Freq: 1320, Duration: 150 * time.Millisecond},
}

// CueFor возвращает тон события
func CueFor(t event.EventType) (Tone, bool) {
	tone, ok := Cues[t]
	return tone, ok
}

// CueEvents: все озвучиваемые типы событий, для подписки
func CueEvents() []event.EventType {
	types := make([]event.EventType, 0, len(Cues))
	for t := range Cues {
		types = append(types, t)
	}
	return types
}
