package defs

// DifficultyDefinition описывает рост сложности во времени.
type DifficultyDefinition struct {
	WaveDurationMs  float64 `json:"wave_duration_ms"` // длительность одной «волны» (уровня сложности)
	BaseSpawnMs     float64 `json:"base_spawn_ms"`    // интервал спавна до вычета за волны
	SpawnStepMs     float64 `json:"spawn_step_ms"`    // на сколько волна ускоряет спавн
	MinSpawnMs      float64 `json:"min_spawn_ms"`     // жёсткий нижний предел
	EarlyPhaseMs    float64 `json:"early_phase_ms"`   // щадящее начало
	EarlyMultiplier float64 `json:"early_multiplier"` // множитель интервала в начале
	BossLevel       int     `json:"boss_level"`       // с какого уровня игрока появляются боссы
	BossEvery       int     `json:"boss_every"`       // +1 босс каждые N уровней
	BossCooldownMs  float64 `json:"boss_cooldown_ms"` // пауза между попытками спавна босса
}
