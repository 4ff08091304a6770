package system

import (
	"math"

	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/entity"
)

// DifficultySystem пересчитывает уровень волны и интервал спавна в конце тика.
type DifficultySystem struct {
	world *entity.World
	def   defs.DifficultyDefinition
}

func NewDifficultySystem(world *entity.World, balance *defs.Balance) *DifficultySystem {
	return &DifficultySystem{world: world, def: balance.Difficulty}
}

func (s *DifficultySystem) Update() {
	d := &s.world.Difficulty
	d.WaveLevel = WaveLevel(s.def, d.ElapsedMs)
	d.SpawnIntervalMs = SpawnInterval(s.def, d.WaveLevel, d.ElapsedMs)
}

// WaveLevel = 1 + floor(elapsed / длительность волны)
func WaveLevel(def defs.DifficultyDefinition, elapsedMs float64) int {
	if elapsedMs <= 0 || def.WaveDurationMs <= 0 {
		return 1
	}
	return 1 + int(math.Floor(elapsedMs/def.WaveDurationMs))
}

// SpawnInterval: интервал спавна, не возрастает со временем и не падает ниже предела
func SpawnInterval(def defs.DifficultyDefinition, wave int, elapsedMs float64) float64 {
	interval := math.Max(def.MinSpawnMs, def.BaseSpawnMs-float64(wave)*def.SpawnStepMs)
	if elapsedMs < def.EarlyPhaseMs && def.EarlyMultiplier > 1 {
		interval *= def.EarlyMultiplier
	}
	return interval
}
