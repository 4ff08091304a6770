// internal/system/wave.go
package system

import (
	"log/slog"
	"math"

	"platanus-survivor/internal/component"
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/entity"
	"platanus-survivor/internal/event"
	"platanus-survivor/internal/utils"
)

// WaveSystem спавнит обычных врагов по таймеру и боссов по своему графику.
type WaveSystem struct {
	world           *entity.World
	balance         *defs.Balance
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewWaveSystem(world *entity.World, balance *defs.Balance, dispatcher *event.Dispatcher, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{world: world, balance: balance, eventDispatcher: dispatcher, rng: rng}
}

func (s *WaveSystem) Update(deltaTime float64) {
	d := &s.world.Difficulty
	d.SpawnTimer += deltaTime
	if d.SpawnTimer >= d.SpawnIntervalMs {
		d.SpawnTimer = 0
		s.SpawnEnemy(s.chooseTier())
	}
	s.updateBossCadence(deltaTime)
}

func (s *WaveSystem) chooseTier() defs.Tier {
	return s.rng.ChooseWeighted(s.balance.SpawnTable(s.world.Player.Level))
}

// MaxBosses: сколько боссов может жить одновременно на уровне игрока
func MaxBosses(d defs.DifficultyDefinition, level int) int {
	if level < d.BossLevel || d.BossEvery <= 0 {
		return 0
	}
	return 1 + (level-d.BossLevel)/d.BossEvery
}

func (s *WaveSystem) updateBossCadence(deltaTime float64) {
	d := &s.world.Difficulty
	if d.BossCooldown > 0 {
		d.BossCooldown -= deltaTime
		return
	}
	limit := MaxBosses(s.balance.Difficulty, s.world.Player.Level)
	if limit == 0 {
		return
	}
	// Попытка взводит паузу независимо от исхода
	d.BossCooldown = s.balance.Difficulty.BossCooldownMs
	if s.world.CountBosses() >= limit {
		return
	}
	boss := s.SpawnEnemy(defs.TierBoss)
	slog.Debug("boss spawned", "id", boss.ID, "level", s.world.Player.Level, "limit", limit)
	s.eventDispatcher.Emit(event.BossSpawned, nil)
}

// SpawnEnemy создаёт врага тира за случайным краем поля
func (s *WaveSystem) SpawnEnemy(tier defs.Tier) *component.Enemy {
	def := s.balance.Tiers[tier]
	f := s.balance.Field
	var pos component.Position
	switch s.rng.Intn(4) {
	case 0: // слева
		pos = component.Position{X: -def.Size, Y: s.rng.Float64() * f.Height}
	case 1: // справа
		pos = component.Position{X: f.Width + def.Size, Y: s.rng.Float64() * f.Height}
	case 2: // сверху
		pos = component.Position{X: s.rng.Float64() * f.Width, Y: -def.Size}
	default: // снизу
		pos = component.Position{X: s.rng.Float64() * f.Width, Y: f.Height + def.Size}
	}
	return s.SpawnEnemyAt(tier, pos)
}

// SpawnEnemyAt создаёт врага тира в заданной точке со статами текущей волны
func (s *WaveSystem) SpawnEnemyAt(tier defs.Tier, pos component.Position) *component.Enemy {
	def := s.balance.Tiers[tier]
	wave := s.world.Difficulty.WaveLevel
	hp := ScaledHP(def, wave)
	return s.world.AddEnemy(&component.Enemy{
		Tier:         tier,
		Position:     pos,
		Size:         def.Size,
		HitboxRadius: def.HitboxRadius,
		Speed:        ScaledSpeed(def, wave) * s.rng.Range(def.SpeedVarianceMin, def.SpeedVarianceMax),
		HP:           hp,
		MaxHP:        hp,
		ScoreValue:   def.ScoreValue,
		GemCount:     def.GemCount,
		GemValue:     def.GemValue,
	})
}

// ScaledSpeed: базовая скорость тира на волне, без случайного разброса
func ScaledSpeed(def defs.TierDefinition, wave int) float64 {
	bonus := def.SpeedPerWave * float64(wave-1)
	if bonus > def.MaxSpeedBonus {
		bonus = def.MaxSpeedBonus
	}
	return def.BaseSpeed + bonus
}

// ScaledHP: здоровье тира на волне. Множитель меньше 1 означает «без роста».
func ScaledHP(def defs.TierDefinition, wave int) int {
	mult := 1 + def.HPGrowthPerWave*float64(wave-1)
	if limit := math.Max(def.MaxHPMultiplier, 1); mult > limit {
		mult = limit
	}
	hp := int(math.Round(float64(def.BaseHP) * mult))
	if hp < 1 {
		hp = 1
	}
	return hp
}
