// internal/app/game.go
package app

import (
	"log/slog"

	"platanus-survivor/internal/component"
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/entity"
	"platanus-survivor/internal/event"
	"platanus-survivor/internal/interfaces"
	"platanus-survivor/internal/system"
	"platanus-survivor/internal/utils"
)

// Options: зависимости сессии. Nil-поля заменяются значениями по умолчанию.
type Options struct {
	Balance         *defs.Balance
	Input           interfaces.InputSource
	Leaderboard     interfaces.Leaderboard
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
}

// Game holds the session state and runs the per-tick pipeline.
type Game struct {
	World           *entity.World
	Balance         *defs.Balance
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	PlayerSystem       *system.PlayerSystem
	CombatSystem       *system.CombatSystem
	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	ProjectileSystem   *system.ProjectileSystem
	VisualEffectSystem *system.VisualEffectSystem
	GemSystem          *system.GemSystem
	ProgressionSystem  *system.ProgressionSystem
	CollisionSystem    *system.CollisionSystem
	DifficultySystem   *system.DifficultySystem
	DamageResolver     *system.DamageResolver

	leaderboard interfaces.Leaderboard
	stats       *GameEventListener
}

// NewGame initializes a new session.
func NewGame(opts Options) *Game {
	balance := opts.Balance
	if balance == nil {
		balance = defs.DefaultBalance()
	}
	dispatcher := opts.EventDispatcher
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	rng := opts.Rng
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}

	world := entity.NewWorld(balance)
	g := &Game{
		World:           world,
		Balance:         balance,
		EventDispatcher: dispatcher,
		Rng:             rng,
		leaderboard:     opts.Leaderboard,
	}

	g.VisualEffectSystem = system.NewVisualEffectSystem(world, balance, rng)
	g.DamageResolver = system.NewDamageResolver(world, balance, dispatcher, g.VisualEffectSystem, rng)
	g.PlayerSystem = system.NewPlayerSystem(world, balance, opts.Input)
	g.CombatSystem = system.NewCombatSystem(world, balance, dispatcher, g.DamageResolver, g.VisualEffectSystem)
	g.WaveSystem = system.NewWaveSystem(world, balance, dispatcher, rng)
	g.MovementSystem = system.NewMovementSystem(world, balance)
	g.ProjectileSystem = system.NewProjectileSystem(world, balance, g.DamageResolver, g.VisualEffectSystem)
	g.ProgressionSystem = system.NewProgressionSystem(world, balance, dispatcher, rng)
	g.GemSystem = system.NewGemSystem(world, balance, dispatcher, g.ProgressionSystem)
	g.CollisionSystem = system.NewCollisionSystem(world, balance, dispatcher)
	g.DifficultySystem = system.NewDifficultySystem(world, balance)
	g.DifficultySystem.Update()

	g.stats = &GameEventListener{}
	dispatcher.SubscribeAll(g.stats, event.EnemyKilled, event.BossSpawned, event.GemCollected)

	dispatcher.Emit(event.GameStarted, nil)
	return g
}

// Tick продвигает симуляцию на deltaTime мс. После GameOver мир заморожен.
func (g *Game) Tick(deltaTime float64) {
	if g.World.Phase != component.PhaseRunning || deltaTime <= 0 {
		return
	}
	g.World.Difficulty.ElapsedMs += deltaTime

	g.PlayerSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.WaveSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
	g.GemSystem.Update(deltaTime)
	if g.CollisionSystem.Update() {
		g.gameOver()
		return
	}
	g.DifficultySystem.Update()
}

// gameOver срабатывает один раз за сессию
func (g *Game) gameOver() {
	if g.World.Phase == component.PhaseGameOver {
		return
	}
	g.World.Phase = component.PhaseGameOver
	p := g.World.Player
	elapsed := g.World.Difficulty.ElapsedMs

	slog.Info("game over", "score", p.Score, "level", p.Level, "elapsed_ms", elapsed, "kills", g.stats.Kills)
	if g.leaderboard != nil {
		g.leaderboard.Add(p.Score, elapsed)
	}
	g.EventDispatcher.Emit(event.GameOver, event.GameOverData{Score: p.Score, ElapsedMs: elapsed, Level: p.Level})
}

// Reset начинает новую сессию с нуля. Подписчики диспетчера сохраняются.
func (g *Game) Reset() {
	g.World.Reset(g.Balance)
	g.DifficultySystem.Update()
	g.stats.reset()
	g.EventDispatcher.Emit(event.GameStarted, nil)
}

func (g *Game) Phase() component.Phase {
	return g.World.Phase
}

// Leaderboard: таблица рекордов; nil, если не подключена
func (g *Game) Leaderboard() interfaces.Leaderboard {
	return g.leaderboard
}

// Stats: счётчики текущей сессии
func (g *Game) Stats() SessionStats {
	return g.stats.SessionStats
}
