package app_test

import (
	"math"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"platanus-survivor/internal/app"
	"platanus-survivor/internal/component"
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/event"
	"platanus-survivor/internal/interfaces"
	"platanus-survivor/internal/interfaces/mocks"
	"platanus-survivor/internal/utils"
)

// quietBalance: без спавна и боссов, чтобы сцену собирал сам тест
func quietBalance() *defs.Balance {
	b := defs.DefaultBalance()
	b.Difficulty.BaseSpawnMs = 1e12
	b.Difficulty.MinSpawnMs = 1e12
	b.Difficulty.BossLevel = 1 << 20
	return b
}

type maskInput uint8

func (m maskInput) IsDown(k interfaces.Key) bool { return m&(1<<uint(k)) != 0 }

type counter struct{ n int }

func (c *counter) OnEvent(event.Event) { c.n++ }

func TestLaserKillsEnemyEndToEnd(t *testing.T) {
	b := quietBalance()
	laser := b.Weapons[defs.WeaponLaser]
	laser.ProjectileSpeed = 600
	b.Weapons[defs.WeaponLaser] = laser

	g := app.NewGame(app.Options{Balance: b, Rng: utils.NewPRNGService(1)})
	p := g.World.Player.Position
	e := g.WaveSystem.SpawnEnemyAt(defs.TierNormal, component.Position{X: p.X - 200, Y: p.Y})
	e.Speed = 0
	e.HP = laser.Damage
	e.MaxHP = laser.Damage

	limit := math.Ceil(200.0 / 600 * 1000)
	elapsed := 0.0
	for len(g.World.Enemies) > 0 && elapsed < limit+16 {
		g.Tick(16)
		elapsed += 16
	}

	if len(g.World.Enemies) != 0 {
		t.Fatalf("enemy alive after %v ms", elapsed)
	}
	if elapsed > limit {
		t.Errorf("kill took %v ms, want within %v", elapsed, limit)
	}
	if g.World.Player.Score != b.Tiers[defs.TierNormal].ScoreValue {
		t.Errorf("score = %d", g.World.Player.Score)
	}
	if len(g.World.Gems) != 1 {
		t.Errorf("gems = %d, want 1", len(g.World.Gems))
	}
}

func TestGameOverFiresOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	board := mocks.NewMockLeaderboard(ctrl)
	board.EXPECT().Add(0, gomock.Any()).Times(1)

	b := quietBalance()
	b.Player.MaxHP = 5
	dispatcher := event.NewDispatcher()
	over := &counter{}
	dispatcher.Subscribe(event.GameOver, over)

	g := app.NewGame(app.Options{Balance: b, Leaderboard: board, EventDispatcher: dispatcher, Rng: utils.NewPRNGService(1)})
	p := g.World.Player.Position
	for i := 0; i < 3; i++ {
		e := g.WaveSystem.SpawnEnemyAt(defs.TierNormal, p)
		e.HP, e.Speed = 10000, 0
	}

	g.Tick(16)
	if g.Phase() != component.PhaseGameOver {
		t.Fatalf("phase = %s, want game over", g.Phase())
	}
	if g.World.Player.HP != 0 {
		t.Errorf("hp = %d, want 0", g.World.Player.HP)
	}

	frozen := g.World.Difficulty.ElapsedMs
	for i := 0; i < 10; i++ {
		g.Tick(16)
	}
	if g.World.Difficulty.ElapsedMs != frozen {
		t.Errorf("simulation advanced after game over")
	}
	if over.n != 1 {
		t.Errorf("GameOver dispatched %d times, want 1", over.n)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	b := defs.DefaultBalance()
	g := app.NewGame(app.Options{Balance: b, Input: maskInput(1 << uint(interfaces.KeyRight)), Rng: utils.NewPRNGService(7)})
	for i := 0; i < 2000; i++ {
		g.Tick(16)
	}
	if g.World.Difficulty.ElapsedMs == 0 {
		t.Fatalf("session did not progress")
	}

	g.Reset()
	fresh := app.NewGame(app.Options{Balance: b, Rng: utils.NewPRNGService(7)})

	if !reflect.DeepEqual(g.World, fresh.World) {
		t.Errorf("world after reset differs from a fresh session")
	}
	if !reflect.DeepEqual(g.Snapshot(), fresh.Snapshot()) {
		t.Errorf("snapshot after reset differs from a fresh session")
	}

	g.Reset()
	if !reflect.DeepEqual(g.World, fresh.World) {
		t.Errorf("second reset changed the state")
	}
}

func TestResetAfterGameOverRuns(t *testing.T) {
	b := quietBalance()
	b.Player.MaxHP = 5
	g := app.NewGame(app.Options{Balance: b, Rng: utils.NewPRNGService(3)})
	e := g.WaveSystem.SpawnEnemyAt(defs.TierNormal, g.World.Player.Position)
	e.HP, e.Speed = 10000, 0
	g.Tick(16)
	if g.Phase() != component.PhaseGameOver {
		t.Fatalf("expected game over")
	}

	g.Reset()
	g.Tick(16)

	if g.Phase() != component.PhaseRunning || g.World.Difficulty.ElapsedMs != 16 {
		t.Errorf("phase %s elapsed %v after reset", g.Phase(), g.World.Difficulty.ElapsedMs)
	}
	if g.Stats().Kills != 0 {
		t.Errorf("stats survived reset: %+v", g.Stats())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := app.NewGame(app.Options{Balance: quietBalance(), Rng: utils.NewPRNGService(5)})
	g.WaveSystem.SpawnEnemyAt(defs.TierNormal, component.Position{X: 50, Y: 50})

	s := g.Snapshot()
	s.Enemies[0].HP = -1
	s.Player.Score = 999

	if g.World.Enemies[0].HP < 0 || g.World.Player.Score == 999 {
		t.Errorf("snapshot aliases the world")
	}
	if s.HUD.XPPerLevel != g.Balance.Progression.XPPerLevel {
		t.Errorf("xp per level = %d", s.HUD.XPPerLevel)
	}
}

func TestSimulationInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64Range(1, 1<<40).Draw(t, "seed")
		inputs := rapid.SliceOfN(rapid.IntRange(0, 255), 1, 400).Draw(t, "inputs")
		b := defs.DefaultBalance()
		in := new(maskInput)
		g := app.NewGame(app.Options{Balance: b, Input: in, Rng: utils.NewPRNGService(seed)})

		for _, mask := range inputs {
			*in = maskInput(mask)
			g.Tick(rapid.Float64Range(1, 60).Draw(t, "dt"))

			p := g.World.Player
			if p.Position.X < p.Radius || p.Position.X > b.Field.Width-p.Radius ||
				p.Position.Y < p.Radius || p.Position.Y > b.Field.Height-p.Radius {
				t.Fatalf("player outside field: %+v", p.Position)
			}
			if p.HP < 0 {
				t.Fatalf("player hp %d", p.HP)
			}
			for _, e := range g.World.Enemies {
				if e.HP <= 0 {
					t.Fatalf("dead enemy %d kept with hp %d", e.ID, e.HP)
				}
				if e.Position.X < e.Size || e.Position.X > b.Field.Width-e.Size ||
					e.Position.Y < e.Size || e.Position.Y > b.Field.Height-e.Size {
					t.Fatalf("enemy outside field: %+v", e.Position)
				}
			}
			if g.Phase() == component.PhaseGameOver {
				return
			}
		}
	})
}
