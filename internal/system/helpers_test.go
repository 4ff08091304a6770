package system

import (
	"platanus-survivor/internal/component"
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/entity"
	"platanus-survivor/internal/event"
	"platanus-survivor/internal/interfaces"
	"platanus-survivor/internal/utils"
)

type keys map[interfaces.Key]bool

func (k keys) IsDown(key interfaces.Key) bool { return k[key] }

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type rig struct {
	world      *entity.World
	balance    *defs.Balance
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	effects    *VisualEffectSystem
	damage     *DamageResolver
	events     *recorder
}

func newRig() *rig {
	return newRigWith(defs.DefaultBalance())
}

func newRigWith(b *defs.Balance) *rig {
	r := &rig{
		world:      entity.NewWorld(b),
		balance:    b,
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewPRNGService(42),
		events:     &recorder{},
	}
	r.effects = NewVisualEffectSystem(r.world, b, r.rng)
	r.damage = NewDamageResolver(r.world, b, r.dispatcher, r.effects, r.rng)
	r.dispatcher.SubscribeAll(r.events,
		event.EnemyKilled, event.EnemyHit, event.PlayerDamaged, event.WeaponFired, event.Explosion,
		event.GemCollected, event.LevelUp, event.WeaponUnlocked, event.WeaponUpgraded,
		event.BossSpawned, event.FeverStarted, event.FeverEnded)
	return r
}

// addEnemy ставит неподвижного врага обычного тира
func (r *rig) addEnemy(x, y float64, hp int) *component.Enemy {
	def := r.balance.Tiers[defs.TierNormal]
	return r.world.AddEnemy(&component.Enemy{
		Tier:         defs.TierNormal,
		Position:     component.Position{X: x, Y: y},
		Size:         def.Size,
		HitboxRadius: def.HitboxRadius,
		HP:           hp,
		MaxHP:        hp,
		ScoreValue:   def.ScoreValue,
		GemCount:     def.GemCount,
		GemValue:     def.GemValue,
	})
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
