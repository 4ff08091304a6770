// internal/system/utils.go
package system

import (
	"log/slog"

	"platanus-survivor/internal/component"
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/entity"
	"platanus-survivor/internal/event"
	"platanus-survivor/internal/utils"
)

// DamageResolver: единственный путь нанесения урона врагам;
// попадания снарядов, взрывы и импульсы проходят через него.
type DamageResolver struct {
	world           *entity.World
	balance         *defs.Balance
	eventDispatcher *event.Dispatcher
	effects         *VisualEffectSystem
	rng             *utils.PRNGService
}

func NewDamageResolver(world *entity.World, balance *defs.Balance, dispatcher *event.Dispatcher,
	effects *VisualEffectSystem, rng *utils.PRNGService) *DamageResolver {
	return &DamageResolver{
		world:           world,
		balance:         balance,
		eventDispatcher: dispatcher,
		effects:         effects,
		rng:             rng,
	}
}

// ApplyDamage наносит урон врагу с индексом i.
// При HP <= 0 враг убирается из мира в этом же вызове; возвращает true.
func (r *DamageResolver) ApplyDamage(i int, damage int) bool {
	enemy := r.world.Enemies[i]
	if damage < 0 {
		damage = 0
	}
	enemy.HP -= damage
	if enemy.HP > 0 {
		r.eventDispatcher.Emit(event.EnemyHit, nil)
		return false
	}
	enemy.HP = 0
	r.killEnemy(i)
	return true
}

// ApplyAreaDamage бьёт каждого врага строго внутри радиуса. Возвращает число задетых.
func (r *DamageResolver) ApplyAreaDamage(x, y, radius float64, damage int) int {
	center := component.Position{X: x, Y: y}
	hits := 0
	// Обход с конца: убитые удаляются на месте
	for i := len(r.world.Enemies) - 1; i >= 0; i-- {
		if center.DistanceTo(r.world.Enemies[i].Position) < radius {
			hits++
			r.ApplyDamage(i, damage)
		}
	}
	return hits
}

// Explode детонирует ракету с уроном по площади
func (r *DamageResolver) Explode(x, y, radius float64, damage int) {
	r.effects.SpawnExplosion(x, y, radius, false)
	r.effects.SpawnSparks(x, y, r.balance.Effects.ExplosionSparks)
	hits := r.ApplyAreaDamage(x, y, radius, damage)
	r.eventDispatcher.Emit(event.Explosion, event.ExplosionData{X: x, Y: y, Radius: radius, Hits: hits})
}

func (r *DamageResolver) killEnemy(i int) {
	enemy := r.world.Enemies[i]
	r.world.RemoveEnemyAt(i)

	r.world.Player.Score += enemy.ScoreValue
	r.dropGems(enemy)
	r.effects.SpawnSparks(enemy.Position.X, enemy.Position.Y, r.balance.Effects.DeathSparks)

	if enemy.IsBoss() {
		slog.Debug("boss killed", "id", enemy.ID, "score", r.world.Player.Score)
	}
	r.eventDispatcher.Emit(event.EnemyKilled, event.EnemyKilledData{
		ID:    enemy.ID,
		Tier:  enemy.Tier,
		X:     enemy.Position.X,
		Y:     enemy.Position.Y,
		Score: enemy.ScoreValue,
	})
}

// Первый кристалл падает точно на место смерти, остальные, с разбросом
func (r *DamageResolver) dropGems(enemy *component.Enemy) {
	scatter := r.balance.Progression.GemScatter
	for g := 0; g < enemy.GemCount; g++ {
		pos := enemy.Position
		if g > 0 {
			pos.X += r.rng.Range(-scatter, scatter)
			pos.Y += r.rng.Range(-scatter, scatter)
		}
		r.world.Gems = append(r.world.Gems, &component.Gem{Position: pos, Value: enemy.GemValue})
	}
}
