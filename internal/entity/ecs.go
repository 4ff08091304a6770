// internal/entity/ecs.go
package entity

import (
	"platanus-survivor/internal/component"
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/types"
)

// World: всё изменяемое состояние одной сессии.
// Коллекции: срезы, чтобы порядок обхода был детерминированным.
type World struct {
	NextID      types.EntityID
	Player      *component.Player
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile
	Gems        []*component.Gem
	Particles   []*component.Particle
	Explosions  []*component.Explosion
	Weapons     [defs.WeaponKindCount]*component.WeaponSlot
	Difficulty  component.Difficulty
	Fever       component.Fever
	Phase       component.Phase
}

func NewWorld(b *defs.Balance) *World {
	w := &World{}
	w.Reset(b)
	return w
}

// Reset возвращает мир к началу сессии, сохраняя указатель на него.
func (w *World) Reset(b *defs.Balance) {
	pd := b.Player
	*w = World{
		NextID: 1,
		Player: &component.Player{
			Position: component.Position{X: pd.StartX, Y: pd.StartY},
			Radius:   pd.Radius,
			Speed:    pd.Speed,
			HP:       pd.MaxHP,
			MaxHP:    pd.MaxHP,
			Level:    1,
		},
		Enemies:     make([]*component.Enemy, 0, 64),
		Projectiles: make([]*component.Projectile, 0, 64),
		Gems:        make([]*component.Gem, 0, 64),
		Particles:   make([]*component.Particle, 0, 128),
		Explosions:  make([]*component.Explosion, 0, 8),
		Difficulty:  component.Difficulty{WaveLevel: 1},
		Phase:       component.PhaseRunning,
	}
	for _, kind := range defs.WeaponKinds {
		w.Weapons[kind] = component.NewWeaponSlot(kind, b.Weapon(kind))
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Weapon возвращает слот оружия по виду
func (w *World) Weapon(kind defs.WeaponKind) *component.WeaponSlot {
	return w.Weapons[kind]
}

// AddEnemy назначает врагу ID и добавляет его в мир
func (w *World) AddEnemy(e *component.Enemy) *component.Enemy {
	e.ID = w.NewEntity()
	w.Enemies = append(w.Enemies, e)
	return e
}

// RemoveEnemyAt удаляет врага, сохраняя порядок остальных
func (w *World) RemoveEnemyAt(i int) {
	copy(w.Enemies[i:], w.Enemies[i+1:])
	w.Enemies[len(w.Enemies)-1] = nil
	w.Enemies = w.Enemies[:len(w.Enemies)-1]
}

func (w *World) RemoveProjectileAt(i int) {
	copy(w.Projectiles[i:], w.Projectiles[i+1:])
	w.Projectiles[len(w.Projectiles)-1] = nil
	w.Projectiles = w.Projectiles[:len(w.Projectiles)-1]
}

func (w *World) RemoveGemAt(i int) {
	copy(w.Gems[i:], w.Gems[i+1:])
	w.Gems[len(w.Gems)-1] = nil
	w.Gems = w.Gems[:len(w.Gems)-1]
}

// CountBosses: число живых боссов
func (w *World) CountBosses() int {
	n := 0
	for _, e := range w.Enemies {
		if e.IsBoss() {
			n++
		}
	}
	return n
}
