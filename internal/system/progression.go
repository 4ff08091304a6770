package system

import (
	"log/slog"

	"platanus-survivor/internal/component"
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/entity"
	"platanus-survivor/internal/event"
	"platanus-survivor/internal/utils"
)

// ProgressionSystem начисляет опыт, повышает уровень и раздаёт награды.
type ProgressionSystem struct {
	world           *entity.World
	balance         *defs.Balance
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewProgressionSystem(world *entity.World, balance *defs.Balance, dispatcher *event.Dispatcher, rng *utils.PRNGService) *ProgressionSystem {
	return &ProgressionSystem{world: world, balance: balance, eventDispatcher: dispatcher, rng: rng}
}

// AddXP начисляет опыт. За один вызов, не больше одного уровня.
func (s *ProgressionSystem) AddXP(value int) bool {
	p := s.world.Player
	p.XP += value
	if p.XP < s.XPForNextLevel() {
		return false
	}
	s.levelUp()
	return true
}

// XPForNextLevel: накопленный опыт, нужный для следующего уровня
func (s *ProgressionSystem) XPForNextLevel() int {
	return s.world.Player.Level * s.balance.Progression.XPPerLevel
}

func (s *ProgressionSystem) levelUp() {
	p := s.world.Player
	p.Level++
	slog.Debug("level up", "level", p.Level, "xp", p.XP)
	s.eventDispatcher.Emit(event.LevelUp, event.LevelUpData{Level: p.Level})

	if !s.applyMilestones(p.Level) {
		s.randomUpgrade()
	}
}

// applyMilestones выдаёт награды уровня. false: наград нет, нужно случайное улучшение.
func (s *ProgressionSystem) applyMilestones(level int) bool {
	prog := s.balance.Progression
	p := s.world.Player
	applied := false

	for _, u := range prog.WeaponUnlocks {
		if u.Level != level {
			continue
		}
		slot := s.world.Weapon(u.Kind)
		if slot == nil || slot.Active {
			continue
		}
		slot.Active = true
		if slot.Level == 0 {
			slot.Level = 1
		}
		applied = true
		s.eventDispatcher.Emit(event.WeaponUnlocked, event.WeaponData{Kind: u.Kind, Level: slot.Level})
	}

	if prog.MagnetLevel > 0 && level == prog.MagnetLevel && !p.MagnetUnlocked {
		p.MagnetUnlocked = true
		applied = true
	}

	if prog.RestoreEvery > 0 && level%prog.RestoreEvery == 0 {
		p.MaxHP += prog.MaxHPGrowth
		if prog.MaxHPCap > 0 && p.MaxHP > prog.MaxHPCap {
			p.MaxHP = prog.MaxHPCap
		}
		p.HP = p.MaxHP
		applied = true
	}
	return applied
}

// randomUpgrade улучшает одно случайное открытое и не максимальное оружие
func (s *ProgressionSystem) randomUpgrade() {
	eligible := make([]*component.WeaponSlot, 0, len(defs.WeaponKinds))
	for _, kind := range defs.WeaponKinds {
		slot := s.world.Weapon(kind)
		if slot != nil && slot.Active && slot.Level < s.balance.Weapon(kind).MaxLevel {
			eligible = append(eligible, slot)
		}
	}
	if len(eligible) == 0 {
		return
	}
	slot := eligible[s.rng.Intn(len(eligible))]
	UpgradeWeapon(slot, s.balance.Weapon(slot.Kind))
	s.eventDispatcher.Emit(event.WeaponUpgraded, event.WeaponData{Kind: slot.Kind, Level: slot.Level})
}

// UpgradeWeapon поднимает уровень слота. Урон не уменьшается, темп не ниже минимума.
func UpgradeWeapon(slot *component.WeaponSlot, def defs.WeaponDefinition) bool {
	if slot.Level >= def.MaxLevel {
		return false
	}
	slot.Level++
	if def.Upgrade.Damage > 0 {
		slot.Damage += def.Upgrade.Damage
	}
	slot.Rate -= def.Upgrade.RateStepMs
	if slot.Rate < def.MinRateMs {
		slot.Rate = def.MinRateMs
	}
	slot.ExplosionRadius += def.Upgrade.ExplosionRadius
	slot.Radius += def.Upgrade.Radius
	return true
}
