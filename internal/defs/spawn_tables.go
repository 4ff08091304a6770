package defs

// SpawnEntry: один вариант во взвешенной выборке тиров.
type SpawnEntry struct {
	Tier   Tier `json:"tier"`
	Weight int  `json:"weight"`
}

// TierWeight возвращает вес тира для уровня игрока. Ноль, тир ещё закрыт.
func TierWeight(def TierDefinition, level int) int {
	if level < def.MinLevel {
		return 0
	}
	w := def.BaseWeight + def.WeightPerLevel*(level-def.MinLevel)
	if def.MaxWeight > 0 && w > def.MaxWeight {
		w = def.MaxWeight
	}
	if w < 0 {
		return 0
	}
	return w
}

// SpawnTable собирает таблицу весов обычного спавна для уровня игрока.
func (b *Balance) SpawnTable(level int) []SpawnEntry {
	entries := make([]SpawnEntry, 0, len(SpawnTiers))
	for _, t := range SpawnTiers {
		if w := TierWeight(b.Tiers[t], level); w > 0 {
			entries = append(entries, SpawnEntry{Tier: t, Weight: w})
		}
	}
	return entries
}
