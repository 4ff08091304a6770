package app

import (
	"time"

	"platanus-survivor/internal/utils"
)

// Settings: параметры запуска из окружения
type Settings struct {
	BalancePath string // пусто: встроенный баланс
	DBPath      string // пусто: рекорды только в памяти
	Seed        int64
	Muted       bool
	PprofAddr   string // пусто: профилировщик выключен
}

// LoadSettings читает PLATANUS_* переменные
func LoadSettings() Settings {
	return Settings{
		BalancePath: utils.GetEnvDefault("PLATANUS_BALANCE", ""),
		DBPath:      utils.GetEnvDefault("PLATANUS_DB", "platanus.db"),
		Seed:        utils.GetEnvInt64("PLATANUS_SEED", time.Now().UnixNano()),
		Muted:       utils.GetEnvBool("PLATANUS_MUTE", false),
		PprofAddr:   utils.GetEnvDefault("PLATANUS_PPROF", ""),
	}
}
