// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"

	"platanus-survivor/internal/defs"
)

// PRNGService: обертка над генератором случайных чисел,
// чтобы вся симуляция брала случайность из одного (seeded) источника.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed: сид, с которым был создан генератор
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает равномерное число в [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Angle возвращает случайный угол в [0, 2π).
func (s *PRNGService) Angle() float64 {
	return s.rng.Float64() * 2 * math.Pi
}

// ChooseWeighted выполняет взвешенный выбор тира из таблицы спавна.
// Записи с нулевым весом не выбираются никогда. Пустая таблица, обычный тир.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) defs.Tier {
	totalWeight := 0
	for _, entry := range entries {
		if entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}
	if totalWeight <= 0 {
		return defs.TierNormal
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > r {
			return entry.Tier
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].Tier
}
