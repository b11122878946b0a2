// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-swarm-shooter/internal/defs"
)

// PRNGService это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
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

// Seed returns the seed actually in use.
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

// Range возвращает число в [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// ChooseCumulative берёт одно равномерное число из [0,1) и сравнивает его
// с накопленными порогами в порядке записей. Если сумма весов меньше
// единицы и число её превысило, возвращается последний класс.
func (s *PRNGService) ChooseCumulative(entries []defs.ClassWeight) defs.EnemyClass {
	if len(entries) == 0 {
		return defs.EnemyLight
	}

	r := s.Float64()
	upto := 0.0
	for _, entry := range entries {
		upto += entry.Weight
		if r < upto {
			return entry.Class
		}
	}
	return entries[len(entries)-1].Class
}
