// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService — обёртка над генератором случайных чисел, чтобы спавн можно было
// воспроизвести по сиду (в тестах и при отладке).
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создаёт сервис с указанным сидом.
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

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// RoundedUpTo returns round(rand * max), an integer in [0, max].
func (s *PRNGService) RoundedUpTo(max float64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Round(s.rng.Float64() * max)
}
