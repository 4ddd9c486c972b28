// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService отдает случайные индексы для состава волн.
// Сид запоминается, чтобы сессию можно было повторить с тем же составом.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService: сид 0 означает "взять текущее время".
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 { return s.seed }

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Reseed restarts the sequence so a restarted session draws the same rosters.
func (s *PRNGService) Reseed() {
	s.rng = rand.New(rand.NewSource(s.seed))
}
