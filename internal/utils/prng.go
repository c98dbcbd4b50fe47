// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-endless-runner/internal/defs"
)

// PRNGService wraps Go's random generator so the whole game can run on a
// seeded, reproducible stream.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed. A zero seed uses
// the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Bool returns a fair coin flip.
func (s *PRNGService) Bool() bool {
	return s.rng.Intn(2) == 0
}

// ChooseWeighted performs a weighted random pick from a spawn table and
// returns the chosen monster ID. An empty or zero-weight table falls back
// to the first entry.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].MonsterID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.MonsterID
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].MonsterID
}
