package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded is a deterministic generator backed by math/rand
// It is meant for tests and replays, use Crypto for live rooms
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded returns a generator that always produces the same sequence for a seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))} // nolint:gosec
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

// Between returns a random number in the inclusive range [min, max]
func Between(g Generator, min, max int) int {
	if max <= min {
		return min
	}

	return min + g.Intn(max-min+1)
}
