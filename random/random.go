package random

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_random.go github.com/KirkDiggler/montecarlo/random Source

// Source produces the uniform variates that drive weighted draws
type Source interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
}

// Config for the default source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Rand implements Source using math/rand
type Rand struct {
	random *rand.Rand
}

// New creates a new random source
func New(cfg *Config) *Rand {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Rand{
		random: random,
	}
}

// Float64 returns a uniform value in [0, 1)
func (r *Rand) Float64() float64 {
	return r.random.Float64()
}
