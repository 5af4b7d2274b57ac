package picker

import (
	"math/rand"
	"sync"
	"time"
)

// Picker selects random subsets, used for the random event feed
type Picker struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new picker
func New(cfg *Config) *Picker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Picker{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Sample returns up to n distinct indexes in [0, total), in random order
func (p *Picker) Sample(total, n int) []int {
	if total <= 0 || n <= 0 {
		return []int{}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	perm := p.random.Perm(total)
	if n > total {
		n = total
	}
	return perm[:n]
}
