package scoring

import (
	"math/rand"
	"sync"
)

// Jitter supplies the bounded perturbation added to heuristic scores.
// Intn returns a value in [0, n).
type Jitter interface {
	Intn(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewJitter returns a seeded source that is safe for concurrent use.
// Two sources built from the same seed produce the same sequence.
func NewJitter(seed int64) Jitter {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// NoJitter disables perturbation entirely.
type NoJitter struct{}

func (NoJitter) Intn(int) int { return 0 }

// FixedJitter always returns the same offset, capped at n-1.
type FixedJitter int

func (f FixedJitter) Intn(n int) int {
	v := int(f)
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}
