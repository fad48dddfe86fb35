// internal/common/idgen/generator.go
package idgen

import (
	"crypto/rand"
	"math"
	"math/big"
	"sync/atomic"
	"time"
)

// Counter is a process-wide monotonic ID source.
//
// Next is a single atomic add, so it is linearizable and never blocks behind
// another caller. Values wrap modulo 2^64 after MaxUint64; wraparound is not
// reported as an error.
type Counter struct {
	value atomic.Uint64
}

// NewCounter creates a counter whose first issued ID is seed+1.
func NewCounter(seed uint64) *Counter {
	c := &Counter{}
	c.value.Store(seed)
	return c
}

// NewRandomCounter creates a counter seeded with a random value in
// [1, math.MaxInt64] so IDs are not predictable across restarts.
func NewRandomCounter() *Counter {
	return NewCounter(RandomSeed())
}

// Next increments the counter and returns the new value.
func (c *Counter) Next() uint64 {
	return c.value.Add(1)
}

// Peek returns the most recently issued value without consuming one.
func (c *Counter) Peek() uint64 {
	return c.value.Load()
}

// RandomSeed returns a random starting value in [1, math.MaxInt64].
func RandomSeed() uint64 {
	n, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		// 엔트로피를 읽을 수 없으면 타임스탬프 기반 fallback
		return timestampSeed()
	}
	return n.Uint64() + 1
}

func timestampSeed() uint64 {
	ts := time.Now().UnixNano()
	if ts < 1 {
		return 1
	}
	return uint64(ts)
}
