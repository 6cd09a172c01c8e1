package core

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"math/rand/v2"
)

// ErrEmptyRange is returned by an IndexSource asked for an index in [0, 0).
var ErrEmptyRange = errors.New("core: empty index range")

// IndexSource yields uniformly distributed indices in [0, n).
type IndexSource interface {
	Index(n int) (int, error)
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Index implements IndexSource. A seeded generator never runs dry, so the
// only failure is an empty range.
func (r *RNG) Index(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyRange
	}
	return r.r.IntN(n), nil
}

// FillDensity sets each cell to 1 with probability p and 0 otherwise.
func FillDensity(r *rand.Rand, buf []uint8, p float64) {
	for i := range buf {
		buf[i] = 0
		if r.Float64() < p {
			buf[i] = 1
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// OSSource draws indices from the operating system's cryptographic random
// number generator. Reader may be replaced; nil means crypto/rand.Reader.
type OSSource struct {
	Reader io.Reader
}

// Index implements IndexSource. Errors from the underlying reader are
// returned as is (wrapped) and never papered over with a fallback seed.
func (s OSSource) Index(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyRange
	}
	rd := s.Reader
	if rd == nil {
		rd = crand.Reader
	}
	v, err := crand.Int(rd, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("core: reading random index: %w", err)
	}
	return int(v.Int64()), nil
}
