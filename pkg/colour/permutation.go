// Package colour provides the per-round colour permutation the Prover uses
// to randomise node labels before committing to them.
package colour

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/luxfi/zksudoku/pkg/sudoku"
)

// Permutation is a random bijection pi: Value -> Value over the nine
// domain values. It must be freshly sampled every round and never
// revealed (spec §4.2).
type Permutation struct {
	forward [9]sudoku.Value
	inverse [9]sudoku.Value
}

// New samples a fresh permutation using a cryptographically sound
// Fisher-Yates shuffle drawn from rng. Pass crypto/rand.Reader for
// production use and a seeded reader in tests that need determinism.
func New(rng io.Reader) (Permutation, error) {
	values := sudoku.AllValues()
	for i := len(values) - 1; i > 0; i-- {
		j, err := randIntn(rng, i+1)
		if err != nil {
			return Permutation{}, err
		}
		values[i], values[j] = values[j], values[i]
	}

	var p Permutation
	for idx, v := range values {
		src, _ := sudoku.ValueFromIndex(idx)
		p.forward[src.Index()] = v
		p.inverse[v.Index()] = src
	}
	return p, nil
}

// NewRandom samples a fresh permutation from crypto/rand.Reader.
func NewRandom() (Permutation, error) {
	return New(rand.Reader)
}

// Apply returns pi(v).
func (p Permutation) Apply(v sudoku.Value) sudoku.Value { return p.forward[v.Index()] }

// Inverse returns pi^-1(v).
func (p Permutation) Inverse(v sudoku.Value) sudoku.Value { return p.inverse[v.Index()] }

// randIntn returns a uniform random integer in [0, n) read from rng,
// rejection-sampled to avoid modulo bias.
func randIntn(rng io.Reader, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	max := uint64(n)
	// Largest multiple of max not exceeding 2^32, for rejection sampling.
	limit := (uint64(1) << 32) / max * max
	var buf [4]byte
	for {
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return 0, err
		}
		v := uint64(binary.BigEndian.Uint32(buf[:]))
		if v < limit {
			return int(v % max), nil
		}
	}
}
