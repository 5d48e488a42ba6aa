// Package commitment implements the hash-binding commitment scheme with a
// state-typed reveal contract used by the Prover to commit to graph node
// colours without disclosing them until challenged.
//
// A Commitment exists in two states: Hidden, where only the hash is
// observable, and Revealed, which carries the CommitmentKey that opened it.
// It is impossible to obtain a key from a Hidden commitment without a
// successful call to Reveal.
package commitment

import (
	"crypto/rand"
	"errors"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"

	"github.com/luxfi/zksudoku/pkg/sudoku"
)

// NonceSize is the length in bytes of the random nonce mixed into every
// commitment hash (spec §6: "Nonce length = 32 bytes").
const NonceSize = 32

// ErrInvalidReveal is returned by Reveal when the supplied key does not
// hash to the commitment's stored digest. It is the only failure mode of
// this package (spec §4.1).
var ErrInvalidReveal = errors.New("commitment: invalid reveal, hash does not match")

// Key is the value and nonce pair that opens a commitment. It is created
// atomically with a Hidden commitment and held privately by the committer
// until it chooses to reveal.
type Key struct {
	Value sudoku.Value
	Nonce [NonceSize]byte
}

// Hidden is a commitment for which only the hash is observable.
type Hidden struct {
	hash   [32]byte
	nodeID int
}

// Revealed is a commitment that has been successfully opened; its key is
// guaranteed present.
type Revealed struct {
	hash   [32]byte
	nodeID int
	key    Key
}

// Commit generates a fresh 32-byte cryptographically random nonce, computes
// H = hash(value_byte || nonce), and returns the Hidden commitment together
// with the Key that opens it.
func Commit(value sudoku.Value, nodeID int) (Hidden, Key, error) {
	var nonce [NonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return Hidden{}, Key{}, err
	}
	key := Key{Value: value, Nonce: nonce}
	return Hidden{hash: computeHash(key), nodeID: nodeID}, key, nil
}

// Reveal recomputes hash(key.Value || key.Nonce) and compares it byte-equal
// to the stored digest. On mismatch it returns ErrInvalidReveal; on match it
// returns a Revealed commitment carrying the key.
func (h Hidden) Reveal(key Key) (Revealed, error) {
	if computeHash(key) != h.hash {
		return Revealed{}, ErrInvalidReveal
	}
	return Revealed{hash: h.hash, nodeID: h.nodeID, key: key}, nil
}

// NodeID returns the node this commitment is for.
func (h Hidden) NodeID() int { return h.nodeID }

// Hash returns the committed digest.
func (h Hidden) Hash() [32]byte { return h.hash }

// NodeID returns the node this commitment is for.
func (r Revealed) NodeID() int { return r.nodeID }

// Hash returns the committed digest.
func (r Revealed) Hash() [32]byte { return r.hash }

// Key returns the key that opened this commitment. Total: a Revealed value
// always carries one, since it can only be constructed via a successful
// Reveal.
func (r Revealed) Key() Key { return r.key }

// wireHidden is the exported shadow of Hidden used for CBOR encoding,
// since Hidden's fields are kept private to preserve the state-typed
// contract (no code outside this package can fabricate one).
type wireHidden struct {
	Hash   [32]byte `cbor:"hash"`
	NodeID int      `cbor:"node_id"`
}

// MarshalCBOR implements cbor.Marshaler so a Hidden commitment can travel
// in a ProverCommitment message without exposing its fields outside this
// package.
func (h Hidden) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(wireHidden{Hash: h.hash, NodeID: h.nodeID})
}

// UnmarshalCBOR implements cbor.Unmarshaler, the counterpart to
// MarshalCBOR.
func (h *Hidden) UnmarshalCBOR(data []byte) error {
	var w wireHidden
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}
	h.hash = w.Hash
	h.nodeID = w.NodeID
	return nil
}

func computeHash(key Key) [32]byte {
	h := blake3.New()
	_, _ = h.Write([]byte{key.Value.Byte()})
	_, _ = h.Write(key.Nonce[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
