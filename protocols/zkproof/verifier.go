package zkproof

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/luxfi/zksudoku/pkg/colouring"
)

// Verifier challenges a Prover's per-round commitments against a fixed
// EdgeNodeMap, established once at setup, and never learns node colours
// beyond what a single round's reveal discloses.
type Verifier struct {
	edges   colouring.EdgeNodeMap
	edgeIDs []colouring.EdgeID
	current RoundID
	rounds  []verifierRound
}

// NewVerifier builds a Verifier over the given edge map. The map is
// treated as immutable for the Verifier's lifetime.
func NewVerifier(edges colouring.EdgeNodeMap) (*Verifier, error) {
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}
	ids := make([]colouring.EdgeID, 0, len(edges))
	for id := range edges {
		ids = append(ids, id)
	}
	return &Verifier{edges: edges, edgeIDs: ids, current: -1}, nil
}

// ReceiveCommitment records the Prover's commitments for this round and
// samples one edge uniformly at random to challenge.
func (v *Verifier) ReceiveCommitment(commit ProverCommitment) (VerifierChallenge, error) {
	if int(commit.RoundID) != len(v.rounds) {
		return VerifierChallenge{}, ErrRoundMismatch
	}

	idx, err := uniformIndex(len(v.edgeIDs))
	if err != nil {
		return VerifierChallenge{}, fmt.Errorf("zkproof: sampling challenge edge: %w", err)
	}
	edge := v.edgeIDs[idx]

	v.current = commit.RoundID
	v.rounds = append(v.rounds, verifierRound{
		commitment:    commit,
		challengeEdge: edge,
	})

	return VerifierChallenge{RoundID: v.current, Edge: edge}, nil
}

// VerifyResponse checks a Prover's response against the challenge issued
// for this round and reports whether the revealed endpoints carry
// distinct colours.
func (v *Verifier) VerifyResponse(resp ProverResponse) (VerifierResult, error) {
	if resp.RoundID != v.current {
		return VerifierResult{}, ErrRoundMismatch
	}
	round := &v.rounds[v.current]
	if resp.Edge != round.challengeEdge {
		return VerifierResult{}, ErrRoundMismatch
	}

	expected, ok := v.edges[resp.Edge]
	if !ok {
		return VerifierResult{}, EdgeNotFoundError{EdgeID: resp.Edge}
	}
	if resp.Node1.NodeID != expected.A || resp.Node2.NodeID != expected.B {
		return VerifierResult{}, ErrNodeMismatch
	}

	hiddenA, ok := round.commitment.Commitments[resp.Node1.NodeID]
	if !ok {
		return VerifierResult{}, NodeNotFoundError{NodeID: resp.Node1.NodeID}
	}
	hiddenB, ok := round.commitment.Commitments[resp.Node2.NodeID]
	if !ok {
		return VerifierResult{}, NodeNotFoundError{NodeID: resp.Node2.NodeID}
	}

	revealedA, err := hiddenA.Reveal(resp.Node1.Key)
	if err != nil {
		return VerifierResult{}, err
	}
	revealedB, err := hiddenB.Reveal(resp.Node2.Key)
	if err != nil {
		return VerifierResult{}, err
	}

	success := revealedA.Key().Value != revealedB.Key().Value

	round.response = &resp
	round.verified = success

	return VerifierResult{RoundID: v.current, Success: success}, nil
}

// EdgeCount returns the number of edges in the EdgeNodeMap, the |E| used
// by the confidence formula.
func (v *Verifier) EdgeCount() int { return len(v.edges) }

// ConfidenceLevel reports the empirical detection confidence accumulated
// so far, as a percentage (0-100): `100 * (1 - (1 - 1/|E|)^successful)`,
// where successful counts only rounds that verified. This complements
// RoundsForConfidence (which answers "how many rounds do I need"); this
// answers "how much confidence have I actually accumulated".
func (v *Verifier) ConfidenceLevel() float64 {
	successful := 0
	for _, r := range v.rounds {
		if r.verified {
			successful++
		}
	}
	if successful == 0 || len(v.edges) == 0 {
		return 0
	}
	p := 1.0 / float64(len(v.edges))
	return (1 - pow1m(p, successful)) * 100.0
}

func pow1m(p float64, n int) float64 {
	result := 1.0
	base := 1 - p
	for n > 0 {
		if n&1 == 1 {
			result *= base
		}
		base *= base
		n >>= 1
	}
	return result
}

// uniformIndex returns a cryptographically uniform random index in
// [0, n).
func uniformIndex(n int) (int, error) {
	if n <= 0 {
		return 0, ErrNoEdges
	}
	bi, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(bi.Int64()), nil
}
