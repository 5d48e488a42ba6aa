package zkproof

import (
	"github.com/luxfi/zksudoku/pkg/colour"
	"github.com/luxfi/zksudoku/pkg/colouring"
	"github.com/luxfi/zksudoku/pkg/commitment"
)

// RoundID is a monotonic integer identifying a protocol round, incremented
// per StartRound.
type RoundID int

// NodeReveal pairs a node with the commitment key that opens it, as
// carried by ProverResponse.
type NodeReveal struct {
	NodeID colouring.NodeID `cbor:"node_id"`
	Key    commitment.Key   `cbor:"key"`
}

// ProverCommitment is the first message of a round: the Prover's
// per-node Hidden commitments under a fresh colour permutation.
type ProverCommitment struct {
	RoundID     RoundID                                `cbor:"round_id"`
	Commitments map[colouring.NodeID]commitment.Hidden `cbor:"commitments"`
}

// VerifierChallenge is the Verifier's response to a commitment: one edge,
// sampled uniformly at random from the edge map.
type VerifierChallenge struct {
	RoundID RoundID         `cbor:"round_id"`
	Edge    colouring.EdgeID `cbor:"edge"`
}

// ProverResponse reveals the two commitment keys for the challenged
// edge's endpoints.
type ProverResponse struct {
	RoundID RoundID          `cbor:"round_id"`
	Edge    colouring.EdgeID `cbor:"edge"`
	Node1   NodeReveal       `cbor:"node1"`
	Node2   NodeReveal       `cbor:"node2"`
}

// VerifierResult is the outcome of one round: success iff the revealed
// endpoints carry distinct colours. A rejecting round (Success == false)
// is not itself an error (spec §7); it is a normal protocol outcome.
type VerifierResult struct {
	RoundID RoundID `cbor:"round_id"`
	Success bool    `cbor:"success"`
}

// proverRound is the Prover's retained per-round state: the permutation
// used, the commitment key for every node, and the set of edges already
// revealed this round. Retained for the life of the Prover for post-hoc
// audit (spec §5).
type proverRound struct {
	permutation     colour.Permutation
	keys            [colouring.NodeCount]commitment.Key
	commitments     [colouring.NodeCount]commitment.Hidden
	challengedEdges map[colouring.EdgeID]struct{}
}

// verifierRound is the Verifier's retained per-round state.
type verifierRound struct {
	commitment    ProverCommitment
	challengeEdge colouring.EdgeID
	response      *ProverResponse
	verified      bool
}
