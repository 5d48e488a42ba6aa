package zkproof

import (
	"errors"
	"fmt"

	"github.com/luxfi/zksudoku/pkg/colouring"
	"github.com/luxfi/zksudoku/pkg/commitment"
)

// Sentinel errors from spec §7 that carry no associated data.
var (
	// ErrNoEdges is returned when the edge map handed to the Verifier is
	// empty.
	ErrNoEdges = errors.New("zkproof: edge map is empty")
	// ErrRoundMismatch is returned when a round identifier is out of
	// sync between Prover and Verifier.
	ErrRoundMismatch = errors.New("zkproof: round identifier mismatch")
	// ErrAlreadyRevealed is returned when the Prover is asked to reveal
	// the same edge twice within one round.
	ErrAlreadyRevealed = errors.New("zkproof: edge already revealed this round")
	// ErrNodeMismatch is returned when a response's endpoints disagree
	// with the challenged edge's canonical endpoints.
	ErrNodeMismatch = errors.New("zkproof: response endpoints do not match the challenged edge")
	// ErrSudoku is returned when a grid fails structural validation.
	ErrSudoku = errors.New("zkproof: grid failed structural validation")
	// ErrGraph is returned on a graph lookup inconsistency; should be
	// unreachable in correct use.
	ErrGraph = errors.New("zkproof: graph lookup inconsistency")
)

// ErrValueNotFound re-exports colouring.ErrValueNotFound under the
// taxonomy's name (spec §7's ValueNotFound).
var ErrValueNotFound = colouring.ErrValueNotFound

// ErrInvalidReveal re-exports commitment.ErrInvalidReveal under the
// taxonomy's name (spec §7's InvalidReveal), the error VerifyResponse
// propagates when a revealed key's hash does not match its commitment.
var ErrInvalidReveal = commitment.ErrInvalidReveal

// EdgeNotFoundError is returned when a challenge references an unknown
// edge. It carries the offending EdgeID for callers that want to log it.
type EdgeNotFoundError struct {
	EdgeID colouring.EdgeID
}

func (e EdgeNotFoundError) Error() string {
	return fmt.Sprintf("zkproof: edge %d not found", e.EdgeID)
}

// NodeNotFoundError is returned when a commitment is missing for a node;
// a programming error in correct use.
type NodeNotFoundError struct {
	NodeID colouring.NodeID
}

func (e NodeNotFoundError) Error() string {
	return fmt.Sprintf("zkproof: node %d not found", e.NodeID)
}
