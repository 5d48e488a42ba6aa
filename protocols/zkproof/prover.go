package zkproof

import (
	"fmt"

	"github.com/luxfi/zksudoku/pkg/colour"
	"github.com/luxfi/zksudoku/pkg/colouring"
	"github.com/luxfi/zksudoku/pkg/commitment"
	"github.com/luxfi/zksudoku/pkg/sudoku"
)

// Prover holds a candidate Sudoku solution and answers Verifier
// challenges against it without ever disclosing the solution itself.
//
// A Prover does not validate that its grid is a correct Sudoku solution;
// it only requires the grid to be fully populated so a graph can be
// built. An incorrect solution produces a graph that is not a proper
// colouring, which the Verifier will eventually detect (spec §9,
// "ambiguity in source").
type Prover struct {
	graph   *colouring.Graph
	current RoundID
	rounds  []proverRound
}

// NewProver validates that grid is fully populated and well-formed, then
// builds the colouring graph and returns the Prover together with the
// EdgeNodeMap to hand to the Verifier at setup. It does not validate that
// grid is a correct Sudoku solution: a well-formed but incorrect grid
// still builds a graph, just one the Verifier's challenges will detect as
// an improper colouring (spec §9's Open Question decision).
func NewProver(grid *sudoku.Grid) (*Prover, colouring.EdgeNodeMap, error) {
	if !grid.Populated() {
		return nil, nil, fmt.Errorf("zkproof: %w: grid is not fully populated", ErrSudoku)
	}

	graph, err := colouring.Build(grid)
	if err != nil {
		return nil, nil, fmt.Errorf("zkproof: %w: %w", ErrSudoku, err)
	}
	p := &Prover{graph: graph, current: -1}
	return p, graph.EdgeNodeMap(), nil
}

// StartRound samples a fresh colour permutation, commits to every node
// under it, retains the round's keys for later challenges, and returns
// the commitment message for the Verifier.
func (p *Prover) StartRound() (ProverCommitment, error) {
	perm, err := colour.NewRandom()
	if err != nil {
		return ProverCommitment{}, fmt.Errorf("zkproof: sampling permutation: %w", err)
	}

	var keys [colouring.NodeCount]commitment.Key
	var hidden [colouring.NodeCount]commitment.Hidden
	for n := 0; n < colouring.NodeCount; n++ {
		node := colouring.NodeID(n)
		coloured := perm.Apply(p.graph.Label(node))
		h, key, err := commitment.Commit(coloured, n)
		if err != nil {
			return ProverCommitment{}, fmt.Errorf("zkproof: committing node %d: %w", n, err)
		}
		keys[n] = key
		hidden[n] = h
	}

	p.current++
	p.rounds = append(p.rounds, proverRound{
		permutation:     perm,
		keys:            keys,
		commitments:     hidden,
		challengedEdges: make(map[colouring.EdgeID]struct{}),
	})

	out := ProverCommitment{RoundID: p.current, Commitments: make(map[colouring.NodeID]commitment.Hidden, colouring.NodeCount)}
	for n := 0; n < colouring.NodeCount; n++ {
		out.Commitments[colouring.NodeID(n)] = hidden[n]
	}
	return out, nil
}

// RespondToChallenge reveals the two commitment keys for the challenged
// edge's endpoints.
func (p *Prover) RespondToChallenge(challenge VerifierChallenge) (ProverResponse, error) {
	if challenge.RoundID != p.current {
		return ProverResponse{}, ErrRoundMismatch
	}
	round := &p.rounds[p.current]
	if _, ok := round.challengedEdges[challenge.Edge]; ok {
		return ProverResponse{}, ErrAlreadyRevealed
	}

	edge, ok := p.graph.Edge(challenge.Edge)
	if !ok {
		return ProverResponse{}, EdgeNotFoundError{EdgeID: challenge.Edge}
	}

	round.challengedEdges[challenge.Edge] = struct{}{}

	return ProverResponse{
		RoundID: p.current,
		Edge:    challenge.Edge,
		Node1:   NodeReveal{NodeID: edge.A, Key: round.keys[edge.A]},
		Node2:   NodeReveal{NodeID: edge.B, Key: round.keys[edge.B]},
	}, nil
}

// RoundCount returns the number of rounds run so far, for audit callers.
func (p *Prover) RoundCount() int { return len(p.rounds) }
