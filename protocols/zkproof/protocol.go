package zkproof

import (
	"fmt"

	"github.com/luxfi/zksudoku/pkg/sudoku"
)

// Protocol orchestrates a Prover and Verifier sharing one graph instance,
// running rounds until a caller-chosen stopping condition is met.
type Protocol struct {
	prover   *Prover
	verifier *Verifier
}

// New constructs a Prover and Verifier over grid's colouring graph.
func New(grid *sudoku.Grid) (*Protocol, error) {
	prover, edgeMap, err := NewProver(grid)
	if err != nil {
		return nil, err
	}
	verifier, err := NewVerifier(edgeMap)
	if err != nil {
		return nil, fmt.Errorf("zkproof: constructing verifier: %w", err)
	}
	return &Protocol{prover: prover, verifier: verifier}, nil
}

// RunRound drives one full commit-challenge-reveal-verify cycle.
func (p *Protocol) RunRound() (VerifierResult, error) {
	commit, err := p.prover.StartRound()
	if err != nil {
		return VerifierResult{}, err
	}
	challenge, err := p.verifier.ReceiveCommitment(commit)
	if err != nil {
		return VerifierResult{}, err
	}
	response, err := p.prover.RespondToChallenge(challenge)
	if err != nil {
		return VerifierResult{}, err
	}
	return p.verifier.VerifyResponse(response)
}

// RunProof runs up to n rounds, stopping and returning false at the
// first rejecting round; returns true if all n rounds succeed.
func (p *Protocol) RunProof(n int) (bool, error) {
	for i := 0; i < n; i++ {
		result, err := p.RunRound()
		if err != nil {
			return false, err
		}
		if !result.Success {
			return false, nil
		}
	}
	return true, nil
}

// ProveWithConfidence computes the number of rounds needed to reach
// targetPct confidence (RoundsForConfidence) and runs exactly that many.
func (p *Protocol) ProveWithConfidence(targetPct float64) (bool, error) {
	n := RoundsForConfidence(p.verifier.EdgeCount(), targetPct)
	return p.RunProof(n)
}

// EdgeCount returns the size of the shared graph's edge set.
func (p *Protocol) EdgeCount() int { return p.verifier.EdgeCount() }

// ConfidenceLevel returns the Verifier's empirically accumulated
// confidence so far.
func (p *Protocol) ConfidenceLevel() float64 { return p.verifier.ConfidenceLevel() }
