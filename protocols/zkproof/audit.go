package zkproof

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// AuditRecord is the recomputed outcome of one retained round, produced
// by replaying its stored commitments and response independently of the
// live verification that happened during the protocol run.
type AuditRecord struct {
	RoundID    RoundID
	Success    bool
	Consistent bool
}

// Audit replays every round the Verifier has retained, recomputing each
// round's reveal-and-compare outcome concurrently and checking it
// against the outcome recorded live during the protocol run. This is a
// read-only sanity check over already-completed rounds, not a substitute
// for running the protocol; it exists to let a caller re-validate a long
// transcript (spec §5's "retained for post-hoc audit") without
// re-running the interactive exchange, spreading the recomputation
// across goroutines since rounds are independent of one another.
func Audit(v *Verifier) ([]AuditRecord, error) {
	records := make([]AuditRecord, len(v.rounds))

	g, _ := errgroup.WithContext(context.Background())
	for i := range v.rounds {
		i := i
		g.Go(func() error {
			round := v.rounds[i]
			if round.response == nil {
				records[i] = AuditRecord{RoundID: RoundID(i), Success: false, Consistent: true}
				return nil
			}

			resp := *round.response
			expected, ok := v.edges[round.challengeEdge]
			if !ok {
				return EdgeNotFoundError{EdgeID: round.challengeEdge}
			}
			if resp.Node1.NodeID != expected.A || resp.Node2.NodeID != expected.B {
				return fmt.Errorf("zkproof: audit round %d: %w", i, ErrNodeMismatch)
			}

			hiddenA, ok := round.commitment.Commitments[resp.Node1.NodeID]
			if !ok {
				return NodeNotFoundError{NodeID: resp.Node1.NodeID}
			}
			hiddenB, ok := round.commitment.Commitments[resp.Node2.NodeID]
			if !ok {
				return NodeNotFoundError{NodeID: resp.Node2.NodeID}
			}

			revealedA, err := hiddenA.Reveal(resp.Node1.Key)
			if err != nil {
				return fmt.Errorf("zkproof: audit round %d: %w", i, err)
			}
			revealedB, err := hiddenB.Reveal(resp.Node2.Key)
			if err != nil {
				return fmt.Errorf("zkproof: audit round %d: %w", i, err)
			}

			recomputed := revealedA.Key().Value != revealedB.Key().Value
			records[i] = AuditRecord{
				RoundID:    RoundID(i),
				Success:    recomputed,
				Consistent: recomputed == round.verified,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
