package zkproof_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/luxfi/zksudoku/pkg/sudoku"
	"github.com/luxfi/zksudoku/protocols/zkproof"
)

func TestZKProof(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Sudoku Zero-Knowledge Proof Suite")
}

var _ = Describe("end-to-end scenarios", func() {
	const solved = "296541378851273694743698251915764832387152946624839517139486725478325169562917483"
	const tamperedSolution = "296541378851273694743698251915764832387152946624839517139486725478325169562917482"

	Describe("S1: valid solution at full confidence", func() {
		It("proves at 99% confidence with every round succeeding", func() {
			grid, err := sudoku.Parse(solved)
			Expect(err).NotTo(HaveOccurred())

			proto, err := zkproof.New(grid)
			Expect(err).NotTo(HaveOccurred())

			ok, err := proto.ProveWithConfidence(99.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
		})
	})

	Describe("S2: invalid solution", func() {
		It("eventually rejects within roughly |E| rounds", func() {
			grid, err := sudoku.Parse(tamperedSolution)
			Expect(err).NotTo(HaveOccurred())

			proto, err := zkproof.New(grid)
			Expect(err).NotTo(HaveOccurred())

			ok, err := proto.RunProof(proto.EdgeCount() * 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})

	Describe("S3: tampered response, wrong key value", func() {
		It("returns InvalidReveal", func() {
			grid, err := sudoku.Parse(solved)
			Expect(err).NotTo(HaveOccurred())
			prover, edges, err := zkproof.NewProver(grid)
			Expect(err).NotTo(HaveOccurred())
			verifier, err := zkproof.NewVerifier(edges)
			Expect(err).NotTo(HaveOccurred())

			commit, err := prover.StartRound()
			Expect(err).NotTo(HaveOccurred())
			challenge, err := verifier.ReceiveCommitment(commit)
			Expect(err).NotTo(HaveOccurred())
			resp, err := prover.RespondToChallenge(challenge)
			Expect(err).NotTo(HaveOccurred())

			resp.Node1.Key.Value++
			if resp.Node1.Key.Value > 9 {
				resp.Node1.Key.Value = 1
			}

			_, err = verifier.VerifyResponse(resp)
			Expect(err).To(MatchError(zkproof.ErrInvalidReveal))
		})
	})

	Describe("S4: tampered response, swapped endpoint order", func() {
		It("returns NodeMismatch", func() {
			grid, err := sudoku.Parse(solved)
			Expect(err).NotTo(HaveOccurred())
			prover, edges, err := zkproof.NewProver(grid)
			Expect(err).NotTo(HaveOccurred())
			verifier, err := zkproof.NewVerifier(edges)
			Expect(err).NotTo(HaveOccurred())

			commit, err := prover.StartRound()
			Expect(err).NotTo(HaveOccurred())
			challenge, err := verifier.ReceiveCommitment(commit)
			Expect(err).NotTo(HaveOccurred())
			resp, err := prover.RespondToChallenge(challenge)
			Expect(err).NotTo(HaveOccurred())

			resp.Node1, resp.Node2 = resp.Node2, resp.Node1

			_, err = verifier.VerifyResponse(resp)
			Expect(err).To(MatchError(zkproof.ErrNodeMismatch))
		})
	})

	Describe("S5: round desync", func() {
		It("returns RoundMismatch", func() {
			grid, err := sudoku.Parse(solved)
			Expect(err).NotTo(HaveOccurred())
			prover, _, err := zkproof.NewProver(grid)
			Expect(err).NotTo(HaveOccurred())

			_, err = prover.StartRound()
			Expect(err).NotTo(HaveOccurred())

			_, err = prover.RespondToChallenge(zkproof.VerifierChallenge{RoundID: 1, Edge: 0})
			Expect(err).To(MatchError(zkproof.ErrRoundMismatch))
		})
	})

	Describe("S6: double reveal", func() {
		It("returns AlreadyRevealed on the second identical challenge", func() {
			grid, err := sudoku.Parse(solved)
			Expect(err).NotTo(HaveOccurred())
			prover, edges, err := zkproof.NewProver(grid)
			Expect(err).NotTo(HaveOccurred())

			var anyEdge zkproof.VerifierChallenge
			for id := range edges {
				anyEdge = zkproof.VerifierChallenge{RoundID: 0, Edge: id}
				break
			}

			_, err = prover.StartRound()
			Expect(err).NotTo(HaveOccurred())

			_, err = prover.RespondToChallenge(anyEdge)
			Expect(err).NotTo(HaveOccurred())

			_, err = prover.RespondToChallenge(anyEdge)
			Expect(err).To(MatchError(zkproof.ErrAlreadyRevealed))
		})
	})
})
