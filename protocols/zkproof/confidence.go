package zkproof

import "math"

// RoundsForConfidence returns the minimum number of rounds N such that a
// cheating Prover is caught with probability at least targetPct percent,
// given an edge set of size edgeCount (spec §4.7):
//
//	p := 1 / edgeCount
//	N := ceil( ln(1 - targetPct/100) / ln(1 - p) )
//
// targetPct must be in (0, 100). The result is clamped to at least 1.
func RoundsForConfidence(edgeCount int, targetPct float64) int {
	if edgeCount <= 0 || targetPct <= 0 || targetPct >= 100 {
		return 1
	}
	p := 1.0 / float64(edgeCount)
	n := math.Ceil(math.Log(1-targetPct/100) / math.Log(1-p))
	if n < 1 {
		n = 1
	}
	return int(n)
}
