// Package colouring builds the 90-node proper-9-colouring graph that
// encodes a Sudoku puzzle plus a candidate solution, and exposes the
// EdgeNodeMap the Verifier uses as its entire view of graph topology.
package colouring

import "github.com/luxfi/zksudoku/pkg/sudoku"

// NodeID identifies one of the graph's 90 nodes. The 81 cell nodes use
// the same linear index as sudoku.Position.Index(); the 9 clique nodes
// follow immediately after, one per Value.
type NodeID int

// EdgeID identifies one of the graph's edges. Assigned at construction and
// stable within a single graph instance.
type EdgeID int

// CellNodeCount is the number of cell nodes (one per grid position).
const CellNodeCount = 81

// CliqueNodeCount is the number of clique nodes (one per Value).
const CliqueNodeCount = 9

// NodeCount is the total number of nodes in the graph.
const NodeCount = CellNodeCount + CliqueNodeCount

// CellNode returns the NodeID for a grid position.
func CellNode(p sudoku.Position) NodeID { return NodeID(p.Index()) }

// CliqueNode returns the NodeID for the clique node pinning Value v.
func CliqueNode(v sudoku.Value) NodeID { return NodeID(CellNodeCount + v.Index()) }

// IsCliqueNode reports whether id identifies one of the 9 clique nodes.
func IsCliqueNode(id NodeID) bool { return int(id) >= CellNodeCount }

// Edge is an undirected pair of distinct nodes.
type Edge struct {
	A, B NodeID
}

// EdgeNodeMap is the immutable mapping edge_id -> (node_a, node_b) shared
// with the Verifier at setup. It is the Verifier's sole view of graph
// topology; it never learns node labels.
type EdgeNodeMap map[EdgeID]Edge

// Graph is the 90-node colouring graph built from a solved Sudoku grid.
// It is constructed once and is read-only thereafter.
type Graph struct {
	labels [NodeCount]sudoku.Value
	edges  []Edge
}

// Label returns the colour assigned to node id under the Prover's
// solution. Node labels are never published; only the Prover consults
// this.
func (g *Graph) Label(id NodeID) sudoku.Value { return g.labels[id] }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns the endpoints of edge id.
func (g *Graph) Edge(id EdgeID) (Edge, bool) {
	if id < 0 || int(id) >= len(g.edges) {
		return Edge{}, false
	}
	return g.edges[id], true
}

// EdgeNodeMap returns the immutable edge_id -> (node_a, node_b) mapping
// handed once to the Verifier at setup.
func (g *Graph) EdgeNodeMap() EdgeNodeMap {
	m := make(EdgeNodeMap, len(g.edges))
	for i, e := range g.edges {
		m[EdgeID(i)] = e
	}
	return m
}

// IsProperColouring reports whether no edge connects two nodes with equal
// labels — spec §8 property 4, the graph-side half of "proper colouring
// iff valid Sudoku solution".
func (g *Graph) IsProperColouring() bool {
	for _, e := range g.edges {
		if g.labels[e.A] == g.labels[e.B] {
			return false
		}
	}
	return true
}
