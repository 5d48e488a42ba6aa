package colouring

import (
	"errors"

	"github.com/luxfi/zksudoku/pkg/sudoku"
)

// ErrValueNotFound is returned by Build when a cell expected to carry a
// value (every cell, by the time a graph is built) carries none.
var ErrValueNotFound = errors.New("colouring: cell expected to carry a value carries none")

// Build constructs the ColouringGraph for a Sudoku grid in which every
// cell has a Value (Hints plus the Prover's Guesses). The output has 90
// nodes labelled with the Prover's values and the fixed edge set of spec
// §3: row, column, and box edges among cell nodes; a complete graph among
// the 9 clique nodes; and hint-enforcement edges pinning each Hint cell's
// colour.
//
// Construction is deterministic given the grid and contains no secrets
// beyond node labels, which are never published.
func Build(grid *sudoku.Grid) (*Graph, error) {
	g := &Graph{}

	for _, p := range sudoku.Positions() {
		cell := grid.At(p)
		if !cell.HasValue() {
			return nil, ErrValueNotFound
		}
		g.labels[CellNode(p)] = cell.Value
	}
	for _, v := range sudoku.AllValues() {
		g.labels[CliqueNode(v)] = v
	}

	seen := make(map[Edge]struct{})
	addEdge := func(a, b NodeID) {
		if a == b {
			return
		}
		if a > b {
			a, b = b, a
		}
		e := Edge{A: a, B: b}
		if _, ok := seen[e]; ok {
			return
		}
		seen[e] = struct{}{}
		g.edges = append(g.edges, e)
	}

	addUnit := func(positions []sudoku.Position) {
		for i := 0; i < len(positions); i++ {
			for j := i + 1; j < len(positions); j++ {
				addEdge(CellNode(positions[i]), CellNode(positions[j]))
			}
		}
	}

	for i := 0; i < 9; i++ {
		addUnit(sudoku.RowPositions(i))
		addUnit(sudoku.ColPositions(i))
		addUnit(sudoku.BoxPositions(i))
	}

	allValues := sudoku.AllValues()
	for i := 0; i < len(allValues); i++ {
		for j := i + 1; j < len(allValues); j++ {
			addEdge(CliqueNode(allValues[i]), CliqueNode(allValues[j]))
		}
	}

	for _, p := range sudoku.Positions() {
		cell := grid.At(p)
		if !cell.IsHint() {
			continue
		}
		cellNode := CellNode(p)
		for _, v := range allValues {
			if v == cell.Value {
				continue
			}
			addEdge(cellNode, CliqueNode(v))
		}
	}

	return g, nil
}
