package sudoku_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/zksudoku/pkg/sudoku"
)

const validSolvedGrid = "296541378851273694743698251915764832387152946624839517139486725478325169562917483"

// invalidSolvedGrid changes the trailing 3 to a 2, duplicating a value in
// the final box. Mirrors spec.md scenario S2.
const invalidSolvedGrid = "296541378851273694743698251915764832387152946624839517139486725478325169562917482"

func TestParseValidSolution(t *testing.T) {
	g, err := sudoku.Parse(validSolvedGrid)
	require.NoError(t, err)
	assert.True(t, g.Populated())
	assert.True(t, g.IsValidSolution())
}

func TestParseInvalidSolution(t *testing.T) {
	g, err := sudoku.Parse(invalidSolvedGrid)
	require.NoError(t, err)
	assert.True(t, g.Populated())
	assert.False(t, g.IsValidSolution())
}

func TestParseWrongLength(t *testing.T) {
	_, err := sudoku.Parse("123")
	assert.Error(t, err)
}

func TestParseInvalidChar(t *testing.T) {
	bad := "x" + validSolvedGrid[1:]
	_, err := sudoku.Parse(bad)
	assert.Error(t, err)
}

func TestParseEmptyMarkers(t *testing.T) {
	s := "0................................................................................"
	g, err := sudoku.Parse(s)
	require.NoError(t, err)
	assert.False(t, g.Populated())
	assert.True(t, g.At(sudoku.Position{Row: 0, Col: 0}).IsEmpty())

	s2 := "_" + s[1:]
	g2, err := sudoku.Parse(s2)
	require.NoError(t, err)
	assert.True(t, g2.At(sudoku.Position{Row: 0, Col: 0}).IsEmpty())
}

func TestGridStringFormat(t *testing.T) {
	g, err := sudoku.Parse(validSolvedGrid)
	require.NoError(t, err)
	s := g.String()
	// 9 rows + 2 dividers
	assert.Contains(t, s, "---+---+---")
	lines := 0
	for _, r := range s {
		if r == '\n' {
			lines++
		}
	}
	assert.Equal(t, 11, lines) // 9 cell rows + 2 divider rows
}

func TestIsValidSolutionTriviallyTrueWhenEmpty(t *testing.T) {
	g := sudoku.NewGrid()
	assert.True(t, g.IsValidSolution())
	assert.False(t, g.Populated())
}

func TestPositionIndexAndBox(t *testing.T) {
	p := sudoku.Position{Row: 4, Col: 5}
	assert.Equal(t, 41, p.Index())
	assert.Equal(t, 4, p.Box())

	back := sudoku.PositionFromIndex(41)
	assert.Equal(t, p, back)
}
