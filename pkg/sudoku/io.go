package sudoku

import "fmt"

// ErrInvalidGridLength is returned when a grid string is not exactly 81
// characters.
type ErrInvalidGridLength struct {
	Length int
}

func (e ErrInvalidGridLength) Error() string {
	return fmt.Sprintf("sudoku: grid string has length %d, want 81", e.Length)
}

// ErrInvalidGridChar is returned when a grid string contains a character
// that is neither a digit 1..9 nor one of the empty markers 0/./_.
type ErrInvalidGridChar struct {
	Char rune
	Pos  int
}

func (e ErrInvalidGridChar) Error() string {
	return fmt.Sprintf("sudoku: invalid character %q at position %d", e.Char, e.Pos)
}

// Parse reads an 81-character, row-major grid string where 1..9 are
// values and any of 0, ., _ denote an empty cell. Every populated cell is
// recorded as a Hint, since Parse is the entry point for externally-given
// puzzles and (per spec §6) clues are immutable.
func Parse(s string) (*Grid, error) {
	runes := []rune(s)
	if len(runes) != 81 {
		return nil, ErrInvalidGridLength{Length: len(runes)}
	}

	g := NewGrid()
	for i, r := range runes {
		switch {
		case r == '0' || r == '.' || r == '_':
			g.Set(PositionFromIndex(i), EmptyCell())
		case r >= '1' && r <= '9':
			v, err := ValueFromChar(r)
			if err != nil {
				return nil, err
			}
			g.Set(PositionFromIndex(i), HintCell(v))
		default:
			return nil, ErrInvalidGridChar{Char: r, Pos: i}
		}
	}
	return g, nil
}
