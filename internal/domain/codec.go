package domain

import (
	"fmt"
	"strings"
)

// ParseBoard reads a board in character form: '.' for an empty cell,
// '1'..'9' for digits, whitespace ignored. Exactly 81 cells are required.
// The fixed mask is not touched; callers decide whether the parsed cells
// are givens.
func ParseBoard(s string) (*Board, error) {
	b := &Board{}
	i := 0
	for _, r := range s {
		switch r {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if i >= 81 {
			return nil, fmt.Errorf("board has more than 81 cells")
		}
		switch {
		case r == '.':
			// empty, leave zero
		case r >= '1' && r <= '9':
			b.Values[i/9][i%9] = uint8(r - '0')
		default:
			return nil, fmt.Errorf("invalid cell character %q at cell %d", r, i)
		}
		i++
	}
	if i != 81 {
		return nil, fmt.Errorf("board has %d cells, want 81", i)
	}
	return b, nil
}

// String renders the board in the same character form, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(90)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ValidInput reports whether a raw cell edit is acceptable: the empty string
// (clear) or a single digit '1'..'9'. Everything else is rejected at the
// edit boundary before it reaches the board.
func ValidInput(s string) bool {
	if s == "" {
		return true
	}
	return len(s) == 1 && s[0] >= '1' && s[0] <= '9'
}
