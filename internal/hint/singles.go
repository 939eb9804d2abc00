package hint

import (
	"context"

	"svw.info/sudokugame/internal/domain"
)

// Singles suggests the first naked single: an empty cell with exactly one
// legal candidate. Unlike Reveal it never consults the solved board, so it
// cannot spoil a cell the player could not deduce.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, current, solved *domain.Board) (domain.CellHint, bool, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if current.Values[r][c] != 0 {
				continue
			}
			if v, ok := soleCandidate(current, r, c); ok {
				return domain.CellHint{Row: r, Col: c, Value: v}, true, nil
			}
		}
	}
	return domain.CellHint{}, false, nil
}

// soleCandidate collects the digits already used in the cell's row, column
// and block as a bitmask and reports the remaining digit if exactly one.
func soleCandidate(b *domain.Board, r, c int) (uint8, bool) {
	var used uint16
	for i := 0; i < 9; i++ {
		used |= 1 << b.Values[r][i]
		used |= 1 << b.Values[i][c]
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			used |= 1 << b.Values[br+dr][bc+dc]
		}
	}
	var last uint8
	n := 0
	for v := uint8(1); v <= 9; v++ {
		if used&(1<<v) == 0 {
			n++
			last = v
		}
	}
	return last, n == 1
}
