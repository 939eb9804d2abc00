package validator

import (
	"context"

	"svw.info/sudokugame/internal/domain"
)

// FastValidator runs one scan over rows, columns and 3x3 blocks and reports
// every cell holding a value that occurs more than once in its unit. Partial
// boards are fine; empty cells never conflict. The validity boolean and the
// conflict set come from the same scan, so they can never disagree.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	var mark [9][9]bool

	unit := func(cells *[9]domain.CellCoord) {
		var count [10]int
		for _, cc := range cells {
			count[b.Values[cc.Row][cc.Col]]++
		}
		for _, cc := range cells {
			if val := b.Values[cc.Row][cc.Col]; val != 0 && count[val] > 1 {
				mark[cc.Row][cc.Col] = true
			}
		}
	}

	var cells [9]domain.CellCoord
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cells[c] = domain.CellCoord{Row: r, Col: c}
		}
		unit(&cells)
	}
	for c := 0; c < 9; c++ {
		for r := 0; r < 9; r++ {
			cells[r] = domain.CellCoord{Row: r, Col: c}
		}
		unit(&cells)
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			i := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					cells[i] = domain.CellCoord{Row: br*3 + dr, Col: bc*3 + dc}
					i++
				}
			}
			unit(&cells)
		}
	}

	conf := make([]domain.CellCoord, 0, 8)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if mark[r][c] {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	return len(conf) == 0, conf, nil
}

// Complete reports whether the board is both fully filled and conflict-free.
// A full board with conflicts is not complete.
func (v *FastValidator) Complete(ctx context.Context, b *domain.Board) (bool, error) {
	if !b.Full() {
		return false, nil
	}
	ok, _, err := v.Validate(ctx, b)
	return ok, err
}
