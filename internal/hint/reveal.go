package hint

import (
	"context"
	"math/rand"

	"svw.info/sudokugame/internal/domain"
)

// Reveal picks one empty, non-given cell uniformly at random and reveals its
// value from the solved board. The generator is injected so selection is
// reproducible under a fixed seed.
type Reveal struct {
	rng *rand.Rand
}

func NewReveal(rng *rand.Rand) *Reveal { return &Reveal{rng: rng} }

// Hint returns false when no empty non-given cell remains.
func (h *Reveal) Hint(ctx context.Context, current, solved *domain.Board) (domain.CellHint, bool, error) {
	open := make([]domain.CellCoord, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if current.Values[r][c] == 0 && !current.Fixed[r][c] {
				open = append(open, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	if len(open) == 0 {
		return domain.CellHint{}, false, nil
	}
	pick := open[h.rng.Intn(len(open))]
	return domain.CellHint{
		Row:   pick.Row,
		Col:   pick.Col,
		Value: solved.Values[pick.Row][pick.Col],
	}, true, nil
}
