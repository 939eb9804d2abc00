package analysis

import (
	"context"
	"math"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/ports"
)

// Engine derives comparison and progress reports from a live board, the
// cached solved reference and the given mask. Results are value objects
// recomputed on demand; the engine keeps no state of its own beyond the
// validator it shares with the rest of the system.
type Engine struct {
	v ports.Validator
}

func New(v ports.Validator) *Engine { return &Engine{v: v} }

// Compare classifies every cell of current against solved: empty cells are
// listed as empty, the rest as correct or incorrect.
func (e *Engine) Compare(current, solved *domain.Board) domain.Comparison {
	out := domain.Comparison{
		Correct:   []domain.CellCoord{},
		Incorrect: []domain.CellCoord{},
		Empty:     []domain.CellCoord{},
	}
	filled, correct := 0, 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cc := domain.CellCoord{Row: r, Col: c}
			v := current.Values[r][c]
			if v == 0 {
				out.Empty = append(out.Empty, cc)
				continue
			}
			filled++
			if v == solved.Values[r][c] {
				correct++
				out.Correct = append(out.Correct, cc)
			} else {
				out.Incorrect = append(out.Incorrect, cc)
			}
		}
	}
	out.Accuracy = accuracy(correct, filled)
	return out
}

// Progress counts givens and, among the non-given cells, how many are filled
// and how many of those match the solution. IsComplete holds when givens plus
// filled cover the whole grid; IsValid when the board is conflict-free and
// nothing filled contradicts the solution.
func (e *Engine) Progress(ctx context.Context, current, solved *domain.Board) (domain.Progress, error) {
	p := domain.Progress{TotalCells: 81}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if current.Fixed[r][c] {
				p.OriginalCells++
				continue
			}
			v := current.Values[r][c]
			if v == 0 {
				continue
			}
			p.FilledCells++
			if v == solved.Values[r][c] {
				p.CorrectCells++
			}
		}
	}
	p.IncorrectCells = p.FilledCells - p.CorrectCells
	p.Accuracy = accuracy(p.CorrectCells, p.FilledCells)
	p.IsComplete = p.FilledCells+p.OriginalCells == 81
	ok, _, err := e.v.Validate(ctx, current)
	if err != nil {
		return domain.Progress{}, err
	}
	p.IsValid = ok && p.IncorrectCells == 0
	return p, nil
}

// accuracy is correct/filled as a percentage, rounded half-up to two
// decimals, 0 when nothing is filled.
func accuracy(correct, filled int) float64 {
	if filled == 0 {
		return 0
	}
	pct := float64(correct) / float64(filled) * 100
	return math.Floor(pct*100+0.5) / 100
}
