package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/ports"
)

// BacktrackingSolver is a depth-first solver visiting cells in row-major
// order and trying digits in ascending order, so repeated solves of the same
// board always yield the same first-found solution. No uniqueness is implied;
// near-empty or adversarial boards can take exponential time.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

var errUnsolvable = errors.New("unsolvable or canceled")

// SolveInPlace completes b in place and returns true on success. On failure,
// including context cancellation, every placement made during the search has
// been undone and b is exactly as it was before the call.
func (s *BacktrackingSolver) SolveInPlace(ctx context.Context, b *domain.Board) (bool, ports.Stats) {
	start := time.Now()
	t := newTracker(&b.Values)
	nodes := 0

	var dfs func(idx int) bool
	dfs = func(idx int) bool {
		if ctx.Err() != nil {
			return false
		}
		for idx < 81 && b.Values[idx/9][idx%9] != 0 {
			idx++
		}
		if idx == 81 {
			return true
		}
		r, c := idx/9, idx%9
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if !t.canPlace(r, c, v) {
				continue
			}
			b.Values[r][c] = v
			t.place(r, c, v)
			if dfs(idx + 1) {
				return true
			}
			b.Values[r][c] = 0
			t.remove(r, c, v)
		}
		return false
	}

	ok := dfs(0)
	return ok, ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}

// Solve returns a solved copy of b, leaving b untouched. An unsolvable or
// canceled search is reported as an error for the service layer; the engine
// itself treats it as an ordinary false result.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	work := *b
	ok, st := s.SolveInPlace(ctx, &work)
	if !ok {
		return nil, st, errUnsolvable
	}
	return &work, st, nil
}
