package game

import (
	"context"
	"errors"
	"math/rand"

	"svw.info/sudokugame/internal/analysis"
	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/hint"
	"svw.info/sudokugame/internal/solver"
	"svw.info/sudokugame/internal/validator"
)

var (
	ErrGivenCell  = errors.New("cell is part of the original puzzle")
	ErrBadInput   = errors.New("input must be empty or a single digit 1-9")
	ErrOutOfRange = errors.New("cell coordinates out of range")
)

// Session owns one live game: the mutable board, the immutable given mask
// and the solved reference computed once at load time. All operations are
// synchronous and cheap except the one solve at construction.
type Session struct {
	board  domain.Board
	solved domain.Board

	val *validator.FastValidator
	eng *analysis.Engine
	rev *hint.Reveal
}

// New solves the puzzle once and caches the result as ground truth for
// comparison, hints and progress. It fails if the puzzle has no solution.
// The given mask must already be set on puz (see Board.MarkGivens).
func New(ctx context.Context, puz *domain.Board, rng *rand.Rand) (*Session, error) {
	solved, _, err := solver.NewBacktrackingSolver().Solve(ctx, puz)
	if err != nil {
		return nil, err
	}
	v := validator.New()
	return &Session{
		board:  *puz,
		solved: *solved,
		val:    v,
		eng:    analysis.New(v),
		rev:    hint.NewReveal(rng),
	}, nil
}

// Board returns a copy of the live board.
func (g *Session) Board() domain.Board { return g.board }

// Solved returns a copy of the cached solution.
func (g *Session) Solved() domain.Board { return g.solved }

// SetCell applies one user edit: "" clears the cell, a single digit places
// it. Given cells are immutable.
func (g *Session) SetCell(r, c int, input string) error {
	if r < 0 || r > 8 || c < 0 || c > 8 {
		return ErrOutOfRange
	}
	if g.board.Fixed[r][c] {
		return ErrGivenCell
	}
	if !domain.ValidInput(input) {
		return ErrBadInput
	}
	if input == "" {
		g.board.Values[r][c] = 0
	} else {
		g.board.Values[r][c] = input[0] - '0'
	}
	return nil
}

// Reset clears every non-given cell, returning the board to its loaded state.
func (g *Session) Reset() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !g.board.Fixed[r][c] {
				g.board.Values[r][c] = 0
			}
		}
	}
}

// Conflicts returns every cell involved in a duplicate within its row,
// column or block, for live highlighting.
func (g *Session) Conflicts(ctx context.Context) []domain.CellCoord {
	_, conf, _ := g.val.Validate(ctx, &g.board)
	return conf
}

// Complete reports whether the board is fully filled and conflict-free.
func (g *Session) Complete(ctx context.Context) bool {
	ok, _ := g.val.Complete(ctx, &g.board)
	return ok
}

// Compare classifies the live board against the cached solution.
func (g *Session) Compare() domain.Comparison {
	return g.eng.Compare(&g.board, &g.solved)
}

// Progress aggregates the completion and validity counters.
func (g *Session) Progress(ctx context.Context) domain.Progress {
	p, _ := g.eng.Progress(ctx, &g.board, &g.solved)
	return p
}

// Hint reveals one random unsolved cell and writes its value into the board.
// Returns false when nothing is left to reveal.
func (g *Session) Hint(ctx context.Context) (domain.CellHint, bool) {
	h, ok, _ := g.rev.Hint(ctx, &g.board, &g.solved)
	if !ok {
		return domain.CellHint{}, false
	}
	g.board.Values[h.Row][h.Col] = h.Value
	return h, true
}
