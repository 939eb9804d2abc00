package ports

import (
	"context"
	"time"

	"svw.info/sudokugame/internal/domain"
)

// Stats captures performance characteristics of a solve.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver produces one completion of a board.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
}

// Validator runs the shared row/column/block conflict scan. Validate reports
// the boolean and the full conflict set from one scan; Complete additionally
// requires every cell to be filled.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
	Complete(ctx context.Context, b *domain.Board) (bool, error)
}

// Hinter suggests one cell given the live board and the solved reference.
// The second return is false when no hintable cell remains.
type Hinter interface {
	Hint(ctx context.Context, current, solved *domain.Board) (domain.CellHint, bool, error)
}

// Source supplies a fresh puzzle board with its given mask already set.
type Source interface {
	Fetch(ctx context.Context) (*domain.Board, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
