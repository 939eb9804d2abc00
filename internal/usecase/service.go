package usecase

import (
	"context"
	"errors"

	"svw.info/sudokugame/internal/analysis"
	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/ports"
)

// Service composes the providers behind one application surface.
type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Hinter    ports.Hinter
	Source    ports.Source
	Storage   ports.Storage
	Analysis  *analysis.Engine
}

func NewService(s ports.Solver, v ports.Validator, h ports.Hinter, src ports.Source, st ports.Storage) *Service {
	return &Service{
		Solver:    s,
		Validator: v,
		Hinter:    h,
		Source:    src,
		Storage:   st,
		Analysis:  analysis.New(v),
	}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Complete(ctx context.Context, b *domain.Board) (bool, error) {
	if u.Validator == nil {
		return false, errNotConfigured
	}
	return u.Validator.Complete(ctx, b)
}

func (u *Service) Hint(ctx context.Context, current, solved *domain.Board) (domain.CellHint, bool, error) {
	if u.Hinter == nil {
		return domain.CellHint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, current, solved)
}

func (u *Service) Compare(current, solved *domain.Board) domain.Comparison {
	return u.Analysis.Compare(current, solved)
}

func (u *Service) Progress(ctx context.Context, current, solved *domain.Board) (domain.Progress, error) {
	return u.Analysis.Progress(ctx, current, solved)
}

// NewPuzzle fetches a fresh board from the configured source.
func (u *Service) NewPuzzle(ctx context.Context) (*domain.Board, error) {
	if u.Source == nil {
		return nil, errNotConfigured
	}
	return u.Source.Fetch(ctx)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
