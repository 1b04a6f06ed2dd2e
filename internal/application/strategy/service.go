package strategy

import (
	"context"

	"github.com/mylance/mylance-api/internal/application"
	domain "github.com/mylance/mylance-api/internal/domain/strategy"
)

// Service manages the global thought-leadership strategy
type Service struct {
	Repo  domain.Repository
	Clock application.Clock
}

func (s *Service) Save(ctx context.Context, text string) (*domain.Strategy, error) {
	st := &domain.Strategy{
		Text:      text,
		UpdatedAt: s.Clock.Now(),
	}
	if err := s.Repo.Save(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) Get(ctx context.Context) (*domain.Strategy, error) {
	return s.Repo.Get(ctx)
}
