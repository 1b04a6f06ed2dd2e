package strategy

import "context"

// Repository defines persistence for the global strategy
type Repository interface {
	Save(ctx context.Context, s *Strategy) error
	Get(ctx context.Context) (*Strategy, error)
}
