package brand

import "context"

// Repository port for persisting and querying brand analyses
type Repository interface {
	Save(ctx context.Context, a *Analysis) error
	GetByProfile(ctx context.Context, profileID string) (*Analysis, error)
}
