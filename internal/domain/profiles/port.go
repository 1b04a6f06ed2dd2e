package profiles

import "context"

// Repository port (interface for persistence)
type Repository interface {
	Save(ctx context.Context, p *Profile) error
	Get(ctx context.Context, id ProfileID) (*Profile, error)
	List(ctx context.Context, limit int) ([]*Profile, error)
	Delete(ctx context.Context, id ProfileID) error
	UpdateStrategy(ctx context.Context, id ProfileID, strategy string) error
	UpdatePrompts(ctx context.Context, id ProfileID, prompts []Prompt) error
}
