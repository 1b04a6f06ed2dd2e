package ai

import (
	"context"

	"github.com/mylance/mylance-api/internal/domain/brand"
	"github.com/mylance/mylance-api/internal/domain/profiles"
)

// Client port for the content-generation provider.
type Client interface {
	// GenerateStrategy builds a LinkedIn content strategy from the brand
	// analysis, optionally guided by the global thought-leadership strategy.
	GenerateStrategy(ctx context.Context, a *brand.Analysis, global string) (string, error)

	// RefineStrategy rewrites an existing strategy according to user feedback.
	RefineStrategy(ctx context.Context, current, feedback string) (string, error)

	// GeneratePrompts produces post prompts (hook, content, style) from a strategy.
	GeneratePrompts(ctx context.Context, strategy string, count int) ([]profiles.Prompt, error)
}
