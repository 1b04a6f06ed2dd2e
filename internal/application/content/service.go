package content

import (
	"context"
	"errors"

	"github.com/mylance/mylance-api/internal/application"
	"github.com/mylance/mylance-api/internal/domain/ai"
	"github.com/mylance/mylance-api/internal/domain/brand"
	"github.com/mylance/mylance-api/internal/domain/profiles"
	"github.com/mylance/mylance-api/internal/domain/strategy"
)

// ErrNoAnalysis is returned when strategy generation is requested before
// any customer data was saved for the profile.
var ErrNoAnalysis = errors.New("no brand analysis saved for profile")

// ErrNoStrategy is returned when prompt generation or refinement is
// requested before a content strategy exists.
var ErrNoStrategy = errors.New("no content strategy saved for profile")

const defaultPromptCount = 30

// Service implements the AI content-generation use-cases
type Service struct {
	Profiles profiles.Repository
	Brand    brand.Repository
	Global   strategy.Repository
	AI       ai.Client
	Clock    application.Clock
}

// GenerateStrategy builds and stores a content strategy from the profile's
// brand analysis, guided by the global thought-leadership strategy.
func (s *Service) GenerateStrategy(ctx context.Context, profileID profiles.ProfileID) (string, error) {
	if _, err := s.Profiles.Get(ctx, profileID); err != nil {
		return "", err
	}
	analysis, err := s.Brand.GetByProfile(ctx, string(profileID))
	if err != nil {
		return "", err
	}
	if analysis == nil {
		return "", ErrNoAnalysis
	}

	global, err := s.Global.Get(ctx)
	if err != nil {
		return "", err
	}

	text, err := s.AI.GenerateStrategy(ctx, analysis, global.Text)
	if err != nil {
		return "", err
	}
	if err := s.Profiles.UpdateStrategy(ctx, profileID, text); err != nil {
		return "", err
	}
	return text, nil
}

// RefineStrategy rewrites the stored strategy according to user feedback.
func (s *Service) RefineStrategy(ctx context.Context, profileID profiles.ProfileID, feedback string) (string, error) {
	p, err := s.Profiles.Get(ctx, profileID)
	if err != nil {
		return "", err
	}
	if p.ContentStrategy == "" {
		return "", ErrNoStrategy
	}

	text, err := s.AI.RefineStrategy(ctx, p.ContentStrategy, feedback)
	if err != nil {
		return "", err
	}
	if err := s.Profiles.UpdateStrategy(ctx, profileID, text); err != nil {
		return "", err
	}
	return text, nil
}

// SaveStrategy stores a hand-edited strategy verbatim.
func (s *Service) SaveStrategy(ctx context.Context, profileID profiles.ProfileID, text string) error {
	if _, err := s.Profiles.Get(ctx, profileID); err != nil {
		return err
	}
	return s.Profiles.UpdateStrategy(ctx, profileID, text)
}

// GeneratePrompts produces LinkedIn post prompts from the stored strategy
// and persists them on the profile.
func (s *Service) GeneratePrompts(ctx context.Context, profileID profiles.ProfileID, count int) ([]profiles.Prompt, error) {
	if count <= 0 {
		count = defaultPromptCount
	}
	p, err := s.Profiles.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if p.ContentStrategy == "" {
		return nil, ErrNoStrategy
	}

	prompts, err := s.AI.GeneratePrompts(ctx, p.ContentStrategy, count)
	if err != nil {
		return nil, err
	}
	if err := s.Profiles.UpdatePrompts(ctx, profileID, prompts); err != nil {
		return nil, err
	}
	return prompts, nil
}

// Prompts returns the stored prompts for a profile.
func (s *Service) Prompts(ctx context.Context, profileID profiles.ProfileID) ([]profiles.Prompt, error) {
	p, err := s.Profiles.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return p.LinkedInPrompts, nil
}
