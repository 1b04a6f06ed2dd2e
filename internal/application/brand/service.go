package brand

import (
	"context"

	"github.com/google/uuid"

	"github.com/mylance/mylance-api/internal/application"
	domain "github.com/mylance/mylance-api/internal/domain/brand"
)

// Service implements use-cases for the per-profile brand analysis
type Service struct {
	Repo  domain.Repository
	Clock application.Clock
}

// Command to save customer data for a profile
type SaveAnalysisCommand struct {
	ProfileID        string
	IdealCustomer    *string
	ICPPainPoints    *string
	UniqueValue      *string
	ProofPoints      *string
	EnergizingTopics *string
	DecisionMaker    *string
	ContentPillars   []string
	KeyTopics        []string
}

// Save upserts the analysis, stripping legacy field prefixes before persisting
func (s *Service) Save(ctx context.Context, cmd SaveAnalysisCommand) (*domain.Analysis, error) {
	now := s.Clock.Now()

	a := &domain.Analysis{
		ProfileID:        cmd.ProfileID,
		IdealCustomer:    cmd.IdealCustomer,
		ICPPainPoints:    cmd.ICPPainPoints,
		UniqueValue:      cmd.UniqueValue,
		ProofPoints:      cmd.ProofPoints,
		EnergizingTopics: cmd.EnergizingTopics,
		DecisionMaker:    cmd.DecisionMaker,
		ContentPillars:   cmd.ContentPillars,
		KeyTopics:        cmd.KeyTopics,
		UpdatedAt:        now,
	}
	a.Normalize()

	// Keep the row identity stable across saves
	existing, err := s.Repo.GetByProfile(ctx, cmd.ProfileID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		a.ID = existing.ID
		a.CreatedAt = existing.CreatedAt
	} else {
		a.ID = domain.AnalysisID(uuid.New().String())
		a.CreatedAt = now
	}

	if err := s.Repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Get returns the saved analysis, or an empty one when nothing was saved yet
func (s *Service) Get(ctx context.Context, profileID string) (*domain.Analysis, error) {
	a, err := s.Repo.GetByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return &domain.Analysis{ProfileID: profileID}, nil
	}
	return a, nil
}
