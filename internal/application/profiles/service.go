package profiles

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mylance/mylance-api/internal/application"
	domain "github.com/mylance/mylance-api/internal/domain/profiles"
)

// ErrMissingName is returned when a profile is created without both names
var ErrMissingName = errors.New("first name and last name are required")

// Service implements use-cases for profile management
type Service struct {
	Repo  domain.Repository
	Clock application.Clock
}

type CreateProfileCommand struct {
	FirstName   string
	LastName    string
	Email       string
	LinkedInURL string
}

func (s *Service) Create(ctx context.Context, cmd CreateProfileCommand) (*domain.Profile, error) {
	if cmd.FirstName == "" || cmd.LastName == "" {
		return nil, ErrMissingName
	}
	now := s.Clock.Now()
	p := &domain.Profile{
		ID:          domain.ProfileID(uuid.New().String()),
		FirstName:   cmd.FirstName,
		LastName:    cmd.LastName,
		Email:       cmd.Email,
		LinkedInURL: cmd.LinkedInURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id domain.ProfileID, cmd CreateProfileCommand) (*domain.Profile, error) {
	if cmd.FirstName == "" || cmd.LastName == "" {
		return nil, ErrMissingName
	}
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.FirstName = cmd.FirstName
	p.LastName = cmd.LastName
	p.Email = cmd.Email
	p.LinkedInURL = cmd.LinkedInURL
	p.UpdatedAt = s.Clock.Now()

	if err := s.Repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id domain.ProfileID) (*domain.Profile, error) {
	return s.Repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, limit int) ([]*domain.Profile, error) {
	return s.Repo.List(ctx, limit)
}

func (s *Service) Delete(ctx context.Context, id domain.ProfileID) error {
	return s.Repo.Delete(ctx, id)
}
