package export

import (
	"context"
	"fmt"

	"github.com/mylance/mylance-api/internal/application"
	"github.com/mylance/mylance-api/internal/domain/brand"
	"github.com/mylance/mylance-api/internal/domain/profiles"
)

// ObjectStore port for snapshot uploads
type ObjectStore interface {
	UploadJSON(ctx context.Context, key string, v any) (string, error)
}

// Snapshot is the exported view of a profile and its brand analysis.
type Snapshot struct {
	Profile    *profiles.Profile `json:"profile"`
	Analysis   *brand.Analysis   `json:"brand_analysis,omitempty"`
	ExportedAt string            `json:"exported_at"`
}

// Service exports profile snapshots to object storage
type Service struct {
	Profiles profiles.Repository
	Brand    brand.Repository
	Store    ObjectStore
	Clock    application.Clock
}

// Export writes a JSON snapshot and returns its URL.
func (s *Service) Export(ctx context.Context, profileID profiles.ProfileID) (string, error) {
	p, err := s.Profiles.Get(ctx, profileID)
	if err != nil {
		return "", err
	}
	analysis, err := s.Brand.GetByProfile(ctx, string(profileID))
	if err != nil {
		return "", err
	}

	now := s.Clock.Now().UTC()
	snap := Snapshot{
		Profile:    p,
		Analysis:   analysis,
		ExportedAt: now.Format("2006-01-02T15:04:05Z"),
	}

	key := fmt.Sprintf("exports/%s/%s.json", profileID, now.Format("20060102-150405"))
	return s.Store.UploadJSON(ctx, key, snap)
}
