package export

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mylance/mylance-api/internal/domain/brand"
	"github.com/mylance/mylance-api/internal/domain/profiles"
)

type fakeProfiles struct {
	profile *profiles.Profile
}

func (f *fakeProfiles) Save(context.Context, *profiles.Profile) error { return nil }

func (f *fakeProfiles) Get(_ context.Context, id profiles.ProfileID) (*profiles.Profile, error) {
	if f.profile == nil || f.profile.ID != id {
		return nil, sql.ErrNoRows
	}
	return f.profile, nil
}

func (f *fakeProfiles) List(context.Context, int) ([]*profiles.Profile, error) { return nil, nil }
func (f *fakeProfiles) Delete(context.Context, profiles.ProfileID) error       { return nil }
func (f *fakeProfiles) UpdateStrategy(context.Context, profiles.ProfileID, string) error {
	return nil
}
func (f *fakeProfiles) UpdatePrompts(context.Context, profiles.ProfileID, []profiles.Prompt) error {
	return nil
}

type fakeBrand struct {
	analysis *brand.Analysis
}

func (f *fakeBrand) Save(context.Context, *brand.Analysis) error { return nil }
func (f *fakeBrand) GetByProfile(context.Context, string) (*brand.Analysis, error) {
	return f.analysis, nil
}

type fakeStore struct {
	key  string
	body any
}

func (f *fakeStore) UploadJSON(_ context.Context, key string, v any) (string, error) {
	f.key = key
	f.body = v
	return "https://store.example/" + key, nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestExportUploadsSnapshot(t *testing.T) {
	store := &fakeStore{}
	ts := time.Date(2025, 7, 4, 9, 30, 0, 0, time.UTC)
	svc := &Service{
		Profiles: &fakeProfiles{profile: &profiles.Profile{ID: "p-1", FirstName: "Ada"}},
		Brand:    &fakeBrand{analysis: &brand.Analysis{ProfileID: "p-1"}},
		Store:    store,
		Clock:    fixedClock{ts},
	}

	url, err := svc.Export(context.Background(), "p-1")
	require.NoError(t, err)

	assert.Equal(t, "exports/p-1/20250704-093000.json", store.key)
	assert.Equal(t, "https://store.example/exports/p-1/20250704-093000.json", url)

	snap, ok := store.body.(Snapshot)
	require.True(t, ok)
	assert.Equal(t, "Ada", snap.Profile.FirstName)
	assert.Equal(t, "p-1", snap.Analysis.ProfileID)
	assert.Equal(t, "2025-07-04T09:30:00Z", snap.ExportedAt)
}

func TestExportUnknownProfile(t *testing.T) {
	svc := &Service{
		Profiles: &fakeProfiles{},
		Brand:    &fakeBrand{},
		Store:    &fakeStore{},
		Clock:    fixedClock{time.Now()},
	}

	_, err := svc.Export(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
