package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/mylance/mylance-api/internal/domain/brand"
)

func strPtr(s string) *string { return &s }

func TestBrandAnalysisSaveUpserts(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewBrandAnalysisRepository(db)

	mock.ExpectExec(`INSERT INTO brand_analysis`).
		WithArgs(
			"a-1", "p-1",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	a := &domain.Analysis{
		ID:             "a-1",
		ProfileID:      "p-1",
		IdealCustomer:  strPtr("solo consultants"),
		ContentPillars: []string{"fractional leadership", "pricing"},
	}
	require.NoError(t, repo.Save(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandAnalysisGetByProfile(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewBrandAnalysisRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "profile_id", "ideal_customer", "icp_pain_points", "unique_value",
		"proof_points", "energizing_topics", "decision_maker",
		"content_pillars", "key_topics", "created_at", "updated_at",
	}).AddRow(
		"a-1", "p-1", "solo consultants", nil, "10 years operating startups",
		nil, nil, "VP of Engineering",
		"{fractional leadership,pricing}", "{hiring}", now, now,
	)
	mock.ExpectQuery(`SELECT .* FROM brand_analysis`).
		WithArgs("p-1").
		WillReturnRows(rows)

	a, err := repo.GetByProfile(context.Background(), "p-1")
	require.NoError(t, err)
	require.NotNil(t, a)

	require.NotNil(t, a.IdealCustomer)
	assert.Equal(t, "solo consultants", *a.IdealCustomer)
	assert.Nil(t, a.ICPPainPoints)
	assert.Equal(t, []string{"fractional leadership", "pricing"}, a.ContentPillars)
	assert.Equal(t, []string{"hiring"}, a.KeyTopics)
}

func TestBrandAnalysisGetByProfileMissing(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewBrandAnalysisRepository(db)

	mock.ExpectQuery(`SELECT .* FROM brand_analysis`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	a, err := repo.GetByProfile(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, a)
}
