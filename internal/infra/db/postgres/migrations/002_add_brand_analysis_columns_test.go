package migrations

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUp002AddsEveryColumnGuarded(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	for _, col := range brandAnalysisColumns {
		// The existence guard is what makes re-application a no-op
		// instead of a duplicate-column error.
		pattern := `ALTER TABLE brand_analysis ADD COLUMN IF NOT EXISTS ` +
			regexp.QuoteMeta(col.name) + ` ` + regexp.QuoteMeta(col.typ) + ` NULL`
		mock.ExpectExec(pattern).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	tx, err := db.Begin()
	require.NoError(t, err)

	require.NoError(t, up002(context.Background(), tx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUp002ColumnSet(t *testing.T) {
	want := []string{
		"ideal_customer", "icp_pain_points", "unique_value", "proof_points",
		"energizing_topics", "decision_maker", "content_pillars", "key_topics",
	}
	require.Len(t, brandAnalysisColumns, len(want))
	for i, col := range brandAnalysisColumns {
		assert.Equal(t, want[i], col.name)
	}

	// The two list-valued attributes are Postgres text arrays, the rest plain text.
	for _, col := range brandAnalysisColumns {
		switch col.name {
		case "content_pillars", "key_topics":
			assert.Equal(t, "TEXT[]", col.typ)
		default:
			assert.Equal(t, "TEXT", col.typ)
		}
	}
}

func TestUp002PropagatesEngineError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tableMissing := errors.New(`pq: relation "brand_analysis" does not exist`)

	mock.ExpectBegin()
	mock.ExpectExec(`ALTER TABLE brand_analysis ADD COLUMN IF NOT EXISTS ideal_customer`).
		WillReturnError(tableMissing)

	tx, err := db.Begin()
	require.NoError(t, err)

	err = up002(context.Background(), tx)
	require.Error(t, err)
	assert.ErrorIs(t, err, tableMissing)
}

func TestDown002DropsEveryColumnGuarded(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	for _, col := range brandAnalysisColumns {
		mock.ExpectExec(`ALTER TABLE brand_analysis DROP COLUMN IF EXISTS ` + regexp.QuoteMeta(col.name)).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	tx, err := db.Begin()
	require.NoError(t, err)

	require.NoError(t, down002(context.Background(), tx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
