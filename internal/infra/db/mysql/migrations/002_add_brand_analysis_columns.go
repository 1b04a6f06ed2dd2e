package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mylance/mylance-api/internal/infra/db/migrate"
)

// brandAnalysisColumns mirrors the Postgres migration of the same version.
// MySQL has no array type, so the two list-valued attributes are JSON.
var brandAnalysisColumns = []struct {
	name string
	typ  string
}{
	{"ideal_customer", "TEXT"},
	{"icp_pain_points", "TEXT"},
	{"unique_value", "TEXT"},
	{"proof_points", "TEXT"},
	{"energizing_topics", "TEXT"},
	{"decision_maker", "TEXT"},
	{"content_pillars", "JSON"},
	{"key_topics", "JSON"},
}

// columnExists consults information_schema for the current database.
func columnExists(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	const q = `
SELECT COUNT(*) FROM information_schema.columns
WHERE table_schema = DATABASE() AND table_name = ? AND column_name = ?;`
	var n int
	if err := tx.QueryRowContext(ctx, q, table, column).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// MySQL has no ADD COLUMN IF NOT EXISTS, so each column gets an explicit
// existence check first. A column that is already present is skipped, which
// keeps re-application a no-op. Every other engine error propagates.
func up002(ctx context.Context, tx *sql.Tx) error {
	for _, col := range brandAnalysisColumns {
		exists, err := columnExists(ctx, tx, "brand_analysis", col.name)
		if err != nil {
			return fmt.Errorf("checking column %s: %w", col.name, err)
		}
		if exists {
			continue
		}
		stmt := fmt.Sprintf(`ALTER TABLE brand_analysis ADD COLUMN %s %s NULL;`, col.name, col.typ)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("adding column %s: %w", col.name, err)
		}
	}
	return nil
}

func down002(ctx context.Context, tx *sql.Tx) error {
	for _, col := range brandAnalysisColumns {
		exists, err := columnExists(ctx, tx, "brand_analysis", col.name)
		if err != nil {
			return fmt.Errorf("checking column %s: %w", col.name, err)
		}
		if !exists {
			continue
		}
		stmt := fmt.Sprintf(`ALTER TABLE brand_analysis DROP COLUMN %s;`, col.name)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("dropping column %s: %w", col.name, err)
		}
	}
	return nil
}

func init() {
	Migrations.MustRegister(
		&migrate.Migration{
			Version:  2,
			Forward:  up002,
			Backward: down002,
		},
	)
}
