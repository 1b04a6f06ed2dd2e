package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mylance/mylance-api/internal/infra/db/migrate"
)

// brandAnalysisColumns are the customer-data attributes stored per profile.
// Every column is nullable with no default: a profile may have saved any
// subset of them, and rows created before this migration stay valid.
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
	{"content_pillars", "TEXT[]"},
	{"key_topics", "TEXT[]"},
}

// Each column is added on its own with IF NOT EXISTS, so re-running the
// migration against a table that already has some (or all) of the columns
// is a no-op rather than an error. Anything else the engine reports
// (missing table, privileges, an existing column of another type)
// propagates to the caller.
func up002(ctx context.Context, tx *sql.Tx) error {
	for _, col := range brandAnalysisColumns {
		stmt := fmt.Sprintf(
			`ALTER TABLE brand_analysis ADD COLUMN IF NOT EXISTS %s %s NULL;`,
			col.name, col.typ,
		)
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("adding column %s: %w", col.name, err)
		}
	}
	return nil
}

func down002(ctx context.Context, tx *sql.Tx) error {
	for _, col := range brandAnalysisColumns {
		stmt := fmt.Sprintf(
			`ALTER TABLE brand_analysis DROP COLUMN IF EXISTS %s;`,
			col.name,
		)
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
