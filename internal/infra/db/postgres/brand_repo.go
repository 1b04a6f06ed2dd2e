package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	domain "github.com/mylance/mylance-api/internal/domain/brand"
)

type BrandAnalysisRepository struct {
	db *sql.DB
}

func NewBrandAnalysisRepository(db *sql.DB) *BrandAnalysisRepository {
	return &BrandAnalysisRepository{db: db}
}

// Save inserts or updates the analysis for a profile (one row per profile)
func (r *BrandAnalysisRepository) Save(ctx context.Context, a *domain.Analysis) error {
	const q = `
INSERT INTO brand_analysis
  (id, profile_id, ideal_customer, icp_pain_points, unique_value, proof_points,
   energizing_topics, decision_maker, content_pillars, key_topics, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
ON CONFLICT (profile_id) DO UPDATE SET
  ideal_customer=EXCLUDED.ideal_customer,
  icp_pain_points=EXCLUDED.icp_pain_points,
  unique_value=EXCLUDED.unique_value,
  proof_points=EXCLUDED.proof_points,
  energizing_topics=EXCLUDED.energizing_topics,
  decision_maker=EXCLUDED.decision_maker,
  content_pillars=EXCLUDED.content_pillars,
  key_topics=EXCLUDED.key_topics,
  updated_at=EXCLUDED.updated_at;
`
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	updatedAt := a.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	_, err := r.db.ExecContext(ctx, q,
		a.ID, a.ProfileID,
		nullString(a.IdealCustomer), nullString(a.ICPPainPoints),
		nullString(a.UniqueValue), nullString(a.ProofPoints),
		nullString(a.EnergizingTopics), nullString(a.DecisionMaker),
		pq.Array(a.ContentPillars), pq.Array(a.KeyTopics),
		createdAt, updatedAt,
	)
	return err
}

// GetByProfile returns the analysis for a profile, or nil when none was saved yet
func (r *BrandAnalysisRepository) GetByProfile(ctx context.Context, profileID string) (*domain.Analysis, error) {
	const q = `
SELECT id, profile_id, ideal_customer, icp_pain_points, unique_value, proof_points,
       energizing_topics, decision_maker, content_pillars, key_topics, created_at, updated_at
FROM brand_analysis
WHERE profile_id=$1
LIMIT 1;`
	row := r.db.QueryRowContext(ctx, q, profileID)

	var a domain.Analysis
	var ideal, pain, value, proof, topics, maker sql.NullString
	var pillars, keyTopics pq.StringArray
	if err := row.Scan(
		&a.ID, &a.ProfileID,
		&ideal, &pain, &value, &proof, &topics, &maker,
		&pillars, &keyTopics,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	a.IdealCustomer = fromNull(ideal)
	a.ICPPainPoints = fromNull(pain)
	a.UniqueValue = fromNull(value)
	a.ProofPoints = fromNull(proof)
	a.EnergizingTopics = fromNull(topics)
	a.DecisionMaker = fromNull(maker)
	a.ContentPillars = []string(pillars)
	a.KeyTopics = []string(keyTopics)
	return &a, nil
}
