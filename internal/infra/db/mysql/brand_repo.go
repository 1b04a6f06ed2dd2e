package mysql

import (
	"context"
	"database/sql"
	"time"

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
VALUES (?,?,?,?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
  ideal_customer=VALUES(ideal_customer),
  icp_pain_points=VALUES(icp_pain_points),
  unique_value=VALUES(unique_value),
  proof_points=VALUES(proof_points),
  energizing_topics=VALUES(energizing_topics),
  decision_maker=VALUES(decision_maker),
  content_pillars=VALUES(content_pillars),
  key_topics=VALUES(key_topics),
  updated_at=VALUES(updated_at);
`
	pillars, err := jsonList(a.ContentPillars)
	if err != nil {
		return err
	}
	keyTopics, err := jsonList(a.KeyTopics)
	if err != nil {
		return err
	}
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	updatedAt := a.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	_, err = r.db.ExecContext(ctx, q,
		a.ID, a.ProfileID,
		nullString(a.IdealCustomer), nullString(a.ICPPainPoints),
		nullString(a.UniqueValue), nullString(a.ProofPoints),
		nullString(a.EnergizingTopics), nullString(a.DecisionMaker),
		pillars, keyTopics,
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
WHERE profile_id=?
LIMIT 1;`
	row := r.db.QueryRowContext(ctx, q, profileID)

	var a domain.Analysis
	var ideal, pain, value, proof, topics, maker sql.NullString
	var pillars, keyTopics []byte
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

	var err error
	if a.ContentPillars, err = fromJSONList(pillars); err != nil {
		return nil, err
	}
	if a.KeyTopics, err = fromJSONList(keyTopics); err != nil {
		return nil, err
	}
	return &a, nil
}
