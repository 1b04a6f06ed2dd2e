package mysql

import (
	"context"
	"database/sql"
	"time"

	domain "github.com/mylance/mylance-api/internal/domain/strategy"
)

type StrategyRepository struct {
	db *sql.DB
}

func NewStrategyRepository(db *sql.DB) *StrategyRepository {
	return &StrategyRepository{db: db}
}

// Save upserts the single global strategy row
func (r *StrategyRepository) Save(ctx context.Context, s *domain.Strategy) error {
	const q = `
INSERT INTO thought_leadership (id, strategy, updated_at)
VALUES (1, ?, ?)
ON DUPLICATE KEY UPDATE
  strategy=VALUES(strategy),
  updated_at=VALUES(updated_at);
`
	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, q, s.Text, updatedAt)
	return err
}

// Get returns the global strategy; an empty strategy when none was saved yet
func (r *StrategyRepository) Get(ctx context.Context) (*domain.Strategy, error) {
	const q = `SELECT strategy, updated_at FROM thought_leadership WHERE id=1 LIMIT 1;`
	row := r.db.QueryRowContext(ctx, q)

	var s domain.Strategy
	if err := row.Scan(&s.Text, &s.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return &domain.Strategy{}, nil
		}
		return nil, err
	}
	return &s, nil
}
