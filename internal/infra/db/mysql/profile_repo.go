package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	domain "github.com/mylance/mylance-api/internal/domain/profiles"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Save insert/update Profile record
func (r *ProfileRepository) Save(ctx context.Context, p *domain.Profile) error {
	const q = `
INSERT INTO profiles
  (id, first_name, last_name, email, linkedin_url, content_strategy, linkedin_prompts, created_at, updated_at)
VALUES (?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
  first_name=VALUES(first_name),
  last_name=VALUES(last_name),
  email=VALUES(email),
  linkedin_url=VALUES(linkedin_url),
  updated_at=VALUES(updated_at);
`
	var prompts any
	if len(p.LinkedInPrompts) > 0 {
		data, err := json.Marshal(p.LinkedInPrompts)
		if err != nil {
			return err
		}
		prompts = data
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	_, err := r.db.ExecContext(ctx, q,
		p.ID, p.FirstName, p.LastName,
		emptyToNull(p.Email), emptyToNull(p.LinkedInURL), emptyToNull(p.ContentStrategy),
		prompts, createdAt, updatedAt,
	)
	return err
}

// Get by ID
func (r *ProfileRepository) Get(ctx context.Context, id domain.ProfileID) (*domain.Profile, error) {
	const q = `
SELECT id, first_name, last_name, email, linkedin_url, content_strategy, linkedin_prompts, created_at, updated_at
FROM profiles
WHERE id=?
LIMIT 1;`
	return scanProfile(r.db.QueryRowContext(ctx, q, id))
}

// List newest profiles first
func (r *ProfileRepository) List(ctx context.Context, limit int) ([]*domain.Profile, error) {
	if limit <= 0 {
		limit = 50
	}
	const q = `
SELECT id, first_name, last_name, email, linkedin_url, content_strategy, linkedin_prompts, created_at, updated_at
FROM profiles
ORDER BY created_at DESC, id DESC
LIMIT ?;`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes the profile; brand_analysis rows cascade
func (r *ProfileRepository) Delete(ctx context.Context, id domain.ProfileID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id=?;`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateStrategy stores a generated or hand-edited content strategy
func (r *ProfileRepository) UpdateStrategy(ctx context.Context, id domain.ProfileID, strategy string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET content_strategy=?, updated_at=NOW() WHERE id=?;`, strategy, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdatePrompts stores the generated LinkedIn prompts
func (r *ProfileRepository) UpdatePrompts(ctx context.Context, id domain.ProfileID, prompts []domain.Prompt) error {
	data, err := json.Marshal(prompts)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET linkedin_prompts=?, updated_at=NOW() WHERE id=?;`, data, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	var email, linkedin, strategy sql.NullString
	var prompts []byte
	if err := row.Scan(
		&p.ID, &p.FirstName, &p.LastName,
		&email, &linkedin, &strategy, &prompts,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if email.Valid {
		p.Email = email.String
	}
	if linkedin.Valid {
		p.LinkedInURL = linkedin.String
	}
	if strategy.Valid {
		p.ContentStrategy = strategy.String
	}
	if len(prompts) > 0 {
		if err := json.Unmarshal(prompts, &p.LinkedInPrompts); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func emptyToNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}
