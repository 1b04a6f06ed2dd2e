package postgres

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
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
ON CONFLICT (id) DO UPDATE SET
  first_name=EXCLUDED.first_name,
  last_name=EXCLUDED.last_name,
  email=EXCLUDED.email,
  linkedin_url=EXCLUDED.linkedin_url,
  updated_at=EXCLUDED.updated_at;
`
	prompts, err := marshalPrompts(p.LinkedInPrompts)
	if err != nil {
		return err
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	_, err = r.db.ExecContext(ctx, q,
		p.ID, p.FirstName, p.LastName,
		nullString(optional(p.Email)), nullString(optional(p.LinkedInURL)),
		nullString(optional(p.ContentStrategy)), prompts,
		createdAt, updatedAt,
	)
	return err
}

// Get by ID
func (r *ProfileRepository) Get(ctx context.Context, id domain.ProfileID) (*domain.Profile, error) {
	const q = `
SELECT id, first_name, last_name, email, linkedin_url, content_strategy, linkedin_prompts, created_at, updated_at
FROM profiles
WHERE id=$1
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
LIMIT $1;`
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
	const q = `DELETE FROM profiles WHERE id=$1;`
	res, err := r.db.ExecContext(ctx, q, id)
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
	const q = `UPDATE profiles SET content_strategy=$1, updated_at=now() WHERE id=$2;`
	res, err := r.db.ExecContext(ctx, q, strategy, id)
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
	data, err := marshalPrompts(prompts)
	if err != nil {
		return err
	}
	const q = `UPDATE profiles SET linkedin_prompts=$1, updated_at=now() WHERE id=$2;`
	res, err := r.db.ExecContext(ctx, q, data, id)
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
	p.Email = ns(email)
	p.LinkedInURL = ns(linkedin)
	p.ContentStrategy = ns(strategy)
	if len(prompts) > 0 {
		if err := json.Unmarshal(prompts, &p.LinkedInPrompts); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func marshalPrompts(prompts []domain.Prompt) ([]byte, error) {
	if len(prompts) == 0 {
		return nil, nil
	}
	return json.Marshal(prompts)
}

func ns(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
