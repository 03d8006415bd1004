package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/myagency/backend/internal/model"
)

// PgCareerRepository is the PostgreSQL implementation of CareerRepository.
type PgCareerRepository struct {
	pool *pgxpool.Pool
}

// NewPgCareerRepository creates a PgCareerRepository backed by the given pool.
func NewPgCareerRepository(pool *pgxpool.Pool) *PgCareerRepository {
	return &PgCareerRepository{pool: pool}
}

var _ CareerRepository = (*PgCareerRepository)(nil)

// Save inserts a new career_applications row and populates a.ID and timestamps
// from the database RETURNING clause.
func (r *PgCareerRepository) Save(ctx context.Context, a *model.CareerApplication) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO career_applications (name, email, phone, position, message, cv, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		a.Name, a.Email, a.Phone, a.Position, a.Message, a.CV, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// GetByID fetches a single application, returning ErrNotFound if the id does not exist.
func (r *PgCareerRepository) GetByID(ctx context.Context, id string) (*model.CareerApplication, error) {
	var a model.CareerApplication
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, position, message, cv, status, created_at, updated_at
		 FROM career_applications WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.Position, &a.Message, &a.CV, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns all applications, newest first.
func (r *PgCareerRepository) List(ctx context.Context) ([]*model.CareerApplication, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, position, message, cv, status, created_at, updated_at
		 FROM career_applications ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []*model.CareerApplication
	for rows.Next() {
		var a model.CareerApplication
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.Position, &a.Message, &a.CV, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		apps = append(apps, &a)
	}
	return apps, rows.Err()
}

// UpdateStatus sets the status column and refreshes updated_at.
func (r *PgCareerRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE career_applications SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
