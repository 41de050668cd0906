package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/barangaylink/api/internal/domain/entity"
	"github.com/barangaylink/api/internal/domain/repository"
)

type BarangayDirectory struct {
	pool *pgxpool.Pool
}

func NewBarangayDirectory(pool *pgxpool.Pool) *BarangayDirectory {
	return &BarangayDirectory{pool: pool}
}

func (r *BarangayDirectory) GetByID(ctx context.Context, id string) (*entity.Barangay, error) {
	b := &entity.Barangay{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, submitter_id, created_at
		FROM barangays
		WHERE id = $1
	`, id).Scan(&b.ID, &b.Name, &b.SubmitterID, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

var _ repository.BarangayDirectory = (*BarangayDirectory)(nil)
