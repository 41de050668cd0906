package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/barangaylink/api/internal/domain/entity"
	"github.com/barangaylink/api/internal/domain/repository"
)

type ProfileDirectory struct {
	pool *pgxpool.Pool
}

func NewProfileDirectory(pool *pgxpool.Pool) *ProfileDirectory {
	return &ProfileDirectory{pool: pool}
}

const profileColumns = `
	id, email, COALESCE(phone, ''), COALESCE(name, ''), role, is_admin,
	status, COALESCE(barangay_id::text, ''), created_at, updated_at
`

func scanProfile(row pgx.Row) (*entity.Profile, error) {
	p := &entity.Profile{}
	err := row.Scan(&p.ID, &p.Email, &p.Phone, &p.Name, &p.Role, &p.IsAdmin,
		&p.Status, &p.BarangayID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProfileDirectory) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM profiles WHERE lower(email) = $1
		)
	`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ProfileDirectory) PhoneExists(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM profiles WHERE phone = $1
		)
	`, phone).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ProfileDirectory) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE id = $1
	`, id)
	return scanProfile(row)
}

// Escalate elevates the target profile in a single overwrite. Repeating the
// update converges to the same row state.
func (r *ProfileDirectory) Escalate(ctx context.Context, id string) (*entity.Profile, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE profiles
		SET role = $2, is_admin = true, status = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+profileColumns+`
	`, id, entity.RoleAdmin, entity.StatusApproved)
	return scanProfile(row)
}

var _ repository.ProfileDirectory = (*ProfileDirectory)(nil)
