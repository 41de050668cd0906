package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/barangaylink/api/internal/domain/repository"
)

// CredentialStore queries the authentication registry over its own pool.
// The registry is read-only here; nothing in this service writes to it.
type CredentialStore struct {
	pool *pgxpool.Pool
}

func NewCredentialStore(pool *pgxpool.Pool) *CredentialStore {
	return &CredentialStore{pool: pool}
}

func (s *CredentialStore) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM accounts WHERE lower(email) = $1
		)
	`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

var _ repository.CredentialStore = (*CredentialStore)(nil)
