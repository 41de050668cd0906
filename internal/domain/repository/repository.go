package repository

import (
	"context"
	"errors"

	"github.com/barangaylink/api/internal/domain/entity"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("not found")

// CredentialStore queries the canonical authentication registry.
// Callers pass already-normalized (trimmed, lower-cased) emails.
type CredentialStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
}

// ProfileDirectory reads and mutates the application's profile records.
type ProfileDirectory interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	// Escalate sets role=admin, is_admin=true, status=approved on the target
	// profile and returns the updated row. Last-writer-wins; safe to repeat.
	Escalate(ctx context.Context, id string) (*entity.Profile, error)
}

// BarangayDirectory reads barangay records. Read-only to this service.
type BarangayDirectory interface {
	GetByID(ctx context.Context, id string) (*entity.Barangay, error)
}
