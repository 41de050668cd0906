package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barangaylink/api/internal/domain/entity"
	"github.com/barangaylink/api/pkg/apperrors"
	"github.com/barangaylink/api/pkg/helpers"
)

func newEscalationService(profiles *fakeProfileDirectory, barangays *fakeBarangayDirectory) *EscalationService {
	logger := helpers.NewLogger("test", "development")
	return NewEscalationService(profiles, barangays, nil, nil, logger)
}

func pendingProfile(id string) *entity.Profile {
	return &entity.Profile{
		ID:     id,
		Email:  id + "@example.ph",
		Role:   "resident",
		Status: entity.StatusPending,
	}
}

func TestEscalate_PreconditionOrder(t *testing.T) {
	profiles := newFakeProfileDirectory(pendingProfile("U1"))
	barangays := newFakeBarangayDirectory(&entity.Barangay{ID: "B1", SubmitterID: "U1"})
	svc := newEscalationService(profiles, barangays)
	ctx := context.Background()

	t.Run("unauthenticated caller", func(t *testing.T) {
		err := svc.Escalate(ctx, "", "U1", "B1")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.KindAuthentication))
		assert.Equal(t, entity.StatusPending, profiles.profiles["U1"].Status)
	})

	t.Run("missing target", func(t *testing.T) {
		err := svc.Escalate(ctx, "caller", "", "B1")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	})

	t.Run("unknown barangay", func(t *testing.T) {
		err := svc.Escalate(ctx, "caller", "U1", "missing")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
		assert.Equal(t, entity.StatusPending, profiles.profiles["U1"].Status)
	})
}

func TestEscalate_OwnershipMismatchDoesNotMutate(t *testing.T) {
	profiles := newFakeProfileDirectory(pendingProfile("U1"), pendingProfile("U2"))
	barangays := newFakeBarangayDirectory(&entity.Barangay{ID: "B1", SubmitterID: "U1"})
	svc := newEscalationService(profiles, barangays)

	err := svc.Escalate(context.Background(), "caller", "U2", "B1")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindAuthorization))

	// Neither profile moved.
	assert.Equal(t, entity.StatusPending, profiles.profiles["U1"].Status)
	assert.Equal(t, entity.StatusPending, profiles.profiles["U2"].Status)
	assert.False(t, profiles.profiles["U2"].IsAdmin)
}

func TestEscalate_SubmitterIsEscalated(t *testing.T) {
	profiles := newFakeProfileDirectory(pendingProfile("U1"))
	barangays := newFakeBarangayDirectory(&entity.Barangay{ID: "B1", Name: "San Roque", SubmitterID: "U1"})
	svc := newEscalationService(profiles, barangays)

	err := svc.Escalate(context.Background(), "caller", "U1", "B1")
	require.NoError(t, err)

	got := profiles.profiles["U1"]
	assert.Equal(t, entity.RoleAdmin, got.Role)
	assert.True(t, got.IsAdmin)
	assert.Equal(t, entity.StatusApproved, got.Status)
}

func TestEscalate_WithoutBarangaySkipsOwnership(t *testing.T) {
	// No resource id: any authenticated caller can escalate any target.
	// Intentional; the ownership gate only applies when a barangay is named.
	profiles := newFakeProfileDirectory(pendingProfile("U2"))
	svc := newEscalationService(profiles, newFakeBarangayDirectory())

	err := svc.Escalate(context.Background(), "caller", "U2", "")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, profiles.profiles["U2"].Role)
	assert.Equal(t, entity.StatusApproved, profiles.profiles["U2"].Status)
}

func TestEscalate_Idempotent(t *testing.T) {
	profiles := newFakeProfileDirectory(pendingProfile("U1"))
	barangays := newFakeBarangayDirectory(&entity.Barangay{ID: "B1", SubmitterID: "U1"})
	svc := newEscalationService(profiles, barangays)
	ctx := context.Background()

	require.NoError(t, svc.Escalate(ctx, "caller", "U1", "B1"))
	first := *profiles.profiles["U1"]

	require.NoError(t, svc.Escalate(ctx, "caller", "U1", "B1"))
	assert.Equal(t, first, *profiles.profiles["U1"])
}

func TestEscalate_UpdateFailureIsInternal(t *testing.T) {
	profiles := newFakeProfileDirectory(pendingProfile("U1"))
	profiles.escalateErr = errors.New("connection reset")
	svc := newEscalationService(profiles, newFakeBarangayDirectory())

	err := svc.Escalate(context.Background(), "caller", "U1", "")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindInternal))
}

func TestEscalate_BarangayLookupFailureIsInternal(t *testing.T) {
	profiles := newFakeProfileDirectory(pendingProfile("U1"))
	barangays := newFakeBarangayDirectory()
	barangays.err = errors.New("connection reset")
	svc := newEscalationService(profiles, barangays)

	err := svc.Escalate(context.Background(), "caller", "U1", "B1")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindInternal))
	assert.Equal(t, entity.StatusPending, profiles.profiles["U1"].Status)
}
