package application

import (
	"context"
	"strings"

	"github.com/barangaylink/api/internal/domain/entity"
	"github.com/barangaylink/api/internal/domain/repository"
)

// In-memory fakes for the store interfaces. Lookups mirror the SQL
// implementations: email matching is case-insensitive, phone is exact.

type fakeCredentialStore struct {
	emails []string
	err    error
	calls  int
}

func (f *fakeCredentialStore) EmailExists(_ context.Context, email string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	for _, e := range f.emails {
		if strings.ToLower(e) == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeProfileDirectory struct {
	profiles    map[string]*entity.Profile
	emailErr    error
	phoneErr    error
	escalateErr error
}

func newFakeProfileDirectory(profiles ...*entity.Profile) *fakeProfileDirectory {
	m := make(map[string]*entity.Profile, len(profiles))
	for _, p := range profiles {
		m[p.ID] = p
	}
	return &fakeProfileDirectory{profiles: m}
}

func (f *fakeProfileDirectory) EmailExists(_ context.Context, email string) (bool, error) {
	if f.emailErr != nil {
		return false, f.emailErr
	}
	for _, p := range f.profiles {
		if strings.ToLower(p.Email) == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProfileDirectory) PhoneExists(_ context.Context, phone string) (bool, error) {
	if f.phoneErr != nil {
		return false, f.phoneErr
	}
	for _, p := range f.profiles {
		if p.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProfileDirectory) GetByID(_ context.Context, id string) (*entity.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileDirectory) Escalate(_ context.Context, id string) (*entity.Profile, error) {
	if f.escalateErr != nil {
		return nil, f.escalateErr
	}
	p, ok := f.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Role = entity.RoleAdmin
	p.IsAdmin = true
	p.Status = entity.StatusApproved
	cp := *p
	return &cp, nil
}

type fakeBarangayDirectory struct {
	barangays map[string]*entity.Barangay
	err       error
}

func newFakeBarangayDirectory(barangays ...*entity.Barangay) *fakeBarangayDirectory {
	m := make(map[string]*entity.Barangay, len(barangays))
	for _, b := range barangays {
		m[b.ID] = b
	}
	return &fakeBarangayDirectory{barangays: m}
}

func (f *fakeBarangayDirectory) GetByID(_ context.Context, id string) (*entity.Barangay, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.barangays[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *b
	return &cp, nil
}
