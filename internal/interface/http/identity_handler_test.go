package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barangaylink/api/internal/application"
	"github.com/barangaylink/api/internal/domain/entity"
	"github.com/barangaylink/api/internal/domain/repository"
	"github.com/barangaylink/api/pkg/helpers"
	"github.com/barangaylink/api/pkg/validation"
)

// Store stubs shared by the handler tests.

type credStub struct {
	emails []string
	err    error
}

func (s *credStub) EmailExists(_ context.Context, email string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, e := range s.emails {
		if strings.ToLower(e) == email {
			return true, nil
		}
	}
	return false, nil
}

type profileStub struct {
	profiles map[string]*entity.Profile
}

func newProfileStub(profiles ...*entity.Profile) *profileStub {
	m := make(map[string]*entity.Profile, len(profiles))
	for _, p := range profiles {
		m[p.ID] = p
	}
	return &profileStub{profiles: m}
}

func (s *profileStub) EmailExists(_ context.Context, email string) (bool, error) {
	for _, p := range s.profiles {
		if strings.ToLower(p.Email) == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *profileStub) PhoneExists(_ context.Context, phone string) (bool, error) {
	for _, p := range s.profiles {
		if p.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (s *profileStub) GetByID(_ context.Context, id string) (*entity.Profile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (s *profileStub) Escalate(_ context.Context, id string) (*entity.Profile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Role = entity.RoleAdmin
	p.IsAdmin = true
	p.Status = entity.StatusApproved
	return p, nil
}

type barangayStub struct {
	barangays map[string]*entity.Barangay
}

func newBarangayStub(barangays ...*entity.Barangay) *barangayStub {
	m := make(map[string]*entity.Barangay, len(barangays))
	for _, b := range barangays {
		m[b.ID] = b
	}
	return &barangayStub{barangays: m}
}

func (s *barangayStub) GetByID(_ context.Context, id string) (*entity.Barangay, error) {
	b, ok := s.barangays[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return b, nil
}

func identityRouter(creds *credStub, profiles *profileStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()
	logger := helpers.NewLogger("test", "development")
	svc := application.NewIdentityService(creds, profiles, logger, nil, false)
	h := NewIdentityHandler(svc, logger)
	r := gin.New()
	r.POST("/api/identity/check", h.Check)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdentityCheck_RejectsEmptyRequest(t *testing.T) {
	r := identityRouter(&credStub{}, newProfileStub())

	for _, body := range []string{`{}`, `{"email":"","phone":""}`, `{"email":"  "}`} {
		w := postJSON(t, r, "/api/identity/check", body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body=%s", body)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp["code"])
	}
}

func TestIdentityCheck_RejectsMalformedJSON(t *testing.T) {
	r := identityRouter(&credStub{}, newProfileStub())
	w := postJSON(t, r, "/api/identity/check", `{"email": `, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIdentityCheck_ResponseShape(t *testing.T) {
	r := identityRouter(&credStub{}, newProfileStub())
	w := postJSON(t, r, "/api/identity/check", `{"email":"free@x.com"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, key := range []string{"emailTaken", "phoneTaken", "emailExistsAuth", "emailExistsProfiles", "phoneExistsProfiles"} {
		_, ok := resp[key]
		assert.True(t, ok, "missing key %q", key)
	}
}

func TestIdentityCheck_CaseInsensitiveProfileEmail(t *testing.T) {
	profiles := newProfileStub(&entity.Profile{ID: "p1", Email: "Test@X.com"})
	r := identityRouter(&credStub{}, profiles)

	w := postJSON(t, r, "/api/identity/check", `{"email":"test@x.com"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		EmailTaken          bool `json:"emailTaken"`
		EmailExistsAuth     bool `json:"emailExistsAuth"`
		EmailExistsProfiles bool `json:"emailExistsProfiles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.EmailTaken)
	assert.True(t, resp.EmailExistsProfiles)
	assert.False(t, resp.EmailExistsAuth)
}

func TestIdentityCheck_PhoneOnly(t *testing.T) {
	profiles := newProfileStub(&entity.Profile{ID: "p1", Email: "other@x.com", Phone: "555-1234"})
	r := identityRouter(&credStub{}, profiles)

	w := postJSON(t, r, "/api/identity/check", `{"phone":"555-1234"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		EmailTaken          bool `json:"emailTaken"`
		PhoneTaken          bool `json:"phoneTaken"`
		PhoneExistsProfiles bool `json:"phoneExistsProfiles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.PhoneTaken)
	assert.True(t, resp.PhoneExistsProfiles)
	assert.False(t, resp.EmailTaken)
}

func TestIdentityCheck_CredentialStoreHit(t *testing.T) {
	r := identityRouter(&credStub{emails: []string{"Claimed@Y.com"}}, newProfileStub())

	w := postJSON(t, r, "/api/identity/check", `{"email":" claimed@y.com "}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		EmailTaken          bool `json:"emailTaken"`
		EmailExistsAuth     bool `json:"emailExistsAuth"`
		EmailExistsProfiles bool `json:"emailExistsProfiles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.EmailTaken)
	assert.True(t, resp.EmailExistsAuth)
	assert.False(t, resp.EmailExistsProfiles)
}
