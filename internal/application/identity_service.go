package application

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/barangaylink/api/internal/audit"
	"github.com/barangaylink/api/internal/domain/repository"
	"github.com/barangaylink/api/pkg/apperrors"
)

// Probe source names, reported per-source so callers can tell where a hit
// came from without this service deciding what to disclose.
const (
	sourceCredentialStore = "credential_store"
	sourceProfileEmail    = "profile_email"
	sourceProfilePhone    = "profile_phone"
)

// IdentityService answers whether a candidate email or phone is already
// claimed in either of the two identity stores. It never treats a single
// store as the source of truth: "taken" is the OR across stores.
type IdentityService struct {
	Credentials repository.CredentialStore
	Profiles    repository.ProfileDirectory
	Logger      *logrus.Logger
	Audit       *audit.Recorder

	// FailClosed controls the probe failure policy. Open (default): a failed
	// probe counts as no hit, so a duplicate can slip through while a store
	// is unreachable. Closed: a failed probe counts as a hit.
	FailClosed bool
}

func NewIdentityService(creds repository.CredentialStore, profiles repository.ProfileDirectory, logger *logrus.Logger, rec *audit.Recorder, failClosed bool) *IdentityService {
	return &IdentityService{Credentials: creds, Profiles: profiles, Logger: logger, Audit: rec, FailClosed: failClosed}
}

// AvailabilityReport carries the aggregate verdict and the per-source hits.
type AvailabilityReport struct {
	EmailTaken          bool
	PhoneTaken          bool
	EmailExistsAuth     bool
	EmailExistsProfiles bool
	PhoneExistsProfiles bool
}

// CheckAvailability runs the store probes for the supplied identifiers and
// aggregates the verdict. This is a point-in-time check with no reservation:
// two concurrent callers can both see "not taken". No store is mutated.
func (s *IdentityService) CheckAvailability(ctx context.Context, email, phone string) (*AvailabilityReport, error) {
	if s.Credentials == nil || s.Profiles == nil {
		return nil, apperrors.New(apperrors.KindConfiguration, "identity stores not configured")
	}

	email = NormalizeEmail(email)
	phone = NormalizePhone(phone)
	if email == "" && phone == "" {
		return nil, apperrors.New(apperrors.KindValidation, "email or phone is required")
	}

	report := &AvailabilityReport{}

	// The probes are independent reads against independent stores; fan them
	// out and let each one apply the failure policy on its own.
	g, gctx := errgroup.WithContext(ctx)
	if email != "" {
		g.Go(func() error {
			hit, err := s.Credentials.EmailExists(gctx, email)
			report.EmailExistsAuth = s.applyPolicy(gctx, sourceCredentialStore, hit, err)
			return nil
		})
		g.Go(func() error {
			hit, err := s.Profiles.EmailExists(gctx, email)
			report.EmailExistsProfiles = s.applyPolicy(gctx, sourceProfileEmail, hit, err)
			return nil
		})
	}
	if phone != "" {
		g.Go(func() error {
			hit, err := s.Profiles.PhoneExists(gctx, phone)
			report.PhoneExistsProfiles = s.applyPolicy(gctx, sourceProfilePhone, hit, err)
			return nil
		})
	}
	_ = g.Wait()

	report.EmailTaken = report.EmailExistsAuth || report.EmailExistsProfiles
	report.PhoneTaken = report.PhoneExistsProfiles
	return report, nil
}

// applyPolicy resolves a probe result under the failure policy. A failed
// probe is logged and audited but never aborts the overall check.
func (s *IdentityService) applyPolicy(ctx context.Context, source string, hit bool, err error) bool {
	if err == nil {
		return hit
	}
	if s.Logger != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{
			"source":      source,
			"fail_closed": s.FailClosed,
		}).Warn("identity probe failed")
	}
	s.Audit.Record(ctx, audit.Event{
		Type:   audit.EventProbeFailure,
		Source: source,
		Detail: err.Error(),
	})
	return s.FailClosed
}
