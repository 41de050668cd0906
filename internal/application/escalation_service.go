package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/barangaylink/api/internal/audit"
	"github.com/barangaylink/api/internal/domain/entity"
	"github.com/barangaylink/api/internal/domain/repository"
	"github.com/barangaylink/api/pkg/apperrors"
	"github.com/barangaylink/api/pkg/helpers"
	"github.com/barangaylink/api/pkg/mailer"
	mailtpl "github.com/barangaylink/api/pkg/mailer/templates"
)

// EscalationService elevates a profile to barangay administrator, gated by
// the submitter-ownership invariant when a barangay id is supplied.
type EscalationService struct {
	Profiles  repository.ProfileDirectory
	Barangays repository.BarangayDirectory
	Publisher *helpers.RabbitPublisher
	Audit     *audit.Recorder
	Logger    *logrus.Logger
}

func NewEscalationService(profiles repository.ProfileDirectory, barangays repository.BarangayDirectory, pub *helpers.RabbitPublisher, rec *audit.Recorder, logger *logrus.Logger) *EscalationService {
	return &EscalationService{Profiles: profiles, Barangays: barangays, Publisher: pub, Audit: rec, Logger: logger}
}

// Escalate applies the preconditions in order and, if they hold, performs the
// single profile overwrite. When barangayID is empty the ownership check is
// skipped entirely and the target is escalated unconditionally; that mirrors
// the trust boundary of the surrounding portal and is intentional.
//
// The update is last-writer-wins: re-escalating an approved admin succeeds
// and leaves the row in the same terminal state.
func (s *EscalationService) Escalate(ctx context.Context, callerID, targetUserID, barangayID string) error {
	if s.Profiles == nil {
		return apperrors.New(apperrors.KindConfiguration, "profile directory not configured")
	}
	if callerID == "" {
		return apperrors.New(apperrors.KindAuthentication, "caller is not authenticated")
	}
	if targetUserID == "" {
		return apperrors.New(apperrors.KindValidation, "userId is required")
	}

	var barangay *entity.Barangay
	if barangayID != "" {
		if s.Barangays == nil {
			return apperrors.New(apperrors.KindConfiguration, "barangay directory not configured")
		}
		b, err := s.Barangays.GetByID(ctx, barangayID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperrors.New(apperrors.KindNotFound, "barangay not found")
			}
			return apperrors.Wrap(apperrors.KindInternal, err, "barangay lookup failed")
		}
		if b.SubmitterID != targetUserID {
			return apperrors.New(apperrors.KindAuthorization, "target is not the submitter of this barangay")
		}
		barangay = b
	}

	profile, err := s.Profiles.Escalate(ctx, targetUserID)
	if err != nil {
		return apperrors.Wrap(apperrors.KindInternal, err, "profile update failed")
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"caller_id": callerID,
			"target_id": targetUserID,
			"barangay":  barangayID,
		}).Info("profile escalated to admin")
	}
	s.Audit.Record(ctx, audit.Event{
		Type:       audit.EventEscalation,
		CallerID:   callerID,
		TargetID:   targetUserID,
		BarangayID: barangayID,
	})
	s.notify(ctx, profile, barangay)
	return nil
}

// notify queues the admin-granted email. Best-effort: a publish failure is
// logged and the escalation still succeeds.
func (s *EscalationService) notify(ctx context.Context, profile *entity.Profile, barangay *entity.Barangay) {
	if s.Publisher == nil || profile.Email == "" {
		return
	}
	data := map[string]any{
		"Name":  profile.Name,
		"Email": profile.Email,
	}
	if barangay != nil {
		data["BarangayName"] = barangay.Name
	}
	job := mailer.EmailJob{
		To:       profile.Email,
		Template: mailtpl.TemplateAdminGranted,
		Data:     data,
	}
	if err := s.Publisher.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("to", profile.Email).Warn("notify publish failed")
	}
}
