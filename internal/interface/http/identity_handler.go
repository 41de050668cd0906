package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/barangaylink/api/internal/application"
	"github.com/barangaylink/api/pkg/apperrors"
	"github.com/barangaylink/api/pkg/response"
	"github.com/barangaylink/api/pkg/validation"
)

type IdentityHandler struct {
	Svc    *application.IdentityService
	Logger *logrus.Logger
}

func NewIdentityHandler(svc *application.IdentityService, logger *logrus.Logger) *IdentityHandler {
	return &IdentityHandler{Svc: svc, Logger: logger}
}

type identityCheckRequest struct {
	Email string `json:"email" binding:"required_without=Phone,omitempty,max=254"`
	Phone string `json:"phone" binding:"required_without=Email,omitempty,max=32"`
}

type identityCheckResponse struct {
	EmailTaken          bool `json:"emailTaken"`
	PhoneTaken          bool `json:"phoneTaken"`
	EmailExistsAuth     bool `json:"emailExistsAuth"`
	EmailExistsProfiles bool `json:"emailExistsProfiles"`
	PhoneExistsProfiles bool `json:"phoneExistsProfiles"`
}

// Check reports whether the candidate email/phone is already claimed in the
// credential store or the profile directory. Read-only.
func (h *IdentityHandler) Check(c *gin.Context) {
	var req identityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperrors.KindValidation, "invalid payload", validation.ToDetails(err))
		return
	}

	report, err := h.Svc.CheckAvailability(c.Request.Context(), req.Email, req.Phone)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, identityCheckResponse{
		EmailTaken:          report.EmailTaken,
		PhoneTaken:          report.PhoneTaken,
		EmailExistsAuth:     report.EmailExistsAuth,
		EmailExistsProfiles: report.EmailExistsProfiles,
		PhoneExistsProfiles: report.PhoneExistsProfiles,
	})
}
