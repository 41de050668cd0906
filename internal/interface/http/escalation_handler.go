package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/barangaylink/api/internal/application"
	"github.com/barangaylink/api/internal/interface/middleware"
	"github.com/barangaylink/api/pkg/apperrors"
	"github.com/barangaylink/api/pkg/response"
	"github.com/barangaylink/api/pkg/validation"
)

type EscalationHandler struct {
	Svc    *application.EscalationService
	Logger *logrus.Logger
}

func NewEscalationHandler(svc *application.EscalationService, logger *logrus.Logger) *EscalationHandler {
	return &EscalationHandler{Svc: svc, Logger: logger}
}

type escalateRequest struct {
	UserID     string `json:"userId" binding:"required"`
	BarangayID string `json:"barangayId"`
}

// Escalate elevates the target profile to barangay administrator.
func (h *EscalationHandler) Escalate(c *gin.Context) {
	callerID := c.GetString(middleware.CtxCallerIDKey)
	if callerID == "" {
		response.Fail(c, apperrors.KindAuthentication, "caller is not authenticated", nil)
		return
	}

	var req escalateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperrors.KindValidation, "invalid payload", validation.ToDetails(err))
		return
	}

	if err := h.Svc.Escalate(c.Request.Context(), callerID, req.UserID, req.BarangayID); err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
