package response

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barangaylink/api/pkg/apperrors"
)

// ErrorBody is the envelope for every non-2xx response. Success payloads are
// endpoint-specific and written directly by the handlers; errors share this
// single stable shape.
type ErrorBody struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
	Success   bool      `json:"success"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   any       `json:"details,omitempty"`
}

// Fail writes an error response for the given taxonomy kind.
func Fail(c *gin.Context, kind apperrors.Kind, message string, details any) {
	body := ErrorBody{
		Status:    kind.HTTPStatus(),
		Timestamp: time.Now(),
		RequestID: c.GetString("request_id"),
		Success:   false,
		Code:      kind.Code(),
		Message:   message,
		Details:   details,
	}
	c.JSON(body.Status, body)
}

// AbortWith is Fail plus aborting the middleware chain; used by middleware.
func AbortWith(c *gin.Context, kind apperrors.Kind, message string, details any) {
	Fail(c, kind, message, details)
	c.Abort()
}

// FromError maps an application error onto the wire. Unclassified errors come
// out as internal_error with a generic message so store internals never leak.
func FromError(c *gin.Context, err error) {
	var e *apperrors.Error
	if errors.As(err, &e) {
		var details any
		if e.Details != "" {
			details = e.Details
		}
		Fail(c, e.Kind, e.Message, details)
		return
	}
	Fail(c, apperrors.KindInternal, "internal error", nil)
}
