package handlers

import (
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/barangaylink/api/pkg/apperrors"
	"github.com/barangaylink/api/pkg/helpers"
	"github.com/barangaylink/api/pkg/response"
)

// MediaHandler issues short-lived signed URLs for portal media objects
// (barangay logos, document scans). The client caches and displays them.
type MediaHandler struct {
	GCS    *storage.Client
	Bucket string
	TTL    time.Duration
	Logger *logrus.Logger
}

func NewMediaHandler(gcs *storage.Client, bucket string, ttl time.Duration, logger *logrus.Logger) *MediaHandler {
	return &MediaHandler{GCS: gcs, Bucket: bucket, TTL: ttl, Logger: logger}
}

// Sign returns a V4 signed GET URL for the requested object path.
func (h *MediaHandler) Sign(c *gin.Context) {
	if h.GCS == nil || h.Bucket == "" {
		response.Fail(c, apperrors.KindConfiguration, "media storage not configured", nil)
		return
	}
	object := strings.TrimPrefix(strings.TrimSpace(c.Query("object")), "/")
	if object == "" || strings.Contains(object, "..") {
		response.Fail(c, apperrors.KindValidation, "invalid object path", nil)
		return
	}
	url, expires, err := helpers.SignedGetURL(h.GCS, h.Bucket, object, h.TTL)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("object", object).Error("sign url failed")
		}
		response.Fail(c, apperrors.KindInternal, "could not sign url", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "expires_at": expires})
}
