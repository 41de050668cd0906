package modules

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barangaylink/api/internal/container"
	handlers "github.com/barangaylink/api/internal/interface/http"
	"github.com/barangaylink/api/internal/interface/middleware"
)

// IdentityModule exposes the pre-registration identity check.
// Public, rate-limited per IP and path; registration itself lives elsewhere.
type IdentityModule struct {
	Handler *handlers.IdentityHandler
}

func NewIdentityModule(h *handlers.IdentityHandler) *IdentityModule {
	return &IdentityModule{Handler: h}
}

func (m *IdentityModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.POST("/identity/check", rl, m.Handler.Check)

	rg.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
