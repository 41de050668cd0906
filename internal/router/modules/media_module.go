package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barangaylink/api/internal/container"
	handlers "github.com/barangaylink/api/internal/interface/http"
	"github.com/barangaylink/api/internal/interface/middleware"
	"github.com/barangaylink/api/pkg/helpers"
)

// MediaModule exposes signed media URL issuance to authenticated callers.
type MediaModule struct {
	Handler *handlers.MediaHandler
	JWT     *helpers.JWTManager
}

func NewMediaModule(h *handlers.MediaHandler, jwt *helpers.JWTManager) *MediaModule {
	return &MediaModule{Handler: h, JWT: jwt}
}

func (m *MediaModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByCallerID(), nil))
	auth.GET("/media/sign", m.Handler.Sign)
}
