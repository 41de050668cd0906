package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barangaylink/api/internal/container"
	handlers "github.com/barangaylink/api/internal/interface/http"
	"github.com/barangaylink/api/internal/interface/middleware"
	"github.com/barangaylink/api/pkg/helpers"
)

// EscalationModule wires the admin escalation endpoint behind bearer auth.
type EscalationModule struct {
	Handler *handlers.EscalationHandler
	JWT     *helpers.JWTManager
}

func NewEscalationModule(h *handlers.EscalationHandler, jwt *helpers.JWTManager) *EscalationModule {
	return &EscalationModule{Handler: h, JWT: jwt}
}

func (m *EscalationModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByCallerID(), nil),
	)
	auth.POST("/admin/escalate", m.Handler.Escalate)
}
