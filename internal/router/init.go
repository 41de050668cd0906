package router

import (
	"github.com/barangaylink/api/internal/application"
	"github.com/barangaylink/api/internal/container"
	pginfra "github.com/barangaylink/api/internal/infrastructure/postgres"
	handlers "github.com/barangaylink/api/internal/interface/http"
	"github.com/barangaylink/api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	creds := pginfra.NewCredentialStore(container.GetAuthPool())
	profiles := pginfra.NewProfileDirectory(container.GetAppPool())
	barangays := pginfra.NewBarangayDirectory(container.GetAppPool())

	identitySvc := application.NewIdentityService(
		creds,
		profiles,
		logger,
		container.GetAudit(),
		cfg.IdentityFailClosed,
	)
	escalationSvc := application.NewEscalationService(
		profiles,
		barangays,
		container.GetRabbitPub(),
		container.GetAudit(),
		logger,
	)

	r.Add(modules.NewIdentityModule(handlers.NewIdentityHandler(identitySvc, logger)))
	r.Add(modules.NewEscalationModule(handlers.NewEscalationHandler(escalationSvc, logger), container.GetJWT()))
	r.Add(modules.NewMediaModule(handlers.NewMediaHandler(container.GetGCS(), cfg.GCSBucket, cfg.SignedURLTTL, logger), container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
