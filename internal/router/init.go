package router

import (
	"github.com/imf-ops/gadget-api/internal/application"
	"github.com/imf-ops/gadget-api/internal/container"
	pginfra "github.com/imf-ops/gadget-api/internal/infrastructure/postgres"
	handlers "github.com/imf-ops/gadget-api/internal/interface/http"
	"github.com/imf-ops/gadget-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(pool)
	gadgetRepo := pginfra.NewGadgetRepository(pool)

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), logger)
	gadgetSvc := application.NewGadgetService(gadgetRepo, nil, logger)

	r.Add(modules.NewSystemModule())
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewGadgetModule(handlers.NewGadgetHandler(gadgetSvc, logger), container.GetJWT()))
}
