package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/imf-ops/gadget-api/internal/container"
	handlers "github.com/imf-ops/gadget-api/internal/interface/http"
	"github.com/imf-ops/gadget-api/internal/interface/middleware"
	"github.com/imf-ops/gadget-api/pkg/helpers"
)

// GadgetModule wires the gadget lifecycle endpoints.
// Every route requires a bearer token except POST /gadgets/:id/self-destruct,
// which upstream ships unauthenticated. That asymmetry is preserved
// deliberately; see DESIGN.md before "fixing" it.
type GadgetModule struct {
	Handler *handlers.GadgetHandler
	JWT     *helpers.JWTManager
}

func NewGadgetModule(h *handlers.GadgetHandler, jwt *helpers.JWTManager) *GadgetModule {
	return &GadgetModule{Handler: h, JWT: jwt}
}

func (m *GadgetModule) Register(rg *gin.RouterGroup) {
	selfDestructLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.POST("/gadgets/:id/self-destruct", selfDestructLimiter, m.Handler.SelfDestruct)

	auth := rg.Group("/gadgets")
	auth.Use(middleware.BearerAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("", m.Handler.List)
		auth.POST("", m.Handler.Create)
		auth.PATCH("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Decommission)
	}
}
