package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/imf-ops/gadget-api/internal/container"
	handlers "github.com/imf-ops/gadget-api/internal/interface/http"
	"github.com/imf-ops/gadget-api/internal/interface/middleware"
)

// AuthModule wires the public signup/login endpoints.
// Both routes are rate limited per IP; the limiter is a pass-through when
// redis is not configured.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
}
