package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andresmx/tasktrack/internal/container"
	handlers "github.com/andresmx/tasktrack/internal/interface/http"
	"github.com/andresmx/tasktrack/internal/interface/middleware"
)

// AuthModule wires the credential endpoints.
// Public: POST /api/auth/register, POST /api/auth/login, GET /api/auth/validate
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints are the abuse target, so they get the tightest
	// per-IP limits.
	registerLimiter := limiter(10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := limiter(10, time.Minute, middleware.KeyByIPAndPath())
	validateLimiter := limiter(60, time.Minute, middleware.KeyByIP())

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.GET("/auth/validate", validateLimiter, m.Handler.Validate)
	rg.GET("/auth/me", validateLimiter, middleware.Auth(m.Handler.JWT), m.Handler.Me)
}

func limiter(max int, window time.Duration, key middleware.KeyFunc) gin.HandlerFunc {
	if !container.GetConfig().RateLimitEnabled {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RateLimit(container.GetRedis(), max, window, key, nil)
}
