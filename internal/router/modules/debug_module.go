package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andresmx/tasktrack/internal/container"
	"github.com/andresmx/tasktrack/internal/interface/middleware"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Public metrics endpoint (expvar), rate-limited per IP. Requests from
	// loopback and RFC1918 addresses bypass the limit so internal scrapers
	// never get throttled.
	rl := func(c *gin.Context) { c.Next() }
	if container.GetConfig().RateLimitEnabled {
		rl = middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	}
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
