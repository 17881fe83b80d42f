package modules

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andresmx/tasktrack/internal/container"
)

const apiVersion = "1.0.0"

// HealthModule exposes a liveness endpoint for deploy checks and the
// frontend's startup probe.
type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   container.GetConfig().AppName,
			"version":   apiVersion,
		})
	})
}
