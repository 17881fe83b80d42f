package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/andresmx/tasktrack/internal/interface/http"
	"github.com/andresmx/tasktrack/internal/interface/middleware"
	"github.com/andresmx/tasktrack/pkg/helpers"
)

// TaskModule wires the task CRUD routes. Every route goes through the auth
// middleware; there is no unauthenticated task operation.
type TaskModule struct {
	Handler *handlers.TaskHandler
	JWT     *helpers.JWTManager
}

func NewTaskModule(h *handlers.TaskHandler, jwt *helpers.JWTManager) *TaskModule {
	return &TaskModule{Handler: h, JWT: jwt}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/tasks")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(limiter(120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("", m.Handler.List)
		auth.POST("", m.Handler.Create)
		auth.GET("/:id", m.Handler.Get)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
