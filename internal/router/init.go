package router

import (
	"github.com/andresmx/tasktrack/internal/application"
	"github.com/andresmx/tasktrack/internal/container"
	pginfra "github.com/andresmx/tasktrack/internal/infrastructure/postgres"
	handlers "github.com/andresmx/tasktrack/internal/interface/http"
	"github.com/andresmx/tasktrack/internal/router/modules"
)

// InitModules builds the application modules from the container singletons
// and registers them with the router registry. Called once at startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	userRepo := pginfra.NewUserRepository(pool)
	taskRepo := pginfra.NewTaskRepository(pool)

	userSvc := application.NewUserService(userRepo, jwt, logger)
	taskSvc := application.NewTaskService(taskRepo, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(userSvc, jwt, logger)))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), jwt))
	r.Add(modules.NewHealthModule())
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
