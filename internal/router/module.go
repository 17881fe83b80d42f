package router

import "github.com/gin-gonic/gin"

// Module is a self-contained feature area (auth, tasks, health) that mounts
// its own routes and route-level middleware on the shared API group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
