package router

import "github.com/gin-gonic/gin"

// Registry collects feature modules and mounts them under the /api group.
// Modules are registered in the order they were added.
type Registry struct {
	Engine *gin.Engine
	API    *gin.RouterGroup

	groupMW []gin.HandlerFunc
	mods    []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

// Use queues middleware that applies to the whole /api group, ahead of any
// module routes.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.groupMW = append(r.groupMW, mw...)
}

func (r *Registry) Add(mod Module) {
	r.mods = append(r.mods, mod)
}

// RegisterAll installs the queued middleware and then lets each module mount
// its routes.
func (r *Registry) RegisterAll() {
	if len(r.groupMW) > 0 {
		r.API.Use(r.groupMW...)
	}
	for _, mod := range r.mods {
		mod.Register(r.API)
	}
}
