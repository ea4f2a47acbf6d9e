package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/vespasoft/taskhub/internal/container"
	handlers "github.com/vespasoft/taskhub/internal/interface/http"
	"github.com/vespasoft/taskhub/internal/interface/middleware"
)

// ProjectModule wires project HTTP handlers into routes:
// GET/POST /api/v1/users/:userId/projects, PUT/DELETE /api/v1/projects/:projectId
type ProjectModule struct {
	Handler *handlers.ProjectHandler
}

func NewProjectModule(h *handlers.ProjectHandler) *ProjectModule {
	return &ProjectModule{Handler: h}
}

func (m *ProjectModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	limiter := middleware.RateLimit(container.GetRedis(), cfg.RateLimitMax, cfg.RateLimitWindow, middleware.KeyByIP())

	v1 := rg.Group("/v1")
	v1.GET("/users/:userId/projects", m.Handler.List)
	v1.POST("/users/:userId/projects", limiter, m.Handler.Create)
	v1.PUT("/projects/:projectId", limiter, m.Handler.Update)
	v1.DELETE("/projects/:projectId", limiter, m.Handler.Delete)
}
