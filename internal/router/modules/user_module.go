package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/vespasoft/taskhub/internal/container"
	handlers "github.com/vespasoft/taskhub/internal/interface/http"
	"github.com/vespasoft/taskhub/internal/interface/middleware"
)

// UserModule wires user HTTP handlers into routes:
// POST /api/v1/users (create), PUT /api/v1/users (update password)
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	limiter := middleware.RateLimit(container.GetRedis(), cfg.RateLimitMax, cfg.RateLimitWindow, middleware.KeyByIPAndPath())

	v1 := rg.Group("/v1")
	v1.POST("/users", limiter, m.Handler.Create)
	v1.PUT("/users", limiter, m.Handler.UpdatePassword)
}
