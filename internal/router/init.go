package router

import (
	"github.com/vespasoft/taskhub/internal/application"
	"github.com/vespasoft/taskhub/internal/container"
	handlers "github.com/vespasoft/taskhub/internal/interface/http"
	"github.com/vespasoft/taskhub/internal/router/modules"
	"github.com/vespasoft/taskhub/pkg/helpers"
)

// Deps holds the services built for module registration; main reuses them for
// demo seeding.
type Deps struct {
	UserService    *application.UserService
	ProjectService *application.ProjectService
}

func buildDeps() Deps {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	userSvc := application.NewUserService(
		container.GetUserRepo(),
		container.GetBus(),
		helpers.PasswordSchemeFromName(cfg.PasswordScheme),
		logger,
	)
	projectSvc := application.NewProjectService(
		container.GetUserRepo(),
		container.GetProjectRepo(),
		container.GetBus(),
		logger,
	)
	return Deps{UserService: userSvc, ProjectService: projectSvc}
}

// InitModules initializes all application modules and registers them with the
// router registry. Called once during application startup.
func InitModules(r *Registry) Deps {
	deps := buildDeps()
	logger := container.GetLogger()

	r.Add(modules.NewUserModule(handlers.NewUserHandler(deps.UserService, logger)))
	r.Add(modules.NewProjectModule(handlers.NewProjectHandler(deps.ProjectService, logger)))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
	return deps
}
