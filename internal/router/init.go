package router

import (
	"github.com/pommyhq/accounts-api/internal/application"
	"github.com/pommyhq/accounts-api/internal/container"
	repouser "github.com/pommyhq/accounts-api/internal/domain/repository"
	"github.com/pommyhq/accounts-api/internal/infrastructure/cache"
	pginfra "github.com/pommyhq/accounts-api/internal/infrastructure/postgres"
	handlers "github.com/pommyhq/accounts-api/internal/interface/http"
	usermodule "github.com/pommyhq/accounts-api/internal/router/modules"
	"github.com/pommyhq/accounts-api/pkg/helpers"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *application.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	cfg := container.GetConfig()

	var repo repouser.UserRepository = pginfra.NewUserRepository(container.GetPGPool())
	if rdb := container.GetRedis(); rdb != nil {
		repo = cache.NewUserRepository(repo, rdb, cfg.UserCacheTTL)
	}

	// A typed-nil publisher must not end up inside the interface value.
	var mail application.EmailEnqueuer
	if pub := container.GetRabbitPub(); pub != nil {
		mail = pub
	}

	service := application.NewService(
		repo,
		container.GetTokens(),
		mail,
		container.GetLogger(),
		cfg.LoginDelay,
	)

	handler := handlers.NewUserHandler(
		service,
		helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure, cfg.TokenTTL),
		container.GetLogger(),
		cfg.Env,
	)

	return UserModuleDeps{Repo: repo, Service: service, Handler: handler}
}

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	r.Add(usermodule.New(userDeps.Handler, container.GetTokens()))
}
