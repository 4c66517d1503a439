package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/pommyhq/accounts-api/internal/interface/http"
	"github.com/pommyhq/accounts-api/internal/interface/middleware"
	"github.com/pommyhq/accounts-api/pkg/helpers"
)

// Module wires the account lifecycle routes.
// Public: POST /api/users, POST /api/login, POST /api/logout
// Protected (token required, caller is always the target):
// PUT /api/users, DELETE /api/users

type Module struct {
	Handler *handlers.UserHandler
	Tokens  *helpers.TokenManager
}

func New(h *handlers.UserHandler, tokens *helpers.TokenManager) *Module {
	return &Module{Handler: h, Tokens: tokens}
}

func (m *Module) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.Create)
	rg.POST("/login", m.Handler.Login)
	rg.POST("/logout", m.Handler.Logout)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Tokens))
	{
		auth.PUT("/users", m.Handler.Update)
		auth.DELETE("/users", m.Handler.Delete)
	}
}
