package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pommyhq/accounts-api/internal/application"
	"github.com/pommyhq/accounts-api/internal/interface/middleware"
	"github.com/pommyhq/accounts-api/pkg/apperr"
	"github.com/pommyhq/accounts-api/pkg/helpers"
	"github.com/pommyhq/accounts-api/pkg/response"
	"github.com/pommyhq/accounts-api/pkg/validation"
)

type UserHandler struct {
	Svc     *application.Service
	Cookies *helpers.CookieManager
	Logger  *logrus.Logger
	Env     string
}

func NewUserHandler(svc *application.Service, cookies *helpers.CookieManager, logger *logrus.Logger, env string) *UserHandler {
	return &UserHandler{Svc: svc, Cookies: cookies, Logger: logger, Env: env}
}

// Request fields carry no binding:"required" tags on purpose: presence rules
// belong to the credential validator (and to Login's uniform
// INVALID_CREDENTIALS), which produce the specific catalog kinds.
type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// fail renders err through the envelope, redacting internal diagnostics for
// 5xx kinds in production.
func (h *UserHandler) fail(c *gin.Context, err error) {
	e := apperr.From(err)
	details := any(nil)
	if e.Details != "" {
		details = e.Details
	}
	if e.StatusCode >= http.StatusInternalServerError {
		if h.Logger != nil {
			h.Logger.WithFields(logrus.Fields{
				"request_id": c.GetString("request_id"),
				"error_name": e.Name,
				"details":    e.Details,
			}).Error(e.Message)
		}
		if h.Env == "production" {
			details = nil
		}
	}
	response.Fail(c, e, details)
}

// Create POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validation.ToDetails(err))
		return
	}
	out, err := h.Svc.Create(c.Request.Context(), application.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, out, "User created successfully!")
}

// Login POST /api/login
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validation.ToDetails(err))
		return
	}
	token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.Cookies.SetToken(c, token)
	response.Success(c, http.StatusCreated, gin.H{"token": token}, "User logged in successfully!")
}

// Logout POST /api/logout
// Stateless: only the client-held cookie is cleared. The token itself stays
// cryptographically valid until its natural expiry.
func (h *UserHandler) Logout(c *gin.Context) {
	h.Cookies.ClearToken(c)
	response.Success(c, http.StatusOK, gin.H{}, "User logged out successfully!")
}

// Update PUT /api/users
// The authenticated caller is always the target; there is no cross-user path.
func (h *UserHandler) Update(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validation.ToDetails(err))
		return
	}
	out, err := h.Svc.Update(c.Request.Context(), uid, application.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "User updated successfully!")
}

// Delete DELETE /api/users
func (h *UserHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), uid); err != nil {
		h.fail(c, err)
		return
	}
	h.Cookies.ClearToken(c)
	response.Success(c, http.StatusOK, gin.H{}, "User deleted successfully!")
}
