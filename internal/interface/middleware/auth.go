package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pommyhq/accounts-api/pkg/apperr"
	"github.com/pommyhq/accounts-api/pkg/helpers"
	"github.com/pommyhq/accounts-api/pkg/response"
)

// CtxUserIDKey is where Auth stores the verified caller id.
const CtxUserIDKey = "userID"

// Auth reads the session token from the token cookie, falling back to an
// Authorization Bearer header, verifies it, and injects the user id into the
// Gin context. Verification failures never reveal whether the token was
// malformed or merely expired.
func Auth(tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(helpers.TokenCookieName)
		if token == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if token == "" {
			response.AbortFail(c, apperr.New(apperr.KindNoTokenProvided))
			return
		}
		claims, err := tokens.Verify(token)
		if err != nil {
			response.AbortFail(c, apperr.From(err))
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
