// Package response renders the JSON envelope every endpoint speaks:
// {status, message, data?, statusCode?, errorName?, details?}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pommyhq/accounts-api/pkg/apperr"
)

type APIResponse[T any] struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	Data       T      `json:"data,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
	ErrorName  string `json:"errorName,omitempty"`
	Details    any    `json:"details,omitempty"`
}

// Success writes a success envelope with the given HTTP status.
func Success[T any](c *gin.Context, status int, data T, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, APIResponse[T]{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Fail writes an error envelope. The HTTP status comes from the error itself,
// so no mapping table lives at the boundary. Pass empty details to suppress
// the diagnostic (for example 5xx kinds in production).
func Fail(c *gin.Context, e *apperr.Error, details any) {
	c.JSON(e.StatusCode, APIResponse[any]{
		Status:     "error",
		Message:    e.Message,
		StatusCode: e.StatusCode,
		ErrorName:  e.Name,
		Details:    details,
	})
}

// AbortFail is Fail for middleware: it also aborts the handler chain.
func AbortFail(c *gin.Context, e *apperr.Error) {
	c.AbortWithStatusJSON(e.StatusCode, APIResponse[any]{
		Status:     "error",
		Message:    e.Message,
		StatusCode: e.StatusCode,
		ErrorName:  e.Name,
	})
}

// BadRequest reports a request body that could not be bound at all
// (malformed JSON, wrong field types). Field-level details come from the
// binding validator.
func BadRequest(c *gin.Context, details any) {
	c.JSON(http.StatusBadRequest, APIResponse[any]{
		Status:     "error",
		Message:    "Invalid request payload",
		StatusCode: http.StatusBadRequest,
		Details:    details,
	})
}
