package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/jwalitptl/directory-web/pkg/errors"
)

// InternalErrorMessage is the only detail a client sees for server faults.
const InternalErrorMessage = "Error interno del servidor"

// ErrorResponse is the JSON error body of the /api routes.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler renders the last error attached with c.Error. Client errors
// expose their message; everything else is reported as an internal error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		status := http.StatusInternalServerError
		message := InternalErrorMessage

		var appErr *apperrors.AppError
		if errors.As(lastErr.Err, &appErr) {
			status = appErr.StatusCode()
			if status < http.StatusInternalServerError {
				message = appErr.Message
			}
		}

		if status >= 500 {
			log.Error().
				Err(lastErr.Err).
				Str("request_id", c.GetString(ContextRequestID)).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("Request error")
		}

		c.JSON(status, ErrorResponse{Error: message})
	}
}

func isAPI(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}
