package middlewares

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tenantguard-be/apierrors"
	"tenantguard-be/utils"
)

const internalMessage = "Internal Server Error"

// ErrorHandler renders the last error attached with c.Error as the failure
// envelope. Server errors are logged and replaced by a generic message.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		apiErr := apierrors.From(c.Errors.Last().Err)
		if apiErr.HTTPStatus >= http.StatusInternalServerError {
			logger.Error(apiErr.Message,
				"error", apiErr.Cause,
				"method", c.Request.Method,
				"path", c.FullPath(),
				"request_id", c.GetString(requestIDKey),
			)
			if apiErr.Type == apierrors.TypeInternal {
				utils.Fail(c, apiErr.HTTPStatus, internalMessage, nil)
				return
			}
		}

		utils.Fail(c, apiErr.HTTPStatus, apiErr.Message, apiErr.Fields)
	}
}

// Recovery turns panics into the 500 envelope.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(requestIDKey),
		)
		utils.Fail(c, http.StatusInternalServerError, internalMessage, nil)
	})
}

// NotFound renders unknown routes in the failure envelope.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.Fail(c, http.StatusNotFound, "Route not found", nil)
	}
}
