package middleware

import (
	"errors"
	"net/http"

	"go-form-template/internal/delivery/http/response"
	"go-form-template/pkg/apperror"
	"go-form-template/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError && appErr.Err != nil {
				logger.Log.Error("Request failed", "error", appErr.Err, "request_id", GetRequestID(c), "path", c.FullPath())
			}
			if len(appErr.Fields) > 0 {
				response.FieldErrors(c, appErr.Code, appErr.Message, appErr.Fields)
				return
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// SECURITY: Never expose internal error details to clients.
		logger.Log.Error("Internal Server Error", "error", err, "request_id", GetRequestID(c), "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
