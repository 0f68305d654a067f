package response

import (
	"github.com/gin-gonic/gin"
)

// requestIDKey mirrors middleware.RequestIDKey; importing middleware here would cycle.
const requestIDKey = "RequestID"

// Response is the JSON envelope shared by every /v1 endpoint
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Error     any    `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// FieldsDetail is the error payload of a rejected submission, keyed by field name
type FieldsDetail struct {
	Fields map[string]string `json:"fields"`
}

func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: c.GetString(requestIDKey),
	})
}

func Error(c *gin.Context, code int, message string, detail any) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     detail,
		RequestID: c.GetString(requestIDKey),
	})
}

// FieldErrors sends a failure whose detail lists per-field messages
func FieldErrors(c *gin.Context, code int, message string, fields map[string]string) {
	Error(c, code, message, FieldsDetail{Fields: fields})
}
