package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"go-form-template/internal/delivery/http/response"
	"go-form-template/pkg/apperror"
	"go-form-template/pkg/events"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is the name of the header API clients send the token in
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenFormField is the hidden input rendered into HTML forms
	CSRFTokenFormField = "csrf_token"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour

	csrfContextKey = "csrf_token"
)

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFMiddleware implements the Double-Submit Cookie pattern.
//
// Every response carries a csrf_token cookie. State-changing requests must
// echo its value either in the X-CSRF-Token header or, for HTML forms, in the
// csrf_token form field. Paths in exempt are never checked.
func CSRFMiddleware(secure bool, exempt ...string) gin.HandlerFunc {
	exemptPaths := make(map[string]bool, len(exempt))
	for _, p := range exempt {
		exemptPaths[p] = true
	}

	return func(c *gin.Context) {
		csrfCookie, err := c.Cookie(CSRFTokenCookieName)
		if err != nil || csrfCookie == "" {
			newToken, err := generateCSRFToken()
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to generate security token", nil)
				c.Abort()
				return
			}

			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(
				CSRFTokenCookieName,
				newToken,
				int(CSRFTokenExpiry.Seconds()),
				"/",
				"",     // Domain (empty = current domain)
				secure, // Secure (HTTPS only)
				false,  // HttpOnly = false so scripted clients can read it
			)
			csrfCookie = newToken
		}
		c.Set(csrfContextKey, csrfCookie)

		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions || exemptPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		token := c.GetHeader(CSRFTokenHeaderName)
		if token == "" {
			token = c.PostForm(CSRFTokenFormField)
		}

		if token == "" {
			logCSRFRejected(c, "missing")
			abortWithAppError(c, errCSRFMissing)
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(csrfCookie)) != 1 {
			logCSRFRejected(c, "mismatch")
			abortWithAppError(c, errCSRFMismatch)
			return
		}

		c.Next()
	}
}

var (
	errCSRFMissing  = apperror.Forbidden("Missing CSRF token")
	errCSRFMismatch = apperror.Forbidden("Invalid CSRF token")
)

// abortWithAppError renders err directly; CSRF runs before any handler could call c.Error
func abortWithAppError(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.Code, err.Message, nil)
	c.Abort()
}

// CSRFToken returns the token for the current request, for rendering into forms.
func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfContextKey)
}

func logCSRFRejected(c *gin.Context, reason string) {
	events.Default().Log(c.Request.Context(), events.Event{
		Type:      events.EventCSRFRejected,
		IP:        c.ClientIP(),
		RequestID: GetRequestID(c),
		Details:   map[string]interface{}{"reason": reason, "path": c.Request.URL.Path},
	})
}
