package middleware

import (
	"net/http"

	"go-form-template/pkg/ids"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName holds the id of the browser's mounted form
	SessionCookieName = "form_session"
	// SessionHeaderName lets API clients pass the session without cookies
	SessionHeaderName = "X-Form-Session"
)

// SessionID returns the form session sent by the client, header first. Malformed ids are ignored.
func SessionID(c *gin.Context) string {
	if id := c.GetHeader(SessionHeaderName); ids.IsSessionID(id) {
		return id
	}
	if id, err := c.Cookie(SessionCookieName); err == nil && ids.IsSessionID(id) {
		return id
	}
	return ""
}

// SetSession stores id in a session cookie (no Max-Age, so it ends with the browser session) and echoes the header.
func SetSession(c *gin.Context, id string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, id, 0, "/", "", secure, true)
	c.Header(SessionHeaderName, id)
}
