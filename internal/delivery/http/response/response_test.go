package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Should carry request id and data", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set(requestIDKey, "req-1")

		Success(c, http.StatusOK, "ok", gin.H{"a": 1})

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "req-1", body["request_id"])
		assert.Equal(t, map[string]any{"a": float64(1)}, body["data"])
		assert.NotContains(t, body, "error")
	})

	t.Run("Should nest field errors under error.fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		FieldErrors(c, http.StatusUnprocessableEntity, "Validation failed", map[string]string{"name": "too short"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"success":false,"message":"Validation failed","error":{"fields":{"name":"too short"}}}`, w.Body.String())
	})
}
