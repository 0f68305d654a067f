package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("bad").Code)
	assert.Equal(t, http.StatusForbidden, Forbidden("no").Code)
	assert.Equal(t, http.StatusNotFound, NotFound("gone").Code)
	assert.Equal(t, http.StatusInternalServerError, Internal(nil).Code)
}

func TestUnprocessableKeepsFields(t *testing.T) {
	cause := errors.New("name: too short")
	err := Unprocessable("Validation failed", map[string]string{"name": "too short"}, cause)

	assert.Equal(t, http.StatusUnprocessableEntity, err.Code)
	assert.Equal(t, "Validation failed", err.Error())
	assert.Equal(t, "too short", err.Fields["name"])
	assert.ErrorIs(t, err, cause)
}

func TestErrorsAs(t *testing.T) {
	var wrapped error = NotFound("session not found")

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "session not found", appErr.Message)
}
