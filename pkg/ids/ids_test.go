package ids

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionID(t *testing.T) {
	id, err := NewSessionID()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "FRM-"))
	assert.Len(t, id, len("FRM-")+21)
	assert.True(t, IsSessionID(id))

	other, err := NewSessionID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestIsSessionIDRejects(t *testing.T) {
	for _, id := range []string{"", "FRM-", "FRM-short", "XYZ-abcdefghijklmnopqrstu", "FRM-abcdefghijklmnopqrst!"} {
		assert.False(t, IsSessionID(id), id)
	}
}

func TestNewRequestID(t *testing.T) {
	_, err := uuid.Parse(NewRequestID())
	assert.NoError(t, err)
}
