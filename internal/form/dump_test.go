package form

import (
	"testing"

	"go-form-template/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	out, err := Dump(domain.FormValues{
		Name:      "Taro",
		Email:     "example@test.com",
		Category:  "bug",
		Message:   "<b>hi</b> & welcome",
		Subscribe: true,
	})
	require.NoError(t, err)

	want := `{
  "name": "Taro",
  "email": "example@test.com",
  "category": "bug",
  "message": "<b>hi</b> & welcome",
  "subscribe": true
}`
	assert.Equal(t, want, out)
}

func TestDumpIsDeterministic(t *testing.T) {
	a, err := Dump(validValues())
	require.NoError(t, err)
	b, err := Dump(validValues())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
