package form

import (
	"bytes"
	"encoding/json"
	"strings"

	"go-form-template/internal/domain"
)

// Dump renders a snapshot as two-space indented JSON, keys in field order.
func Dump(values domain.FormValues) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(values); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
