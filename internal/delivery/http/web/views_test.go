package web

import (
	"bytes"
	"strings"
	"testing"

	"go-form-template/internal/domain"
	"go-form-template/pkg/formdef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, name string, data interface{}) string {
	t.Helper()
	tmpl, err := Templates()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestFormPageShowsErrorsBesideFields(t *testing.T) {
	def, err := formdef.Default()
	require.NoError(t, err)

	state := &domain.FormState{
		Phase:  domain.PhaseEditing,
		Values: domain.FormValues{Name: "A", Category: "question"},
		Errors: domain.FieldErrors{domain.FieldName: "名前は2文字以上である必要があります。"},
	}
	page, err := NewFormPage(def, def.Locale("ja"), state, "tok")
	require.NoError(t, err)

	assert.Equal(t, "名前", page.Name.Label)
	assert.Equal(t, "A", page.Name.Value)
	assert.Empty(t, page.Email.Error)
	assert.Empty(t, page.Snapshot)
	require.Len(t, page.Options, 4)
	assert.True(t, page.Options[2].Selected)

	html := render(t, "form.html", page)
	assert.Contains(t, html, `id="name-error"`)
	assert.Contains(t, html, "名前は2文字以上である必要があります。")
	assert.NotContains(t, html, `id="email-error"`)
	assert.Contains(t, html, `name="csrf_token" value="tok"`)
	assert.Contains(t, html, `<option value="question" selected>`)
	assert.NotContains(t, html, `id="result"`)
}

func TestFormPageRendersEscapedSnapshot(t *testing.T) {
	def, err := formdef.Default()
	require.NoError(t, err)

	snap := domain.FormValues{Name: "<script>", Email: "example@test.com", Category: "bug", Message: "long enough message", Subscribe: true}
	state := &domain.FormState{Phase: domain.PhaseSubmitted, Values: snap, Snapshot: &snap}

	page, err := NewFormPage(def, def.Locale("en"), state, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(page.Snapshot, "{\n  \"name\": \"<script>\""))
	assert.True(t, page.Subscribe.Checked)

	html := render(t, "form.html", page)
	assert.Contains(t, html, `id="result"`)
	assert.Contains(t, html, "Submitted data:")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, `value="on" checked`)
}

func TestHomePage(t *testing.T) {
	def, err := formdef.Default()
	require.NoError(t, err)

	html := render(t, "home.html", NewHomePage(def.Locale("en")))
	assert.Contains(t, html, `<html lang="en">`)
	assert.Contains(t, html, "Welcome to Go Form Template")
	assert.Contains(t, html, `href="/form"`)
}
