package formdef

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDefinition(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "example", def.ID)
	assert.Equal(t, "ja", def.DefaultLocale)
	assert.Equal(t, []string{"name", "email", "category", "message", "subscribe"}, def.Fields)
	assert.Equal(t, []string{"name", "email", "category", "message"}, def.Validated)

	ja := def.Locale("ja")
	assert.Equal(t, "名前は2文字以上である必要があります。", ja.Message("name"))
	assert.Equal(t, "メールアドレスが正しくありません。", ja.Message("email"))
	assert.Equal(t, "カテゴリを選択してください。", ja.Message("category"))
	assert.Equal(t, "メッセージは10文字以上である必要があります。", ja.Message("message"))
	assert.Empty(t, ja.Message("subscribe"))

	want := []Option{
		{Value: "bug", Label: "バグ報告"},
		{Value: "feature", Label: "機能リクエスト"},
		{Value: "question", Label: "質問"},
		{Value: "other", Label: "その他"},
	}
	if diff := cmp.Diff(want, ja.Options(def.Categories)); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestLocaleFallback(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "en", def.Locale(" EN ").HTMLLang)
	assert.Equal(t, "ja", def.Locale("fr").HTMLLang)
	assert.Equal(t, "You must select a category.", def.Locale("en").Message("category"))
}

func TestParseRejectsIncompleteDefinitions(t *testing.T) {
	cases := map[string]string{
		"empty":          "   ",
		"no fields":      "defaultLocale: en\nlocales:\n  en: {}\n",
		"missing locale": "defaultLocale: ja\nfields: [name]\nlocales:\n  en:\n    fields:\n      name: {label: Name}\n",
		"missing label":  "defaultLocale: en\nfields: [name]\nlocales:\n  en:\n    fields:\n      name: {placeholder: x}\n",
		"category label": "defaultLocale: en\nfields: [name]\ncategories: [bug]\nlocales:\n  en:\n    fields:\n      name: {label: Name}\n",
		"bad yaml":       "fields: [name\n",
		"no message":     "defaultLocale: en\nfields: [name]\nvalidated: [name]\nlocales:\n  en:\n    fields:\n      name: {label: Name}\n",
		"blank message":  "defaultLocale: en\nfields: [name]\nvalidated: [name]\nlocales:\n  en:\n    fields:\n      name: {label: Name, message: \"  \"}\n",
		"unknown rule":   "defaultLocale: en\nfields: [name]\nvalidated: [email]\nlocales:\n  en:\n    fields:\n      name: {label: Name, message: x}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc), "test.yaml")
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"mini.yaml": {Data: []byte("id: mini\ndefaultLocale: en\nfields: [name]\nlocales:\n  en:\n    fields:\n      name: {label: Name, message: too short}\n")},
	}

	def, err := Load(fsys, "mini.yaml")
	require.NoError(t, err)
	assert.Equal(t, "too short", def.Locale("en").Message("name"))

	_, err = Load(fsys, "missing.yaml")
	assert.Error(t, err)
}
