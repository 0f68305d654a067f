// Package web holds the page templates and the view models rendered into them.
package web

import (
	"embed"
	"html/template"

	"go-form-template/internal/domain"
	"go-form-template/internal/form"
	"go-form-template/pkg/formdef"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every bundled page template.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

type HomePage struct {
	Lang  string
	Title string
	Home  formdef.Home
}

func NewHomePage(locale formdef.Locale) HomePage {
	return HomePage{Lang: locale.HTMLLang, Title: locale.Title, Home: locale.Home}
}

// FieldView is one control with its surrounding texts.
type FieldView struct {
	Name        string
	Label       string
	Placeholder string
	Description string
	Value       string
	Checked     bool
	Error       string
}

type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

type FormPage struct {
	Lang      string
	Title     string
	Text      formdef.FormText
	CSRFToken string

	Name      FieldView
	Email     FieldView
	Category  FieldView
	Message   FieldView
	Subscribe FieldView
	Options   []OptionView

	Phase    domain.Phase
	Snapshot string
}

// NewFormPage builds the view for state. The snapshot panel is only filled once a submission was accepted.
func NewFormPage(def *formdef.Definition, locale formdef.Locale, state *domain.FormState, csrfToken string) (FormPage, error) {
	field := func(name, value string) FieldView {
		text := locale.Fields[name]
		return FieldView{
			Name:        name,
			Label:       text.Label,
			Placeholder: text.Placeholder,
			Description: text.Description,
			Value:       value,
			Error:       state.Errors[name],
		}
	}

	page := FormPage{
		Lang:      locale.HTMLLang,
		Title:     locale.Title,
		Text:      locale.Form,
		CSRFToken: csrfToken,
		Name:      field(domain.FieldName, state.Values.Name),
		Email:     field(domain.FieldEmail, state.Values.Email),
		Category:  field(domain.FieldCategory, state.Values.Category),
		Message:   field(domain.FieldMessage, state.Values.Message),
		Subscribe: field(domain.FieldSubscribe, ""),
		Phase:     state.Phase,
	}
	page.Subscribe.Checked = state.Values.Subscribe

	for _, opt := range locale.Options(def.Categories) {
		page.Options = append(page.Options, OptionView{
			Value:    opt.Value,
			Label:    opt.Label,
			Selected: opt.Value == state.Values.Category,
		})
	}

	if state.Snapshot != nil {
		dump, err := form.Dump(*state.Snapshot)
		if err != nil {
			return FormPage{}, err
		}
		page.Snapshot = dump
	}
	return page, nil
}
