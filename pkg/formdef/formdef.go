// Package formdef loads the declarative description of a form: its fields,
// category options and the per-locale texts shown around each control.
package formdef

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is a parsed and checked form description.
type Definition struct {
	ID            string            `yaml:"id"`
	DefaultLocale string            `yaml:"defaultLocale"`
	Fields        []string          `yaml:"fields"`
	Validated     []string          `yaml:"validated"`
	Categories    []string          `yaml:"categories"`
	Locales       map[string]Locale `yaml:"locales"`
}

// Locale holds every text of the form in one language.
type Locale struct {
	HTMLLang       string               `yaml:"htmlLang"`
	Title          string               `yaml:"title"`
	Home           Home                 `yaml:"home"`
	Form           FormText             `yaml:"form"`
	Fields         map[string]FieldText `yaml:"fields"`
	CategoryLabels map[string]string    `yaml:"categoryLabels"`
}

type Home struct {
	Heading string `yaml:"heading"`
	Tagline string `yaml:"tagline"`
	Links   []Link `yaml:"links"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type FormText struct {
	Heading             string `yaml:"heading"`
	Submit              string `yaml:"submit"`
	ResultHeading       string `yaml:"resultHeading"`
	CategoryPlaceholder string `yaml:"categoryPlaceholder"`
}

// FieldText is what surrounds a single control. Message is shown when the field fails validation.
type FieldText struct {
	Label       string `yaml:"label"`
	Placeholder string `yaml:"placeholder"`
	Description string `yaml:"description"`
	Message     string `yaml:"message"`
}

// Option is a category choice with its display label.
type Option struct {
	Value string
	Label string
}

// Load reads and checks the definition stored at path in fsys.
func Load(fsys fs.FS, path string) (*Definition, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("formdef: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a YAML definition; source is only used in error messages.
func Parse(data []byte, source string) (*Definition, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("formdef: file %s is empty", source)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("formdef: parse %s: %w", source, err)
	}
	if err := def.check(); err != nil {
		return nil, fmt.Errorf("formdef: %s: %w", source, err)
	}
	return &def, nil
}

func (d *Definition) check() error {
	if len(d.Fields) == 0 {
		return fmt.Errorf("no fields defined")
	}
	if len(d.Locales) == 0 {
		return fmt.Errorf("no locales defined")
	}
	if _, ok := d.Locales[d.DefaultLocale]; !ok {
		return fmt.Errorf("default locale %q is not defined", d.DefaultLocale)
	}

	known := make(map[string]bool, len(d.Fields))
	for _, field := range d.Fields {
		known[field] = true
	}
	for _, field := range d.Validated {
		if !known[field] {
			return fmt.Errorf("validated field %q is not a form field", field)
		}
	}

	for code, loc := range d.Locales {
		for _, field := range d.Fields {
			text, ok := loc.Fields[field]
			if !ok {
				return fmt.Errorf("locale %q: field %q has no texts", code, field)
			}
			if strings.TrimSpace(text.Label) == "" {
				return fmt.Errorf("locale %q: field %q has no label", code, field)
			}
		}
		for _, field := range d.Validated {
			if strings.TrimSpace(loc.Fields[field].Message) == "" {
				return fmt.Errorf("locale %q: field %q has no validation message", code, field)
			}
		}
		for _, category := range d.Categories {
			if strings.TrimSpace(loc.CategoryLabels[category]) == "" {
				return fmt.Errorf("locale %q: category %q has no label", code, category)
			}
		}
	}
	return nil
}

// Locale returns the texts for code, falling back to the default locale.
func (d *Definition) Locale(code string) Locale {
	if loc, ok := d.Locales[strings.ToLower(strings.TrimSpace(code))]; ok {
		return loc
	}
	return d.Locales[d.DefaultLocale]
}

// Options returns the category choices in definition order.
func (l Locale) Options(categories []string) []Option {
	out := make([]Option, 0, len(categories))
	for _, value := range categories {
		out = append(out, Option{Value: value, Label: l.CategoryLabels[value]})
	}
	return out
}

// Message returns the validation message configured for field, if any.
func (l Locale) Message(field string) string {
	return l.Fields[field].Message
}
