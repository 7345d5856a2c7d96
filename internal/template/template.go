package template

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templates embed.FS

// DefaultConfigTemplate is the seed document written when no config exists.
const DefaultConfigTemplate = "default.json"

// DefaultData contains data for rendering the default config document
type DefaultData struct {
	// ConfigURL is the file:// URL of the config itself, used by the
	// "Edit this config" link.
	ConfigURL string
}

// Render renders the named embedded template with data
func Render(name string, data any) ([]byte, error) {
	content, err := templates.ReadFile(fmt.Sprintf("templates/%s.tmpl", name))
	if err != nil {
		return nil, fmt.Errorf("template not found: %s", name)
	}

	funcMap := template.FuncMap{
		"json": toJSON,
	}

	tmpl, err := template.New(name).Funcs(funcMap).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderDefault renders the default config document
func RenderDefault(data DefaultData) ([]byte, error) {
	if data.ConfigURL == "" {
		data.ConfigURL = "file://~/.config/hop/config.json"
	}
	return Render(DefaultConfigTemplate, data)
}

// toJSON quotes a value for safe embedding in a JSON template
func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
