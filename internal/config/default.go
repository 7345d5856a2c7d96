package config

import (
	"fmt"

	"github.com/qiushiyan/hop/internal/template"
)

// Default builds the seed configuration for a config stored at path.
func Default(path string) (*Configuration, error) {
	data, err := template.RenderDefault(template.DefaultData{
		ConfigURL: "file://" + CollapseHome(path),
	})
	if err != nil {
		return nil, err
	}

	cfg, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("default config is invalid: %w", err)
	}
	return cfg, nil
}
