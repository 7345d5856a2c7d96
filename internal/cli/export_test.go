package cli

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/qiushiyan/hop/internal/config"
)

func TestRunExportJSON(t *testing.T) {
	NewTestHelper(t)
	defer func() { exportFormat = "json" }()
	exportFormat = "json"

	var err error
	out := captureOutput(func() {
		err = runExport(exportCmd, nil)
	})
	if err != nil {
		t.Fatalf("runExport() error = %v", err)
	}

	cfg, err := config.Decode([]byte(out))
	if err != nil {
		t.Fatalf("export is not a valid config: %v\n%s", err, out)
	}
	if len(cfg.AllLinks()) != 4 {
		t.Errorf("expected 4 links, got %d", len(cfg.AllLinks()))
	}
	// Keys are sorted.
	if strings.Index(out, `"categories"`) > strings.Index(out, `"version"`) {
		t.Errorf("keys are not sorted:\n%s", out)
	}
}

func TestRunExportYAML(t *testing.T) {
	NewTestHelper(t)
	defer func() { exportFormat = "json" }()
	exportFormat = "yaml"

	var err error
	out := captureOutput(func() {
		err = runExport(exportCmd, nil)
	})
	if err != nil {
		t.Fatalf("runExport() error = %v", err)
	}

	var cfg config.Configuration
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("invalid YAML output: %v\n%s", err, out)
	}
	if len(cfg.Categories) != 2 || cfg.GlobalHotkey == nil {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestRunExportUnknownFormat(t *testing.T) {
	NewTestHelper(t)
	defer func() { exportFormat = "json" }()
	exportFormat = "toml"

	if err := runExport(exportCmd, nil); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
