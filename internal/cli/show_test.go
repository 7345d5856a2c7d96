package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRunShow(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		wantErr     bool
		errContains string
		contains    []string
	}{
		{
			name:     "show link",
			url:      "https://github.com/pulls",
			contains: []string{"Pulls", "Work", "pr, review"},
		},
		{
			name:     "show link with shortcut",
			url:      "https://calendar.example.com",
			contains: []string{"Calendar", "command+c"},
		},
		{
			name:        "unknown link",
			url:         "https://nowhere.example.com",
			wantErr:     true,
			errContains: "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := deps
			defer func() { deps = old }()
			deps = NewMockDeps().WithConfig(sampleConfig()).Build()

			var err error
			out := captureOutput(func() {
				err = runShow(showCmd, []string{tt.url})
			})

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("runShow() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRunShowJSON(t *testing.T) {
	old, oldJSON := deps, jsonOutput
	defer func() { deps, jsonOutput = old, oldJSON }()
	deps = NewMockDeps().WithConfig(sampleConfig()).Build()
	jsonOutput = true

	out := captureOutput(func() {
		_ = runShow(showCmd, []string{"https://pkg.go.dev"})
	})

	var item linkItem
	if err := json.Unmarshal([]byte(out), &item); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
	if item.Name != "Go Packages" || item.Category != "Docs" {
		t.Errorf("unexpected item: %+v", item)
	}
}
