package cli

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestRunEdit(t *testing.T) {
	tests := []struct {
		name        string
		editor      string
		lookPathErr error
		edit        func(path string) error
		wantErr     bool
		errContains string
		errHasPath  bool
		wantArgs    []string
		contains    string
	}{
		{
			name:     "default editor",
			editor:   "vim",
			contains: "Config saved",
		},
		{
			name:     "editor with arguments",
			editor:   "code --wait",
			wantArgs: []string{"--wait"},
			contains: "Config saved",
		},
		{
			name:        "editor not found",
			editor:      "nope",
			lookPathErr: errors.New("not found"),
			wantErr:     true,
			errContains: "editor not found",
		},
		{
			name:   "editor fails",
			editor: "vim",
			edit: func(string) error {
				return errors.New("exit status 1")
			},
			wantErr:     true,
			errContains: "editor exited with error",
		},
		{
			name:   "broken edit is reported",
			editor: "vim",
			edit: func(path string) error {
				return os.WriteFile(path, []byte(`{"categories": 1}`), 0o644)
			},
			wantErr:     true,
			errContains: "Type mismatch",
			errHasPath:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTestHelper(t)
			t.Setenv("VISUAL", "")
			t.Setenv("EDITOR", tt.editor)

			h.Executor.LookPathFunc = func(file string) (string, error) {
				if tt.lookPathErr != nil {
					return "", tt.lookPathErr
				}
				return "/usr/bin/" + file, nil
			}
			h.Executor.StartFunc = func(name string, args ...string) error {
				if tt.edit == nil {
					return nil
				}
				return tt.edit(args[len(args)-1])
			}

			var err error
			out := captureOutput(func() {
				err = runEdit(editCmd, nil)
			})

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				if tt.errHasPath && !strings.Contains(err.Error(), h.Path) {
					t.Errorf("expected error to name %s, got %q", h.Path, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("runEdit() error = %v", err)
			}
			if !strings.Contains(out, tt.contains) {
				t.Errorf("output missing %q:\n%s", tt.contains, out)
			}

			calls := h.Executor.Recorded()
			if len(calls) != 1 || !calls[0].Interactive {
				t.Fatalf("expected one interactive call, got %+v", calls)
			}
			wantArgs := append(tt.wantArgs, h.Path)
			if strings.Join(calls[0].Args, " ") != strings.Join(wantArgs, " ") {
				t.Errorf("expected args %v, got %v", wantArgs, calls[0].Args)
			}
			if !strings.HasPrefix(calls[0].Name, "/usr/bin/") {
				t.Errorf("expected resolved editor path, got %s", calls[0].Name)
			}
		})
	}
}
