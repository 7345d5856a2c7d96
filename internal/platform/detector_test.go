package platform

import (
	"os"
	"runtime"
	"testing"
)

func TestOpenerFor(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
		wantErr  bool
	}{
		{"darwin", "open", []string{"https://example.com"}, false},
		{"linux", "xdg-open", []string{"https://example.com"}, false},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", "https://example.com"}, false},
		{"plan9", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			opener, err := OpenerFor(tt.goos)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			name, args := opener.Command("https://example.com")
			if name != tt.wantName {
				t.Errorf("expected name=%s, got %s", tt.wantName, name)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected args=%v, got %v", tt.wantArgs, args)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %s, want %s", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestCommandDoesNotAlias(t *testing.T) {
	opener := Opener{Name: "rundll32", Args: []string{"url.dll,FileProtocolHandler"}}
	_, a := opener.Command("first")
	_, b := opener.Command("second")
	if a[1] != "first" || b[1] != "second" || len(opener.Args) != 1 {
		t.Errorf("Command mutated shared args: %v %v %v", a, b, opener.Args)
	}
}

func TestHandlerQuery(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantOK   bool
	}{
		{"linux", "xdg-mime", true},
		{"freebsd", "xdg-mime", true},
		{"darwin", "", false},
		{"windows", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, ok := HandlerQuery(tt.goos)
			if ok != tt.wantOK || name != tt.wantName {
				t.Errorf("HandlerQuery(%q) = %q, %v, want %q, %v", tt.goos, name, ok, tt.wantName, tt.wantOK)
			}
			if ok && args[len(args)-1] != "x-scheme-handler/https" {
				t.Errorf("unexpected args %v", args)
			}
		})
	}
}

func TestDetectOpener(t *testing.T) {
	_, err := DetectOpener()
	switch runtime.GOOS {
	case "darwin", "linux", "windows":
		if err != nil {
			t.Errorf("expected opener on %s: %v", runtime.GOOS, err)
		}
	}
}

func TestDefaultEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "nano")
	if got := DefaultEditor(); got != "nano" {
		t.Errorf("expected nano, got %s", got)
	}

	t.Setenv("VISUAL", "code -w")
	if got := DefaultEditor(); got != "code -w" {
		t.Errorf("expected VISUAL to win, got %s", got)
	}

	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	if got := DefaultEditor(); got == "" {
		t.Error("expected a fallback editor")
	}
}

func TestPathExists(t *testing.T) {
	// Root path should always exist
	if !pathExists("/") {
		t.Error("root path should exist")
	}

	// Non-existent path should return false
	if pathExists("/this/path/should/definitely/not/exist/anywhere") {
		t.Error("non-existent path should return false")
	}
}

func TestDirWritable(t *testing.T) {
	dir := t.TempDir()
	if !DirWritable(dir) {
		t.Error("temp dir should be writable")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("DirWritable left files behind: %v", entries)
	}
	if DirWritable("/this/path/should/definitely/not/exist/anywhere") {
		t.Error("missing dir should not be writable")
	}
}

func TestPlatform(t *testing.T) {
	p := Platform()
	if p == "" {
		t.Error("Platform() should return non-empty string")
	}

	// Should contain GOOS and GOARCH
	expected := runtime.GOOS + "/" + runtime.GOARCH
	if p != expected {
		t.Errorf("expected %s, got %s", expected, p)
	}
}
