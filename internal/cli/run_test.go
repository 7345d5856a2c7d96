package cli

import (
	"context"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/qiushiyan/hop/internal/platform"
)

func TestRunStopsOnCancel(t *testing.T) {
	if _, err := platform.DetectOpener(); err != nil {
		t.Skipf("no opener on %s", runtime.GOOS)
	}
	h := NewTestHelper(t)
	backend := NewMockBackend()
	deps.BackendFactory = &MockBackendFactory{Backend: backend}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runCmd.SetContext(ctx)
	defer runCmd.SetContext(context.Background())

	var err error
	out := captureOutput(func() {
		err = runRun(runCmd, nil)
	})
	if err != nil {
		t.Fatalf("runRun() error = %v", err)
	}

	if !strings.Contains(out, "1 hotkeys bound") {
		t.Errorf("expected the toggle to be bound, got:\n%s", out)
	}
	if !strings.Contains(out, "Shutting down") {
		t.Errorf("expected shutdown message, got:\n%s", out)
	}
	if _, err := os.Stat(h.Path); err != nil {
		t.Errorf("config should be bootstrapped: %v", err)
	}
	if names := backend.Names(); len(names) != 0 {
		t.Errorf("hotkeys should be released on exit, got %v", names)
	}
}

func TestRunReportsBrokenConfig(t *testing.T) {
	if _, err := platform.DetectOpener(); err != nil {
		t.Skipf("no opener on %s", runtime.GOOS)
	}
	h := NewTestHelper(t)
	writeConfig(t, h.Path, `{"categories": "nope"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runCmd.SetContext(ctx)
	defer runCmd.SetContext(context.Background())

	var err error
	out := captureOutput(func() {
		err = runRun(runCmd, nil)
	})
	if err != nil {
		t.Fatalf("runRun() error = %v", err)
	}
	if !strings.Contains(out, "Type mismatch") {
		t.Errorf("expected parse error, got:\n%s", out)
	}
	if !strings.Contains(out, "0 hotkeys bound") {
		t.Errorf("expected no bindings, got:\n%s", out)
	}
}
