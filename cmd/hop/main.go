package main

import (
	"golang.design/x/hotkey/mainthread"

	"github.com/qiushiyan/hop/internal/cli"
)

// version is set via ldflags
var version = "dev"

func main() {
	// Global hotkeys on macOS must be serviced from the main thread.
	mainthread.Init(func() {
		cli.SetVersion(version)
		cli.Execute()
	})
}
