// Package opener hands URLs to the system default handler.
package opener

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/qiushiyan/hop/internal/executor"
	"github.com/qiushiyan/hop/internal/logger"
	"github.com/qiushiyan/hop/internal/platform"
)

var log = logger.Named("opener")

const homeFilePrefix = "file://~"

// Opener starts the platform open command for a URL without waiting for it.
type Opener struct {
	exec    executor.CommandExecutor
	command platform.Opener
}

// New creates an opener for the current platform.
func New(exec executor.CommandExecutor) (*Opener, error) {
	cmd, err := platform.DetectOpener()
	if err != nil {
		return nil, err
	}
	return NewWithCommand(exec, cmd), nil
}

// NewWithCommand creates an opener that runs cmd.
func NewWithCommand(exec executor.CommandExecutor, cmd platform.Opener) *Opener {
	return &Opener{exec: exec, command: cmd}
}

// Open launches the default handler for url.
func (o *Opener) Open(url string) error {
	target, err := Expand(url)
	if err != nil {
		return err
	}

	name, args := o.command.Command(target)
	if err := o.exec.Start(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	log.Debug("opened %s", target)
	return nil
}

// Command returns the platform command the opener runs.
func (o *Opener) Command() platform.Opener {
	return o.command
}

// Expand validates url and resolves a leading file://~ to the home
// directory.
func Expand(url string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", fmt.Errorf("empty url")
	}
	if !strings.HasPrefix(url, homeFilePrefix) {
		return url, nil
	}

	rest := strings.TrimPrefix(url, homeFilePrefix)
	if rest != "" && !strings.HasPrefix(rest, "/") {
		// file://~user/... is left to the handler.
		return url, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return "file://" + filepath.ToSlash(home) + rest, nil
}
