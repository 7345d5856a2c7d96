// Package platform provides platform-specific commands for opening URLs and
// files with the desktop's default handler.
package platform

import (
	"fmt"
	"os"
	"runtime"
)

// Opener describes the command that hands a URL to the default handler.
type Opener struct {
	Name string
	Args []string
}

// Command returns the executable and arguments that open target.
func (o Opener) Command(target string) (string, []string) {
	args := make([]string, 0, len(o.Args)+1)
	args = append(args, o.Args...)
	args = append(args, target)
	return o.Name, args
}

// DetectOpener returns the opener command for the current platform.
func DetectOpener() (Opener, error) {
	return OpenerFor(runtime.GOOS)
}

// OpenerFor returns the opener command for goos.
func OpenerFor(goos string) (Opener, error) {
	switch goos {
	case "darwin":
		return Opener{Name: "open"}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return Opener{Name: "xdg-open"}, nil
	case "windows":
		return Opener{Name: "rundll32", Args: []string{"url.dll,FileProtocolHandler"}}, nil
	default:
		return Opener{}, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// HandlerQuery returns the command that prints the desktop's default handler
// for https links on goos. ok is false where no such command exists.
func HandlerQuery(goos string) (name string, args []string, ok bool) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-mime", []string{"query", "default", "x-scheme-handler/https"}, true
	default:
		return "", nil, false
	}
}

// DefaultEditor returns $VISUAL, then $EDITOR, then a platform default.
func DefaultEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "vi"
}

// pathExists checks if a path exists on the filesystem.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DirWritable reports whether dir exists and a file can be created in it.
func DirWritable(dir string) bool {
	if !pathExists(dir) {
		return false
	}
	f, err := os.CreateTemp(dir, ".hop-doctor-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	_ = os.Remove(name)
	return true
}

// Platform returns a string describing the current platform.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
