// Package output renders user-facing results on stdout: colored status
// lines, tables for link listings, and JSON or YAML for machine output.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.Bold)
)

// Check statuses.
const (
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusError   = "error"
)

// JSON outputs data as JSON
func JSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

// YAML outputs data as YAML
func YAML(data any) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// Raw writes data unchanged.
func Raw(data []byte) error {
	_, err := os.Stdout.Write(data)
	return err
}

// Table outputs data as a formatted table
func Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = displayWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && displayWidth(cell) > widths[i] {
				widths[i] = displayWidth(cell)
			}
		}
	}

	fmt.Println(strings.Join(pad(headers, widths), "  "))

	sepLine := make([]string, len(headers))
	for i, w := range widths {
		sepLine[i] = strings.Repeat("-", w)
	}
	fmt.Println(strings.Join(sepLine, "  "))

	for _, row := range rows {
		cells := make([]string, len(headers))
		copy(cells, row)
		fmt.Println(strings.TrimRight(strings.Join(pad(cells, widths), "  "), " "))
	}
}

func pad(cells []string, widths []int) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c + strings.Repeat(" ", widths[i]-displayWidth(c))
	}
	return out
}

// displayWidth counts runes, so link names with accents line up.
func displayWidth(s string) int {
	return len([]rune(s))
}

// Header prints a bold section header
func Header(format string, args ...any) {
	_, _ = headerColor.Printf(format+"\n", args...)
}

// Check prints a status line for a diagnostic check.
func Check(status, format string, args ...any) {
	switch status {
	case StatusSuccess:
		Success(format, args...)
	case StatusWarning:
		Warn(format, args...)
	default:
		Error(format, args...)
	}
}

// Success prints a success message
func Success(format string, args ...any) {
	_, _ = successColor.Printf("✓ "+format+"\n", args...)
}

// Error prints an error message
func Error(format string, args ...any) {
	_, _ = errorColor.Printf("✗ "+format+"\n", args...)
}

// Warn prints a warning message
func Warn(format string, args ...any) {
	_, _ = warnColor.Printf("! "+format+"\n", args...)
}

// Info prints an info message
func Info(format string, args ...any) {
	_, _ = infoColor.Printf("→ "+format+"\n", args...)
}

// Print prints a plain message
func Print(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}
