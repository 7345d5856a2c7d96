// Package executor runs external commands: the URL opener, $EDITOR, and the
// doctor's PATH checks. Tests swap in MockExecutor.
package executor

import (
	"os"
	"os/exec"
	"sync"
)

// CommandExecutor is an interface for executing system commands
type CommandExecutor interface {
	// Execute runs a command with the given name and arguments
	Execute(name string, args ...string) ([]byte, error)

	// Start launches a command without waiting for it to finish
	Start(name string, args ...string) error

	// RunInteractive runs a command attached to the terminal
	RunInteractive(name string, args ...string) error

	// LookPath searches for an executable in the directories named by the PATH
	LookPath(file string) (string, error)
}

// SystemExecutor implements CommandExecutor using os/exec
type SystemExecutor struct{}

// NewSystemExecutor creates a new SystemExecutor
func NewSystemExecutor() *SystemExecutor {
	return &SystemExecutor{}
}

// Execute runs a command and returns combined output
func (e *SystemExecutor) Execute(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

// Start launches a command and reaps it in the background.
func (e *SystemExecutor) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// RunInteractive runs a command with the process's stdin, stdout and stderr.
func (e *SystemExecutor) RunInteractive(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// LookPath searches for an executable
func (e *SystemExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// MockExecutor is a mock implementation for testing
type MockExecutor struct {
	ExecuteFunc  func(name string, args ...string) ([]byte, error)
	StartFunc    func(name string, args ...string) error
	LookPathFunc func(file string) (string, error)

	mu    sync.Mutex
	Calls []CommandCall
}

// CommandCall records a command execution for verification
type CommandCall struct {
	Name        string
	Args        []string
	Interactive bool
}

func (m *MockExecutor) record(call CommandCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
}

// Recorded returns a copy of the recorded calls.
func (m *MockExecutor) Recorded() []CommandCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]CommandCall(nil), m.Calls...)
}

// Execute calls the mock function
func (m *MockExecutor) Execute(name string, args ...string) ([]byte, error) {
	m.record(CommandCall{Name: name, Args: args})
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(name, args...)
	}
	return []byte(""), nil
}

// Start calls the mock function
func (m *MockExecutor) Start(name string, args ...string) error {
	m.record(CommandCall{Name: name, Args: args})
	if m.StartFunc != nil {
		return m.StartFunc(name, args...)
	}
	return nil
}

// RunInteractive records the call and delegates to StartFunc.
func (m *MockExecutor) RunInteractive(name string, args ...string) error {
	m.record(CommandCall{Name: name, Args: args, Interactive: true})
	if m.StartFunc != nil {
		return m.StartFunc(name, args...)
	}
	return nil
}

// LookPath calls the mock function
func (m *MockExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}
