package cli

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"

	"github.com/qiushiyan/hop/internal/config"
	"github.com/qiushiyan/hop/internal/executor"
	"github.com/qiushiyan/hop/internal/hotkey"
	"github.com/qiushiyan/hop/internal/store"
)

// MockConfigStore is an in-memory test double for ConfigStore
type MockConfigStore struct {
	File      string
	Cfg       *config.Configuration
	EnsureErr error
	LoadErr   error
	SaveErr   error

	EnsureCalls int
	SaveCalls   int
}

func (m *MockConfigStore) Path() string {
	if m.File == "" {
		return "/tmp/hop/config.json"
	}
	return m.File
}

func (m *MockConfigStore) EnsureExists() error {
	m.EnsureCalls++
	return m.EnsureErr
}

func (m *MockConfigStore) Load() (*config.Configuration, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cfg == nil {
		m.Cfg = config.New()
	}
	return m.Cfg, nil
}

func (m *MockConfigStore) Save(cfg *config.Configuration) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Cfg = cfg
	return nil
}

func (m *MockConfigStore) UpdateGlobalHotkey(hk *config.Hotkey) error {
	if m.Cfg == nil {
		return nil
	}
	next := m.Cfg.Clone()
	next.GlobalHotkey = hk
	return m.Save(next)
}

// MockStoreFactory always returns the same store
type MockStoreFactory struct {
	Store ConfigStore
	Paths []string
}

func (m *MockStoreFactory) Create(path string) ConfigStore {
	m.Paths = append(m.Paths, path)
	return m.Store
}

// MockBackend records hotkey registrations
type MockBackend struct {
	mu       sync.Mutex
	Bindings map[string]config.Hotkey
	Err      error
}

func NewMockBackend() *MockBackend {
	return &MockBackend{Bindings: make(map[string]config.Hotkey)}
}

func (m *MockBackend) Register(name string, hk config.Hotkey, onActivate func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Bindings[name] = hk
	return nil
}

func (m *MockBackend) Unregister(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Bindings, name)
	return nil
}

// Names returns the bound names.
func (m *MockBackend) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.Bindings))
	for name := range m.Bindings {
		names = append(names, name)
	}
	return names
}

// MockBackendFactory returns a fixed backend
type MockBackendFactory struct {
	Backend *MockBackend
}

func (m *MockBackendFactory) Create() hotkey.Backend {
	return m.Backend
}

// MockStdinReader is a test double for StdinReader
type MockStdinReader struct {
	Input string
	pos   int
}

func (m *MockStdinReader) ReadString(delim byte) (string, error) {
	if m.pos >= len(m.Input) {
		return "", errors.New("EOF")
	}
	idx := strings.IndexByte(m.Input[m.pos:], delim)
	if idx == -1 {
		result := m.Input[m.pos:]
		m.pos = len(m.Input)
		return result, nil
	}
	result := m.Input[m.pos : m.pos+idx+1]
	m.pos += idx + 1
	return result, nil
}

// MockDependenciesBuilder helps create mock dependencies for tests
type MockDependenciesBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a new MockDependenciesBuilder with sensible defaults:
// an in-memory store holding an empty config, a recording executor and
// stdin answering "y".
func NewMockDeps() *MockDependenciesBuilder {
	return &MockDependenciesBuilder{
		deps: &Dependencies{
			StoreFactory:   &MockStoreFactory{Store: &MockConfigStore{Cfg: config.New()}},
			BackendFactory: &MockBackendFactory{Backend: NewMockBackend()},
			Executor:       &executor.MockExecutor{},
			StdinReader:    &MockStdinReader{Input: "y\n"},
		},
	}
}

// WithConfig sets the config held by the in-memory store
func (b *MockDependenciesBuilder) WithConfig(cfg *config.Configuration) *MockDependenciesBuilder {
	b.deps.StoreFactory = &MockStoreFactory{Store: &MockConfigStore{Cfg: cfg}}
	return b
}

// WithStore sets a custom config store
func (b *MockDependenciesBuilder) WithStore(s ConfigStore) *MockDependenciesBuilder {
	b.deps.StoreFactory = &MockStoreFactory{Store: s}
	return b
}

// WithRealStore uses the file-backed store
func (b *MockDependenciesBuilder) WithRealStore() *MockDependenciesBuilder {
	b.deps.StoreFactory = &realStoreFactory{}
	return b
}

// WithBackend sets the hotkey backend used by 'hop run'
func (b *MockDependenciesBuilder) WithBackend(backend *MockBackend) *MockDependenciesBuilder {
	b.deps.BackendFactory = &MockBackendFactory{Backend: backend}
	return b
}

// WithExecutor sets the command executor
func (b *MockDependenciesBuilder) WithExecutor(exec executor.CommandExecutor) *MockDependenciesBuilder {
	b.deps.Executor = exec
	return b
}

// WithStdinInput sets the stdin input for the mock
func (b *MockDependenciesBuilder) WithStdinInput(input string) *MockDependenciesBuilder {
	b.deps.StdinReader = &MockStdinReader{Input: input}
	return b
}

// Build returns the configured Dependencies
func (b *MockDependenciesBuilder) Build() *Dependencies {
	return b.deps
}

// TestHelper provides utilities for CLI tests
type TestHelper struct {
	T interface {
		Helper()
		Cleanup(func())
		TempDir() string
	}
	OldDeps  *Dependencies
	Path     string
	Executor *executor.MockExecutor
}

// NewTestHelper points the CLI at a config file in a temp dir, backed by
// the real store, and records external commands.
func NewTestHelper(t interface {
	Helper()
	Cleanup(func())
	TempDir() string
}) *TestHelper {
	t.Helper()

	exec := &executor.MockExecutor{}
	helper := &TestHelper{
		T:        t,
		OldDeps:  deps,
		Path:     filepath.Join(t.TempDir(), "hop", "config.json"),
		Executor: exec,
	}

	oldPath, oldJSON := configPath, jsonOutput
	deps = NewMockDeps().WithRealStore().WithExecutor(exec).Build()
	configPath = helper.Path
	jsonOutput = false

	t.Cleanup(func() {
		deps = helper.OldDeps
		configPath = oldPath
		jsonOutput = oldJSON
	})

	return helper
}

// SetStdinInput sets the stdin input
func (h *TestHelper) SetStdinInput(input string) {
	deps.StdinReader = &MockStdinReader{Input: input}
}

// Store opens the helper's config file directly.
func (h *TestHelper) Store() *store.Store {
	return store.New(h.Path)
}

// Config bootstraps and loads the helper's config file.
func (h *TestHelper) Config() (*config.Configuration, error) {
	s := h.Store()
	if err := s.EnsureExists(); err != nil {
		return nil, err
	}
	return s.Load()
}
