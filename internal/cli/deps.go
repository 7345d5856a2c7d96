package cli

import (
	"github.com/qiushiyan/hop/internal/config"
	"github.com/qiushiyan/hop/internal/executor"
	"github.com/qiushiyan/hop/internal/hotkey"
	"github.com/qiushiyan/hop/internal/hotkey/system"
	"github.com/qiushiyan/hop/internal/input"
	"github.com/qiushiyan/hop/internal/store"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	StoreFactory   StoreFactory
	BackendFactory BackendFactory
	Executor       executor.CommandExecutor
	StdinReader    input.Reader
}

// ConfigStore is the part of the config store the commands use
type ConfigStore interface {
	Path() string
	EnsureExists() error
	Load() (*config.Configuration, error)
	Save(cfg *config.Configuration) error
	UpdateGlobalHotkey(hk *config.Hotkey) error
}

// StoreFactory opens the config store at a path
type StoreFactory interface {
	Create(path string) ConfigStore
}

// BackendFactory creates the OS hotkey backend for 'hop run'
type BackendFactory interface {
	Create() hotkey.Backend
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	StoreFactory:   &realStoreFactory{},
	BackendFactory: &realBackendFactory{},
	Executor:       executor.NewSystemExecutor(),
	StdinReader:    input.NewStdinReader(),
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

// Real implementations

type realStoreFactory struct{}

func (r *realStoreFactory) Create(path string) ConfigStore {
	return store.New(path)
}

type realBackendFactory struct{}

func (r *realBackendFactory) Create() hotkey.Backend {
	return system.NewBackend()
}
