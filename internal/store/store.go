// Package store owns the on-disk configuration and the in-memory snapshot
// derived from it.
//
// The file is the single source of truth. Save writes the file and nothing
// else; the snapshot only changes when the file is (re)loaded, normally by
// the watcher observing the write. Every load publishes a State to
// subscribers in order.
//
//	s := store.New(path)
//	_ = s.EnsureExists()
//	cfg, err := s.Load()
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/qiushiyan/hop/internal/config"
	"github.com/qiushiyan/hop/internal/errors"
	"github.com/qiushiyan/hop/internal/logger"
	"github.com/qiushiyan/hop/internal/notify"
)

var log = logger.Named("store")

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// State is a published pair of snapshot and error. Config and Err may both
// be set when the store retains the last good snapshot on failure.
type State struct {
	Config *config.Configuration
	Err    error
}

// Subscription is an active observer registration.
type Subscription = notify.Subscription[State]

// Option configures a Store.
type Option func(*Store)

// WithRetainOnError keeps the last good snapshot when a load fails, instead
// of clearing it.
func WithRetainOnError(retain bool) Option {
	return func(s *Store) {
		s.retainOnError = retain
	}
}

// Store is the configuration store for a single file.
type Store struct {
	path          string
	retainOnError bool

	// mu serializes load/publish so observers see states in order.
	mu       sync.Mutex
	state    atomic.Pointer[State]
	notifier *notify.Notifier[State]
}

// New creates a store for the config file at path. Nothing is read until
// EnsureExists or Load is called.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:     filepath.Clean(path),
		notifier: notify.New[State](),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state.Store(&State{})
	return s
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}

// Config returns the current snapshot, or nil if none is held.
func (s *Store) Config() *config.Configuration {
	return s.state.Load().Config
}

// Err returns the most recent error, or nil.
func (s *Store) Err() error {
	return s.state.Load().Err
}

// State returns the current published state.
func (s *Store) State() State {
	return *s.state.Load()
}

// Subscribe registers fn to receive every published state. Observers run
// while the store is publishing and must not call Load or Save themselves.
func (s *Store) Subscribe(fn func(State)) *Subscription {
	return s.notifier.Subscribe(fn)
}

// EnsureExists creates the config directory and, if the file is missing,
// writes the default document. It is safe to call repeatedly.
func (s *Store) EnsureExists() error {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return s.fail(errors.DirectoryCreate(err))
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return s.fail(errors.DefaultWrite(err))
	}

	data, err := s.defaultDocument()
	if err != nil {
		return s.fail(errors.DefaultWrite(err))
	}
	if err := writeAtomic(s.path, data, filePerm); err != nil {
		return s.fail(errors.DefaultWrite(err))
	}

	log.Info("created default config at %s", s.path)
	return nil
}

func (s *Store) defaultDocument() ([]byte, error) {
	cfg, err := config.Default(s.path)
	if err != nil {
		return nil, err
	}
	return config.Encode(cfg)
}

// Load reads and decodes the file, replacing the snapshot on success. On
// failure the error is published and the snapshot is cleared, unless the
// store was created WithRetainOnError. Errors from EnsureExists and Save
// never clear the snapshot.
func (s *Store) Load() (*config.Configuration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, s.loadFailedLocked(errors.Read(err))
	}

	cfg, err := config.Decode(data)
	if err != nil {
		return nil, s.loadFailedLocked(err)
	}

	s.publishLocked(State{Config: cfg})
	log.DebugFields("config loaded", map[string]any{
		"categories": len(cfg.Categories),
		"links":      len(cfg.AllLinks()),
	})
	return cfg, nil
}

// Reload is Load for callers that only observe the published state, such
// as the watcher callback.
func (s *Store) Reload() {
	_, _ = s.Load()
}

// Save encodes cfg and atomically replaces the file. The snapshot is not
// updated here; the watcher picks up the write and reloads.
func (s *Store) Save(cfg *config.Configuration) error {
	if cfg == nil {
		return s.fail(errors.Write(fmt.Errorf("nil configuration")))
	}

	data, err := config.Encode(cfg)
	if err != nil {
		return s.fail(errors.Write(err))
	}

	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return s.fail(errors.Write(err))
	}
	if err := writeAtomic(s.path, data, filePerm); err != nil {
		return s.fail(errors.Write(err))
	}

	log.Debug("config saved to %s", s.path)
	return nil
}

// UpdateGlobalHotkey saves a copy of the current snapshot with its global
// hotkey replaced. A nil hotkey removes it. Without a snapshot this is a
// no-op.
func (s *Store) UpdateGlobalHotkey(hk *config.Hotkey) error {
	current := s.Config()
	if current == nil {
		log.Warn("no config loaded, global hotkey not updated")
		return nil
	}

	next := current.Clone()
	if hk != nil {
		h := *hk
		h.Modifiers = append([]config.Modifier(nil), hk.Modifiers...)
		next.GlobalHotkey = &h
	} else {
		next.GlobalHotkey = nil
	}
	return s.Save(next)
}

// fail publishes err next to the current snapshot and returns it.
func (s *Store) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publishLocked(State{Config: s.state.Load().Config, Err: err})
	log.Warn("%v", err)
	return err
}

// loadFailedLocked publishes a load error. The snapshot is dropped unless
// the store retains it.
func (s *Store) loadFailedLocked(err error) error {
	next := State{Err: err}
	if s.retainOnError {
		next.Config = s.state.Load().Config
	}
	s.publishLocked(next)
	log.Warn("%v", err)
	return err
}

func (s *Store) publishLocked(st State) {
	s.state.Store(&st)
	s.notifier.Notify(st)
}
