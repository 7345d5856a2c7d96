// Package app wires the config core together: the store, the file watcher,
// the hotkey registrar, search and the URL opener. It also holds the panel
// state a UI binds to.
//
// A presentation layer only talks to App:
//
//	a := app.New(store.New(path), opener, system.NewBackend())
//	if err := a.Start(); err != nil { ... }
//	defer a.Close()
//	for ev := range a.Events() { render(ev, a.FilteredLinks(ev.Query)) }
package app

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/qiushiyan/hop/internal/config"
	"github.com/qiushiyan/hop/internal/hotkey"
	"github.com/qiushiyan/hop/internal/logger"
	"github.com/qiushiyan/hop/internal/search"
	"github.com/qiushiyan/hop/internal/store"
	"github.com/qiushiyan/hop/internal/watcher"
)

var log = logger.Named("app")

const defaultEventBuffer = 16

// PanelState is what the floating panel shows.
type PanelState struct {
	Visible bool   `json:"visible"`
	Query   string `json:"query"`
}

// Option configures an App.
type Option func(*App)

// WithDebounce sets the watcher's coalescing window.
func WithDebounce(d time.Duration) Option {
	return func(a *App) {
		a.debounce = d
	}
}

// WithoutWatcher disables live reload. One-shot commands use this.
func WithoutWatcher() Option {
	return func(a *App) {
		a.watch = false
	}
}

// WithEventBuffer sets the capacity of the Events channel.
func WithEventBuffer(n int) Option {
	return func(a *App) {
		if n > 0 {
			a.bufSize = n
		}
	}
}

// indexed pairs a snapshot with its search index.
type indexed struct {
	cfg   *config.Configuration
	index *search.Index
}

// App is the composition root of the config core.
type App struct {
	store     *store.Store
	opener    hotkey.Opener
	registrar *hotkey.Registrar

	watch    bool
	debounce time.Duration
	bufSize  int

	watcher *watcher.Watcher
	sub     *store.Subscription
	index   atomic.Pointer[indexed]

	mu      sync.Mutex
	panel   PanelState
	events  chan PanelState
	started bool
	closed  bool
}

// New creates an App. backend may be nil when no hotkeys should be bound.
func New(s *store.Store, opener hotkey.Opener, backend hotkey.Backend, opts ...Option) *App {
	a := &App{
		store:    s,
		opener:   opener,
		watch:    true,
		debounce: watcher.DefaultDebounce,
		bufSize:  defaultEventBuffer,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.events = make(chan PanelState, a.bufSize)
	if backend != nil {
		a.registrar = hotkey.NewRegistrar(backend, opener, a.TogglePanel)
	}
	return a
}

// Start bootstraps the config file, loads it, binds hotkeys and starts
// watching for edits. Config errors do not fail Start; they are available
// from Err.
func (a *App) Start() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return fmt.Errorf("app is closed")
	}
	if a.started {
		a.mu.Unlock()
		return nil
	}
	a.started = true
	a.mu.Unlock()

	_ = a.store.EnsureExists()

	if a.registrar != nil {
		a.sub = a.store.Subscribe(func(st store.State) {
			a.registrar.Apply(st.Config)
		})
	}

	_, _ = a.store.Load()

	if a.watch {
		w := watcher.New(a.store.Path(), a.store.Reload, watcher.WithDebounce(a.debounce))
		if err := w.Start(); err != nil {
			log.Warn("live reload disabled: %v", err)
		} else {
			a.watcher = w
		}
	}

	log.Debug("started with config %s", a.store.Path())
	return nil
}

// Close stops watching, drops the store subscription and unregisters all
// hotkeys. The Events channel is closed.
func (a *App) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	close(a.events)
	a.mu.Unlock()

	var err error
	if a.watcher != nil {
		err = a.watcher.Close()
	}
	a.sub.Unsubscribe()
	if a.registrar != nil {
		a.registrar.Close()
	}
	return err
}

// Path returns the config file path.
func (a *App) Path() string {
	return a.store.Path()
}

// Config returns the current snapshot, or nil.
func (a *App) Config() *config.Configuration {
	return a.store.Config()
}

// Err returns the current config error, or nil.
func (a *App) Err() error {
	return a.store.Err()
}

// Watching reports whether live reload is active.
func (a *App) Watching() bool {
	return a.watcher != nil
}

// Bindings returns the names of the registered hotkeys.
func (a *App) Bindings() []string {
	if a.registrar == nil {
		return nil
	}
	return a.registrar.Registered()
}

// FilteredLinks returns the links of the current snapshot matching query.
// Without a snapshot the result is empty.
func (a *App) FilteredLinks(query string) []config.Link {
	cfg := a.store.Config()
	if cfg == nil {
		return []config.Link{}
	}

	cur := a.index.Load()
	if cur == nil || cur.cfg != cfg {
		cur = &indexed{cfg: cfg, index: search.NewIndex(cfg)}
		a.index.Store(cur)
	}
	return cur.index.Search(query)
}

// OpenLink opens link and dismisses the panel.
func (a *App) OpenLink(link config.Link) error {
	if err := a.opener.Open(link.URL); err != nil {
		return err
	}
	a.DismissPanel()
	return nil
}

// Save writes cfg. The snapshot updates once the watcher sees the write.
func (a *App) Save(cfg *config.Configuration) error {
	return a.store.Save(cfg)
}

// UpdateGlobalHotkey replaces the global hotkey. nil removes it.
func (a *App) UpdateGlobalHotkey(hk *config.Hotkey) error {
	return a.store.UpdateGlobalHotkey(hk)
}

// Reload re-reads the config file.
func (a *App) Reload() error {
	_, err := a.store.Load()
	return err
}

// Events delivers panel state changes. When the buffer is full the oldest
// pending state is dropped.
func (a *App) Events() <-chan PanelState {
	return a.events
}

// Panel returns the current panel state.
func (a *App) Panel() PanelState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.panel
}

// TogglePanel shows or hides the panel. Showing it clears the query.
func (a *App) TogglePanel() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.panel.Visible = !a.panel.Visible
	if a.panel.Visible {
		a.panel.Query = ""
	}
	a.publishLocked()
}

// DismissPanel hides the panel and clears the query.
func (a *App) DismissPanel() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.panel = PanelState{}
	a.publishLocked()
}

// SetQuery updates the search query.
func (a *App) SetQuery(q string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.panel.Query == q {
		return
	}
	a.panel.Query = q
	a.publishLocked()
}

func (a *App) publishLocked() {
	if a.closed {
		return
	}
	st := a.panel
	select {
	case a.events <- st:
		return
	default:
	}
	// Full: drop the oldest pending state.
	select {
	case <-a.events:
	default:
	}
	select {
	case a.events <- st:
	default:
	}
}
