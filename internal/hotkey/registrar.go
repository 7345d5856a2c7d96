// Package hotkey keeps OS-level hotkey bindings in step with the
// configuration.
//
// A Registrar holds what it last registered and, on every Apply, diffs the
// bindings derived from the new snapshot against that set. Only changed
// bindings touch the backend. Failures are logged and retried on the next
// Apply; they are never returned to the caller.
package hotkey

import (
	"sort"
	"sync"

	"github.com/qiushiyan/hop/internal/config"
	"github.com/qiushiyan/hop/internal/logger"
)

var log = logger.Named("hotkey")

// ToggleName is the binding name of the global panel toggle.
const ToggleName = "togglePanel"

const linkPrefix = "link:"

// LinkName returns the binding name for the link with the given URL.
func LinkName(url string) string {
	return linkPrefix + url
}

// Backend registers named hotkeys with the OS. Registering a name that is
// already bound replaces the binding.
type Backend interface {
	Register(name string, hk config.Hotkey, onActivate func()) error
	Unregister(name string) error
}

// Opener opens a link's URL with the system default handler.
type Opener interface {
	Open(url string) error
}

type linkBinding struct {
	url    string
	hotkey config.Hotkey
}

// Registrar reconciles backend bindings against configuration snapshots.
type Registrar struct {
	backend  Backend
	opener   Opener
	onToggle func()

	mu     sync.Mutex
	toggle *config.Hotkey
	links  map[string]linkBinding
	closed bool
}

// NewRegistrar creates a registrar. onToggle runs when the global hotkey
// fires; link hotkeys open their URL through opener.
func NewRegistrar(backend Backend, opener Opener, onToggle func()) *Registrar {
	return &Registrar{
		backend:  backend,
		opener:   opener,
		onToggle: onToggle,
		links:    make(map[string]linkBinding),
	}
}

// Apply brings the backend in line with cfg. A nil cfg clears the toggle
// binding and leaves link bindings as they are.
func (r *Registrar) Apply(cfg *config.Configuration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	var global *config.Hotkey
	if cfg != nil {
		global = cfg.GlobalHotkey
	}
	r.applyToggleLocked(global)

	if cfg == nil {
		return
	}
	r.applyLinksLocked(desiredLinks(cfg))
}

func (r *Registrar) applyToggleLocked(hk *config.Hotkey) {
	if hk != nil && !hk.KnownKey() {
		log.Warn("global hotkey %s has an unknown key, skipping", hk)
		hk = nil
	}

	if hk == nil {
		if r.toggle == nil {
			return
		}
		if err := r.backend.Unregister(ToggleName); err != nil {
			log.WarnFields("failed to unregister hotkey", map[string]any{"binding": ToggleName, "error": err})
			return
		}
		r.toggle = nil
		return
	}

	if r.toggle != nil && r.toggle.Equal(*hk) {
		return
	}
	want := *hk
	if err := r.backend.Register(ToggleName, want, r.toggleHandler()); err != nil {
		log.WarnFields("failed to register hotkey", map[string]any{"binding": ToggleName, "hotkey": want.String(), "error": err})
		return
	}
	r.toggle = &want
	log.Debug("registered %s as %s", ToggleName, want)
}

type desiredLink struct {
	name string
	linkBinding
}

// desiredLinks derives link bindings in configuration order. A URL that
// appears twice keeps its first position and its last hotkey.
func desiredLinks(cfg *config.Configuration) []desiredLink {
	var out []desiredLink
	index := make(map[string]int)
	for _, link := range cfg.AllLinks() {
		if link.Shortcut == nil {
			continue
		}
		if !link.Shortcut.KnownKey() {
			log.Warn("link %q hotkey %s has an unknown key, skipping", link.Name, link.Shortcut)
			continue
		}
		d := desiredLink{
			name:        LinkName(link.ID()),
			linkBinding: linkBinding{url: link.URL, hotkey: *link.Shortcut},
		}
		if i, ok := index[d.name]; ok {
			out[i] = d
			continue
		}
		index[d.name] = len(out)
		out = append(out, d)
	}
	return out
}

func (r *Registrar) applyLinksLocked(desired []desiredLink) {
	keep := make(map[string]bool, len(desired))
	for _, d := range desired {
		keep[d.name] = true
	}

	var stale []string
	for name := range r.links {
		if !keep[name] {
			stale = append(stale, name)
		}
	}
	sort.Strings(stale)
	for _, name := range stale {
		if err := r.backend.Unregister(name); err != nil {
			log.WarnFields("failed to unregister hotkey", map[string]any{"binding": name, "error": err})
			continue
		}
		delete(r.links, name)
		log.Debug("unregistered %s", name)
	}

	for _, d := range desired {
		if cur, ok := r.links[d.name]; ok && cur.url == d.url && cur.hotkey.Equal(d.hotkey) {
			continue
		}
		if err := r.backend.Register(d.name, d.hotkey, r.linkHandler(d.url)); err != nil {
			log.WarnFields("failed to register hotkey", map[string]any{"binding": d.name, "hotkey": d.hotkey.String(), "error": err})
			delete(r.links, d.name)
			continue
		}
		r.links[d.name] = d.linkBinding
		log.Debug("registered %s as %s", d.name, d.hotkey)
	}
}

func (r *Registrar) toggleHandler() func() {
	return func() {
		if r.onToggle != nil {
			r.onToggle()
		}
	}
}

func (r *Registrar) linkHandler(url string) func() {
	return func() {
		if r.opener == nil {
			return
		}
		if err := r.opener.Open(url); err != nil {
			log.Warn("failed to open %s: %v", url, err)
		}
	}
}

// Registered returns the names of all active bindings, sorted.
func (r *Registrar) Registered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.links)+1)
	if r.toggle != nil {
		names = append(names, ToggleName)
	}
	for name := range r.links {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close unregisters every binding. Later calls to Apply do nothing.
func (r *Registrar) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true

	if r.toggle != nil {
		if err := r.backend.Unregister(ToggleName); err != nil {
			log.Warn("failed to unregister %s: %v", ToggleName, err)
		}
		r.toggle = nil
	}

	names := make([]string, 0, len(r.links))
	for name := range r.links {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := r.backend.Unregister(name); err != nil {
			log.Warn("failed to unregister %s: %v", name, err)
		}
	}
	r.links = make(map[string]linkBinding)
}
