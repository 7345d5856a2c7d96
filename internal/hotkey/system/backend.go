// Package system binds hotkeys with the operating system through
// golang.design/x/hotkey.
//
// On macOS the hotkey package needs the process main thread; the binary's
// main function must run under mainthread.Init.
package system

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"

	"github.com/qiushiyan/hop/internal/config"
	"github.com/qiushiyan/hop/internal/logger"
)

var log = logger.Named("hotkey")

var keyMap = map[string]hotkey.Key{
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,

	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,

	"space":  hotkey.KeySpace,
	"return": hotkey.KeyReturn,
	"tab":    hotkey.KeyTab,
	"escape": hotkey.KeyEscape,
	"delete": hotkey.KeyDelete,
	"up":     hotkey.KeyUp,
	"down":   hotkey.KeyDown,
	"left":   hotkey.KeyLeft,
	"right":  hotkey.KeyRight,
}

// translate converts a config hotkey to the hotkey package's key and
// modifiers.
func translate(hk config.Hotkey) (hotkey.Key, []hotkey.Modifier, error) {
	key, ok := keyMap[hk.NormalizedKey()]
	if !ok {
		return 0, nil, fmt.Errorf("unsupported key %q", hk.Key)
	}

	mods := make([]hotkey.Modifier, 0, len(hk.Modifiers))
	for _, m := range hk.SortedModifiers() {
		mod, ok := modifierMap[m]
		if !ok {
			return 0, nil, fmt.Errorf("unsupported modifier %q", m)
		}
		mods = append(mods, mod)
	}
	return key, mods, nil
}

type binding struct {
	hk   *hotkey.Hotkey
	done chan struct{}
}

// Backend registers named global hotkeys. Handlers run on key up.
type Backend struct {
	mu       sync.Mutex
	bindings map[string]*binding
}

// NewBackend creates an empty backend.
func NewBackend() *Backend {
	return &Backend{bindings: make(map[string]*binding)}
}

// Register binds hk under name, replacing any existing binding with that
// name.
func (b *Backend) Register(name string, hk config.Hotkey, onActivate func()) error {
	key, mods, err := translate(hk)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.bindings[name]; ok {
		b.release(name, old)
	}

	h := hotkey.New(mods, key)
	if err := h.Register(); err != nil {
		return fmt.Errorf("failed to register %s: %w", hk, err)
	}

	bd := &binding{hk: h, done: make(chan struct{})}
	b.bindings[name] = bd
	go listen(bd, onActivate)
	return nil
}

// Unregister removes the binding with the given name. Unknown names are
// ignored.
func (b *Backend) Unregister(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	bd, ok := b.bindings[name]
	if !ok {
		return nil
	}
	return b.release(name, bd)
}

// Close removes every binding.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for name, bd := range b.bindings {
		_ = b.release(name, bd)
	}
}

func (b *Backend) release(name string, bd *binding) error {
	delete(b.bindings, name)
	close(bd.done)
	if err := bd.hk.Unregister(); err != nil {
		return fmt.Errorf("failed to unregister %s: %w", name, err)
	}
	return nil
}

// listen drains key down events and fires onActivate on key up.
func listen(bd *binding, onActivate func()) {
	for {
		select {
		case <-bd.done:
			return
		case _, ok := <-bd.hk.Keydown():
			if !ok {
				return
			}
		case _, ok := <-bd.hk.Keyup():
			if !ok {
				return
			}
			if onActivate != nil {
				onActivate()
			} else {
				log.Debug("hotkey %v fired with no handler", bd.hk)
			}
		}
	}
}
