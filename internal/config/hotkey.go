package config

import (
	"fmt"
	"slices"
	"strings"
)

// Modifier is a hotkey modifier key.
type Modifier string

// Supported modifiers.
const (
	ModCommand Modifier = "command"
	ModControl Modifier = "control"
	ModOption  Modifier = "option"
	ModShift   Modifier = "shift"
)

// modifierOrder is the canonical rendering order.
var modifierOrder = []Modifier{ModCommand, ModControl, ModOption, ModShift}

// Valid reports whether m is one of the supported modifiers.
func (m Modifier) Valid() bool {
	return slices.Contains(modifierOrder, m)
}

// keyTokens is the fixed set of keys a binding can use.
var keyTokens = []string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"space", "return", "tab", "escape", "delete",
	"up", "down", "left", "right",
}

// KeyTokens returns the supported key tokens.
func KeyTokens() []string {
	return slices.Clone(keyTokens)
}

// modifierAliases maps CLI spellings to modifiers
var modifierAliases = map[string]Modifier{
	"cmd":     ModCommand,
	"command": ModCommand,
	"super":   ModCommand,
	"ctrl":    ModControl,
	"control": ModControl,
	"opt":     ModOption,
	"option":  ModOption,
	"alt":     ModOption,
	"shift":   ModShift,
}

// Hotkey is a key plus a set of modifiers.
type Hotkey struct {
	Key       string     `json:"key" yaml:"key"`
	Modifiers []Modifier `json:"modifiers" yaml:"modifiers"`
}

// NormalizedKey returns the key token in lower case.
func (h Hotkey) NormalizedKey() string {
	return strings.ToLower(h.Key)
}

// KnownKey reports whether the key is in the supported key set.
func (h Hotkey) KnownKey() bool {
	return slices.Contains(keyTokens, h.NormalizedKey())
}

// Equal reports whether both hotkeys use the same key and the same modifier
// set. Modifier order and duplicates do not matter.
func (h Hotkey) Equal(other Hotkey) bool {
	return h.NormalizedKey() == other.NormalizedKey() && h.modifierMask() == other.modifierMask()
}

// SortedModifiers returns the modifier set in canonical order.
func (h Hotkey) SortedModifiers() []Modifier {
	mask := h.modifierMask()
	var out []Modifier
	for i, m := range modifierOrder {
		if mask&(1<<i) != 0 {
			out = append(out, m)
		}
	}
	return out
}

// String renders the hotkey as "command+shift+o".
func (h Hotkey) String() string {
	parts := make([]string, 0, len(h.Modifiers)+1)
	for _, m := range h.SortedModifiers() {
		parts = append(parts, string(m))
	}
	parts = append(parts, h.NormalizedKey())
	return strings.Join(parts, "+")
}

func (h Hotkey) modifierMask() uint8 {
	var mask uint8
	for _, m := range h.Modifiers {
		if i := slices.Index(modifierOrder, m); i >= 0 {
			mask |= 1 << i
		}
	}
	return mask
}

func (h *Hotkey) clone() *Hotkey {
	if h == nil {
		return nil
	}
	return &Hotkey{Key: h.Key, Modifiers: slices.Clone(h.Modifiers)}
}

func (h *Hotkey) normalize() {
	if h != nil && h.Modifiers == nil {
		h.Modifiers = []Modifier{}
	}
}

// ParseHotkey parses "cmd+shift+o" style notation. The last segment is the
// key; the rest are modifiers.
func ParseHotkey(s string) (Hotkey, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	if len(parts) < 2 {
		return Hotkey{}, fmt.Errorf("invalid hotkey: %q (need modifier+key)", s)
	}

	key := strings.TrimSpace(parts[len(parts)-1])
	hk := Hotkey{Key: key}
	if !hk.KnownKey() {
		return Hotkey{}, fmt.Errorf("unknown key %q in hotkey %q", key, s)
	}

	for _, p := range parts[:len(parts)-1] {
		mod, ok := modifierAliases[strings.TrimSpace(p)]
		if !ok {
			return Hotkey{}, fmt.Errorf("unknown modifier %q in hotkey %q", p, s)
		}
		if !slices.Contains(hk.Modifiers, mod) {
			hk.Modifiers = append(hk.Modifiers, mod)
		}
	}
	hk.Modifiers = hk.SortedModifiers()
	return hk, nil
}
