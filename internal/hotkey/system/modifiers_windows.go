//go:build windows

package system

import (
	"golang.design/x/hotkey"

	"github.com/qiushiyan/hop/internal/config"
)

// modifierMap maps config modifiers to Windows modifiers.
var modifierMap = map[config.Modifier]hotkey.Modifier{
	config.ModCommand: hotkey.ModWin,
	config.ModControl: hotkey.ModCtrl,
	config.ModOption:  hotkey.ModAlt,
	config.ModShift:   hotkey.ModShift,
}
