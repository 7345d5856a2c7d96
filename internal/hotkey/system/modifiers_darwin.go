//go:build darwin

package system

import (
	"golang.design/x/hotkey"

	"github.com/qiushiyan/hop/internal/config"
)

// modifierMap maps config modifiers to macOS modifier flags.
var modifierMap = map[config.Modifier]hotkey.Modifier{
	config.ModCommand: hotkey.ModCmd,
	config.ModControl: hotkey.ModCtrl,
	config.ModOption:  hotkey.ModOption,
	config.ModShift:   hotkey.ModShift,
}
