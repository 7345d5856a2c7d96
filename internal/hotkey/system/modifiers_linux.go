//go:build linux

package system

import (
	"golang.design/x/hotkey"

	"github.com/qiushiyan/hop/internal/config"
)

// modifierMap maps config modifiers to X11 modifiers. Command is Super
// (Mod4) and option is Alt (Mod1).
var modifierMap = map[config.Modifier]hotkey.Modifier{
	config.ModCommand: hotkey.Mod4,
	config.ModControl: hotkey.ModCtrl,
	config.ModOption:  hotkey.Mod1,
	config.ModShift:   hotkey.ModShift,
}
