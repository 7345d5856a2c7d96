package cli

import (
	"github.com/spf13/cobra"

	"github.com/qiushiyan/hop/internal/config"
	"github.com/qiushiyan/hop/internal/output"
)

var hotkeyCmd = &cobra.Command{
	Use:   "hotkey",
	Short: "Show or change the global hotkey",
	Long: `Show or change the hotkey that toggles the panel.

Hotkeys are written as modifiers and a key joined by '+'. Modifiers are
cmd, ctrl, opt and shift (command, control, option and alt also work).

Examples:
  hop hotkey
  hop hotkey set cmd+shift+o
  hop hotkey set ctrl+space
  hop hotkey clear`,
	Args: cobra.NoArgs,
	RunE: runHotkeyShow,
}

var hotkeySetCmd = &cobra.Command{
	Use:   "set <hotkey>",
	Short: "Set the global hotkey",
	Args:  cobra.ExactArgs(1),
	RunE:  runHotkeySet,
}

var hotkeyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the global hotkey",
	Args:  cobra.NoArgs,
	RunE:  runHotkeyClear,
}

func init() {
	hotkeyCmd.AddCommand(hotkeySetCmd)
	hotkeyCmd.AddCommand(hotkeyClearCmd)

	rootCmd.AddCommand(hotkeyCmd)
}

// hotkeyResult is the JSON form of the global hotkey.
type hotkeyResult struct {
	Success bool           `json:"success"`
	Action  string         `json:"action,omitempty"`
	Hotkey  *config.Hotkey `json:"hotkey"`
	Display string         `json:"display,omitempty"`
}

func newHotkeyResult(action string, hk *config.Hotkey) hotkeyResult {
	r := hotkeyResult{Success: true, Action: action, Hotkey: hk}
	if hk != nil {
		r.Display = hk.String()
	}
	return r
}

func runHotkeyShow(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if jsonOutput {
		return output.JSON(newHotkeyResult("", cfg.GlobalHotkey))
	}
	if cfg.GlobalHotkey == nil {
		output.Info("No global hotkey set")
		return nil
	}
	output.Print("%s", cfg.GlobalHotkey)
	return nil
}

func runHotkeySet(cmd *cobra.Command, args []string) error {
	hk, err := config.ParseHotkey(args[0])
	if err != nil {
		return err
	}

	s, _, err := loadConfig()
	if err != nil {
		return err
	}
	if err := s.UpdateGlobalHotkey(&hk); err != nil {
		return err
	}

	if jsonOutput {
		return output.JSON(newHotkeyResult("set", &hk))
	}
	output.Success("Global hotkey set to %s", hk)
	return nil
}

func runHotkeyClear(cmd *cobra.Command, args []string) error {
	s, _, err := loadConfig()
	if err != nil {
		return err
	}
	if err := s.UpdateGlobalHotkey(nil); err != nil {
		return err
	}

	if jsonOutput {
		return output.JSON(newHotkeyResult("cleared", nil))
	}
	output.Success("Global hotkey removed")
	return nil
}
