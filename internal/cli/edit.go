package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qiushiyan/hop/internal/config"
	"github.com/qiushiyan/hop/internal/output"
	"github.com/qiushiyan/hop/internal/platform"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the config file",
	Long: `Open the config file in an editor, creating it first if needed.

Uses $VISUAL, then $EDITOR, and defaults to vi (notepad on Windows).
A running 'hop run' picks up the saved file automatically.

Examples:
  hop edit
  EDITOR="code --wait" hop edit`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	if err := s.EnsureExists(); err != nil {
		return err
	}

	editor := strings.Fields(platform.DefaultEditor())
	if len(editor) == 0 {
		return fmt.Errorf("no editor configured")
	}

	editorPath, err := deps.Executor.LookPath(editor[0])
	if err != nil {
		return fmt.Errorf("editor not found: %s", editor[0])
	}

	output.Info("Opening %s with %s...", config.CollapseHome(s.Path()), editor[0])

	editArgs := append(editor[1:len(editor):len(editor)], s.Path())
	if err := deps.Executor.RunInteractive(editorPath, editArgs...); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	// Report problems now rather than on the next panel open.
	cfg, err := s.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", s.Path(), err)
	}
	for _, issue := range config.Validate(cfg) {
		output.Warn("%s", issue)
	}
	output.Success("Config saved")
	return nil
}
