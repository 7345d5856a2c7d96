package cli

import (
	"github.com/spf13/cobra"

	"github.com/qiushiyan/hop/internal/config"
	"github.com/qiushiyan/hop/internal/input"
	"github.com/qiushiyan/hop/internal/output"
)

var forceReset bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the config with the default links",
	Long: `Overwrite the config file with the starter config that 'hop init' writes.

Examples:
  hop reset
  hop reset --force`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&forceReset, "force", "f", false, "Reset without confirmation")

	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	if !forceReset {
		output.Print("This replaces every link in %s. Continue? [y/N]: ", config.CollapseHome(s.Path()))
		if !input.Confirm(deps.StdinReader) {
			output.Info("Reset cancelled")
			return nil
		}
	}

	cfg, err := config.Default(s.Path())
	if err != nil {
		return err
	}
	if err := s.Save(cfg); err != nil {
		return err
	}

	result := CommandResult{Success: true, Action: "reset", Path: s.Path()}
	return outputResult(result, "Reset %s", config.CollapseHome(s.Path()))
}
