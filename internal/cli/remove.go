package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qiushiyan/hop/internal/input"
	"github.com/qiushiyan/hop/internal/output"
)

var forceRemove bool

var removeCmd = &cobra.Command{
	Use:     "remove <url>",
	Aliases: []string{"rm"},
	Short:   "Remove a link",
	Long: `Remove the link with the given URL.

Examples:
  hop remove https://pkg.go.dev
  hop rm https://pkg.go.dev --force`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVarP(&forceRemove, "force", "f", false, "Force removal without confirmation")

	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	url := args[0]

	s, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	link, _, ok := cfg.FindLink(url)
	if !ok {
		return fmt.Errorf("link %s not found", url)
	}

	// Confirm removal if not forced
	if !forceRemove {
		output.Print("Are you sure you want to remove '%s' (%s)? [y/N]: ", link.Name, url)
		if !input.Confirm(deps.StdinReader) {
			output.Info("Removal cancelled")
			return nil
		}
	}

	next := cfg.Clone()
	if err := next.RemoveLink(url); err != nil {
		return err
	}
	if err := saveConfig(s, next); err != nil {
		return err
	}

	return outputResult(newSuccessResult(url, "removed"), "Removed %s", link.Name)
}
