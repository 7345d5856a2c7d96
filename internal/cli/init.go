package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/qiushiyan/hop/internal/config"
	"github.com/qiushiyan/hop/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the default config file",
	Long: `Create the config file with a starter set of links if it does not exist.

An existing file is never touched; use 'hop reset' to start over.

Examples:
  hop init
  hop init --config ./hop.json`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runPath,
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(pathCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	_, statErr := os.Stat(s.Path())
	existed := statErr == nil

	if err := s.EnsureExists(); err != nil {
		return err
	}

	result := CommandResult{Success: true, Action: "created", Path: s.Path()}
	if existed {
		result.Action = "exists"
		result.Message = "config file already exists"
	}
	if jsonOutput {
		return output.JSON(result)
	}

	if existed {
		output.Info("Config already exists at %s", config.CollapseHome(s.Path()))
		return nil
	}
	output.Success("Created %s", config.CollapseHome(s.Path()))
	output.Info("Run 'hop edit' to add your links, then 'hop run'")
	return nil
}

func runPath(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	if jsonOutput {
		return output.JSON(CommandResult{Success: true, Path: path})
	}
	output.Print("%s", path)
	return nil
}
