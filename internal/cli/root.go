package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/qiushiyan/hop/internal/logger"
)

var (
	configPath string
	jsonOutput bool
	verbose    bool
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hop",
	Short: "Jump to your links from anywhere",
	Long: `hop keeps a hand-edited list of links in ~/.config/hop/config.json and
binds global hotkeys to them.

Run 'hop run' to start the hotkey host, which reloads the config whenever the
file changes. The other commands read and edit the same file.

The config path can be changed with --config or $HOP_CONFIG.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default ~/.config/hop/config.json)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
}
