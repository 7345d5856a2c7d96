package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qiushiyan/hop/internal/config"
	"github.com/qiushiyan/hop/internal/output"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the config in canonical form",
	Long: `Print the loaded config with sorted keys and two-space indentation,
the same form hop writes when it saves.

Examples:
  hop export > backup.json
  hop export --format yaml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format (json, yaml)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat != "json" && exportFormat != "yaml" {
		return fmt.Errorf("unsupported format %q (use json or yaml)", exportFormat)
	}

	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if exportFormat == "yaml" {
		return output.YAML(cfg)
	}
	data, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	return output.Raw(data)
}
