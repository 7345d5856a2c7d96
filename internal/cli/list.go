package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/qiushiyan/hop/internal/output"
	"github.com/qiushiyan/hop/internal/search"
)

var listYAML bool

var listCmd = &cobra.Command{
	Use:     "list [query...]",
	Aliases: []string{"ls", "search"},
	Short:   "List links, optionally filtered",
	Long: `List configured links in config order.

A query keeps links whose name, URL or keywords contain it, ignoring case.

Examples:
  hop list
  hop ls docs
  hop search apple developer
  hop list --json
  hop list --yaml`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output in YAML format")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	items := linkItems(cfg, search.Filter(cfg, query))

	switch {
	case jsonOutput:
		return output.JSON(items)
	case listYAML:
		return output.YAML(items)
	}

	if len(items) == 0 {
		if query != "" {
			output.Info("No links match %q", query)
		} else {
			output.Info("No links configured")
		}
		return nil
	}

	headers := []string{"CATEGORY", "NAME", "URL", "SHORTCUT"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Category, item.Name, item.URL, item.Shortcut})
	}
	output.Table(headers, rows)
	return nil
}
