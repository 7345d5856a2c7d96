package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qiushiyan/hop/internal/search"
)

var openCmd = &cobra.Command{
	Use:   "open <query...>",
	Short: "Open the first link matching a query",
	Long: `Open the first link, in config order, whose name, URL or keywords
contain the query.

Examples:
  hop open github
  hop open apple developer`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	matches := search.Filter(cfg, query)
	if len(matches) == 0 {
		return fmt.Errorf("no link matches %q", query)
	}
	link := matches[0]

	o, err := newOpener()
	if err != nil {
		return err
	}
	if err := o.Open(link.URL); err != nil {
		return err
	}

	return outputResult(newSuccessResult(link.URL, "opened"), "Opened %s", link.Name)
}
