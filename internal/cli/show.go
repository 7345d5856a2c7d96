package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qiushiyan/hop/internal/config"
	"github.com/qiushiyan/hop/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show <url>",
	Short: "Show details of a link",
	Long: `Show detailed information about a link, looked up by URL.

Examples:
  hop show https://developer.apple.com
  hop show https://developer.apple.com --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	url := args[0]

	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	link, _, ok := cfg.FindLink(url)
	if !ok {
		return fmt.Errorf("link %s not found", url)
	}
	item := linkItems(cfg, []config.Link{link})[0]

	if jsonOutput {
		return output.JSON(item)
	}

	output.Print("")
	output.Print("Name:       %s", item.Name)
	output.Print("URL:        %s", item.URL)
	output.Print("Category:   %s", item.Category)
	if len(item.Keywords) > 0 {
		output.Print("Keywords:   %s", strings.Join(item.Keywords, ", "))
	}
	if item.Shortcut != "" {
		output.Print("Shortcut:   %s", item.Shortcut)
	} else {
		output.Print("Shortcut:   none")
	}
	output.Print("")

	return nil
}
