package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qiushiyan/hop/internal/config"
)

var (
	linkName     string
	linkCategory string
	linkKeywords []string
	linkShortcut string
)

var addCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a link",
	Long: `Add a link to a category, creating the category if needed.

The URL identifies the link and must not already be configured.

Examples:
  hop add https://pkg.go.dev --name "Go Packages" --category Docs
  hop add https://github.com/pulls --name Pulls --category Work --keyword pr --keyword review
  hop add https://calendar.example.com --name Calendar --category Work --shortcut cmd+shift+c`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&linkName, "name", "n", "", "Display name (required)")
	addCmd.Flags().StringVarP(&linkCategory, "category", "C", "", "Category name (required)")
	addCmd.Flags().StringArrayVarP(&linkKeywords, "keyword", "k", nil, "Search keyword (repeatable)")
	addCmd.Flags().StringVarP(&linkShortcut, "shortcut", "s", "", "Hotkey that opens the link, e.g. cmd+1")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("category")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	url := args[0]

	if err := validateURL(url); err != nil {
		return err
	}
	name := strings.TrimSpace(linkName)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	category := strings.TrimSpace(linkCategory)
	if category == "" {
		return fmt.Errorf("category cannot be empty")
	}

	link := config.Link{Name: name, URL: url}
	for _, kw := range linkKeywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			link.Keywords = append(link.Keywords, kw)
		}
	}
	if linkShortcut != "" {
		hk, err := config.ParseHotkey(linkShortcut)
		if err != nil {
			return err
		}
		link.Shortcut = &hk
	}

	s, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	next := cfg.Clone()
	if err := next.AddLink(category, link); err != nil {
		return err
	}
	if err := saveConfig(s, next); err != nil {
		return err
	}

	return outputResult(newSuccessResult(url, "added"), "Added %s to %s", name, category)
}
