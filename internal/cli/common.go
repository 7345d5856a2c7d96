package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/qiushiyan/hop/internal/config"
	"github.com/qiushiyan/hop/internal/opener"
	"github.com/qiushiyan/hop/internal/output"
	"github.com/qiushiyan/hop/internal/platform"
)

// resolveConfigPath applies --config, then $HOP_CONFIG, then the default.
func resolveConfigPath() (string, error) {
	return config.ResolvePath(configPath)
}

// openStore returns the store for the resolved config path.
func openStore() (ConfigStore, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	return deps.StoreFactory.Create(path), nil
}

// loadConfig bootstraps the config file if needed and loads it.
func loadConfig() (ConfigStore, *config.Configuration, error) {
	s, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	// A bootstrap failure resurfaces as a load error below.
	_ = s.EnsureExists()

	cfg, err := s.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", s.Path(), err)
	}
	return s, cfg, nil
}

// saveConfig writes cfg through the store. Validation issues are shown as
// warnings and do not block the save.
func saveConfig(s ConfigStore, cfg *config.Configuration) error {
	if !jsonOutput {
		for _, issue := range config.Validate(cfg) {
			output.Warn("%s", issue)
		}
	}
	return s.Save(cfg)
}

// newOpener returns the URL opener for this platform.
func newOpener() (*opener.Opener, error) {
	cmd, err := platform.DetectOpener()
	if err != nil {
		return nil, err
	}
	return opener.NewWithCommand(deps.Executor, cmd), nil
}

// outputResult handles JSON or human-readable output
func outputResult(data any, successMsg string, args ...any) error {
	if jsonOutput {
		return output.JSON(data)
	}
	output.Success(successMsg, args...)
	return nil
}

// validateURL checks that a link URL has a scheme.
func validateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("url cannot be empty")
	}
	if strings.ContainsAny(raw, " \t\n") {
		return fmt.Errorf("url cannot contain spaces")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme == "" {
		return fmt.Errorf("url must include a scheme, e.g. https://%s", raw)
	}
	return nil
}

// linkItem is the list/show representation of a link.
type linkItem struct {
	Category string   `json:"category" yaml:"category"`
	Name     string   `json:"name" yaml:"name"`
	URL      string   `json:"url" yaml:"url"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Shortcut string   `json:"shortcut,omitempty" yaml:"shortcut,omitempty"`
}

// linkItems pairs links with their category names. Links are matched by
// URL against cfg.
func linkItems(cfg *config.Configuration, links []config.Link) []linkItem {
	category := make(map[string]string)
	for _, cat := range cfg.Categories {
		for _, l := range cat.Links {
			if _, ok := category[l.ID()]; !ok {
				category[l.ID()] = cat.Name
			}
		}
	}

	items := make([]linkItem, 0, len(links))
	for _, l := range links {
		item := linkItem{
			Category: category[l.ID()],
			Name:     l.Name,
			URL:      l.URL,
			Keywords: l.Keywords,
		}
		if l.Shortcut != nil {
			item.Shortcut = l.Shortcut.String()
		}
		items = append(items, item)
	}
	return items
}

// CommandResult represents a common result structure for CLI commands
type CommandResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Action  string `json:"action,omitempty"`
	Message string `json:"message,omitempty"`
	Path    string `json:"path,omitempty"`
}

// newSuccessResult creates a success result
func newSuccessResult(url, action string) CommandResult {
	return CommandResult{
		Success: true,
		URL:     url,
		Action:  action,
	}
}
