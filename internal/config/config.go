package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultVersion is applied when a document omits "version".
const DefaultVersion = 1

// configDir is the default config directory, relative to the home directory
const configDir = ".config/hop"
const configFile = "config.json"

// PathEnv overrides the config path when no explicit path is given.
const PathEnv = "HOP_CONFIG"

// Configuration is the root aggregate of the config document.
type Configuration struct {
	Version      int        `json:"version" yaml:"version"`
	GlobalHotkey *Hotkey    `json:"globalHotkey,omitempty" yaml:"globalHotkey,omitempty"`
	Categories   []Category `json:"categories" yaml:"categories"`
}

// Category groups links under a display name.
type Category struct {
	Name  string `json:"name" yaml:"name"`
	Links []Link `json:"links" yaml:"links"`
}

// Link is a single jump target. URL is its identity and must be unique
// across the whole configuration.
type Link struct {
	Name     string   `json:"name" yaml:"name"`
	URL      string   `json:"url" yaml:"url"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Shortcut *Hotkey  `json:"shortcut,omitempty" yaml:"shortcut,omitempty"`
}

// ID returns the link identity.
func (l Link) ID() string {
	return l.URL
}

// New creates an empty configuration with schema defaults applied
func New() *Configuration {
	return &Configuration{
		Version:    DefaultVersion,
		Categories: []Category{},
	}
}

// AllLinks flattens categories into a single list in document order.
func (c *Configuration) AllLinks() []Link {
	if c == nil {
		return nil
	}
	var links []Link
	for _, cat := range c.Categories {
		links = append(links, cat.Links...)
	}
	return links
}

// FindLink returns the link with the given URL and the index of its category.
func (c *Configuration) FindLink(url string) (Link, int, bool) {
	if c == nil {
		return Link{}, -1, false
	}
	for i, cat := range c.Categories {
		for _, l := range cat.Links {
			if l.URL == url {
				return l, i, true
			}
		}
	}
	return Link{}, -1, false
}

// AddLink appends a link to the named category, creating the category at
// the end when it does not exist yet.
func (c *Configuration) AddLink(category string, link Link) error {
	if _, _, exists := c.FindLink(link.URL); exists {
		return fmt.Errorf("link %s already exists", link.URL)
	}
	for i := range c.Categories {
		if c.Categories[i].Name == category {
			c.Categories[i].Links = append(c.Categories[i].Links, link)
			return nil
		}
	}
	c.Categories = append(c.Categories, Category{Name: category, Links: []Link{link}})
	return nil
}

// RemoveLink deletes the link with the given URL. Categories left empty are kept.
func (c *Configuration) RemoveLink(url string) error {
	for i := range c.Categories {
		links := c.Categories[i].Links
		for j := range links {
			if links[j].URL == url {
				c.Categories[i].Links = append(links[:j:j], links[j+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("link %s not found", url)
}

// Clone returns a deep copy, so a snapshot can be modified and saved without
// touching the published value.
func (c *Configuration) Clone() *Configuration {
	if c == nil {
		return nil
	}
	out := &Configuration{
		Version:      c.Version,
		GlobalHotkey: c.GlobalHotkey.clone(),
		Categories:   make([]Category, len(c.Categories)),
	}
	for i, cat := range c.Categories {
		links := make([]Link, len(cat.Links))
		for j, l := range cat.Links {
			links[j] = Link{
				Name:     l.Name,
				URL:      l.URL,
				Keywords: cloneStrings(l.Keywords),
				Shortcut: l.Shortcut.clone(),
			}
		}
		out.Categories[i] = Category{Name: cat.Name, Links: links}
	}
	return out
}

// normalize replaces nil slices that the schema writes as arrays.
func (c *Configuration) normalize() {
	if c.Categories == nil {
		c.Categories = []Category{}
	}
	for i := range c.Categories {
		if c.Categories[i].Links == nil {
			c.Categories[i].Links = []Link{}
		}
		for j := range c.Categories[i].Links {
			c.Categories[i].Links[j].Shortcut.normalize()
		}
	}
	c.GlobalHotkey.normalize()
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append(make([]string, 0, len(in)), in...)
}

// ConfigDir returns the default config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

// DefaultPath returns the default config file path, ~/.config/hop/config.json
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// ResolvePath picks the config path: an explicit override first, then
// $HOP_CONFIG, then the default. A leading ~ is expanded.
func ResolvePath(override string) (string, error) {
	path := override
	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path == "" {
		return DefaultPath()
	}
	return ExpandHome(path)
}

// ExpandHome expands a leading "~" to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return filepath.Clean(path), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// CollapseHome is the inverse of ExpandHome, used for display and for the
// default document's self-link.
func CollapseHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	rel, err := filepath.Rel(home, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, "../") {
		return path
	}
	return filepath.ToSlash(filepath.Join("~", rel))
}
