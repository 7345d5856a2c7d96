package config

import (
	"fmt"
	"strconv"
)

// Issue is an advisory finding about a configuration. Issues never block
// loading or saving.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// Validate reports contract violations the schema cannot express: duplicate
// link URLs and category names, unusable hotkeys, and hotkey collisions.
// Colliding bindings still register; the last one registered wins.
func Validate(cfg *Configuration) []Issue {
	if cfg == nil {
		return nil
	}

	var issues []Issue
	type owner struct {
		path string
		what string
	}
	bindings := make(map[string]owner)
	claim := func(hk *Hotkey, path, what string) {
		if hk == nil {
			return
		}
		if !hk.KnownKey() {
			issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("unknown key %q, binding will be skipped", hk.Key)})
			return
		}
		if len(hk.SortedModifiers()) == 0 {
			issues = append(issues, Issue{Path: path, Message: "hotkey has no modifiers"})
		}
		combo := hk.String()
		if prev, taken := bindings[combo]; taken {
			issues = append(issues, Issue{Path: path, Message: fmt.Sprintf("%s collides with %s (%s)", combo, prev.what, prev.path)})
			return
		}
		bindings[combo] = owner{path: path, what: what}
	}

	claim(cfg.GlobalHotkey, "globalHotkey", "the global hotkey")

	categories := make(map[string]int)
	urls := make(map[string]string)
	for i, cat := range cfg.Categories {
		catPath := "categories." + strconv.Itoa(i)
		if prev, dup := categories[cat.Name]; dup {
			issues = append(issues, Issue{Path: catPath + ".name", Message: fmt.Sprintf("duplicate category name %q (also categories.%d)", cat.Name, prev)})
		} else {
			categories[cat.Name] = i
		}

		for j, link := range cat.Links {
			linkPath := catPath + ".links." + strconv.Itoa(j)
			if prev, dup := urls[link.URL]; dup {
				issues = append(issues, Issue{Path: linkPath + ".url", Message: fmt.Sprintf("duplicate link url %q (also %s)", link.URL, prev)})
			} else {
				urls[link.URL] = linkPath
			}
			claim(link.Shortcut, linkPath+".shortcut", fmt.Sprintf("link %q", link.Name))
		}
	}

	return issues
}
