// Package search filters links for the panel's live search.
//
// Matching is a case-insensitive substring test against a link's name, URL
// and keywords. Results keep configuration order; nothing is ranked.
package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/qiushiyan/hop/internal/config"
)

// Flatten returns every link in cfg in document order. A nil cfg yields an
// empty list.
func Flatten(cfg *config.Configuration) []config.Link {
	links := cfg.AllLinks()
	if links == nil {
		return []config.Link{}
	}
	return links
}

// Filter returns the links in cfg matching query. An empty query matches
// everything.
func Filter(cfg *config.Configuration, query string) []config.Link {
	return NewIndex(cfg).Search(query)
}

type entry struct {
	link   config.Link
	fields []string
}

// Index holds the case-folded search fields of one snapshot.
type Index struct {
	entries []entry
}

// NewIndex folds the searchable fields of every link in cfg.
func NewIndex(cfg *config.Configuration) *Index {
	fold := cases.Fold()
	links := Flatten(cfg)
	idx := &Index{entries: make([]entry, 0, len(links))}
	for _, link := range links {
		fields := make([]string, 0, len(link.Keywords)+2)
		fields = append(fields, fold.String(link.Name), fold.String(link.URL))
		for _, kw := range link.Keywords {
			fields = append(fields, fold.String(kw))
		}
		idx.entries = append(idx.entries, entry{link: link, fields: fields})
	}
	return idx
}

// Len returns the number of indexed links.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Search returns the indexed links matching query, in order.
func (idx *Index) Search(query string) []config.Link {
	out := make([]config.Link, 0, len(idx.entries))
	if query == "" {
		for _, e := range idx.entries {
			out = append(out, e.link)
		}
		return out
	}

	q := cases.Fold().String(query)
	for _, e := range idx.entries {
		if matches(e.fields, q) {
			out = append(out, e.link)
		}
	}
	return out
}

func matches(fields []string, q string) bool {
	for _, f := range fields {
		if strings.Contains(f, q) {
			return true
		}
	}
	return false
}
