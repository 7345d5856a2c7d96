package cli

import (
	"strings"
	"testing"
)

func setAddFlags(name, category, shortcut string, keywords ...string) {
	linkName = name
	linkCategory = category
	linkShortcut = shortcut
	linkKeywords = keywords
}

func TestRunAdd(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		setupFlags  func()
		wantErr     bool
		errContains string
		validate    func(*testing.T, *MockConfigStore)
	}{
		{
			name:       "add to existing category",
			url:        "https://go.dev/blog",
			setupFlags: func() { setAddFlags("Go Blog", "Docs", "", "news", " ") },
			validate: func(t *testing.T, s *MockConfigStore) {
				links := s.Cfg.Categories[1].Links
				if len(links) != 2 {
					t.Fatalf("expected 2 links in Docs, got %d", len(links))
				}
				added := links[1]
				if added.Name != "Go Blog" || added.URL != "https://go.dev/blog" {
					t.Errorf("unexpected link: %+v", added)
				}
				if len(added.Keywords) != 1 || added.Keywords[0] != "news" {
					t.Errorf("expected keywords [news], got %v", added.Keywords)
				}
			},
		},
		{
			name:       "add creates category",
			url:        "https://news.ycombinator.com",
			setupFlags: func() { setAddFlags("HN", "Reading", "cmd+shift+h") },
			validate: func(t *testing.T, s *MockConfigStore) {
				if len(s.Cfg.Categories) != 3 {
					t.Fatalf("expected 3 categories, got %d", len(s.Cfg.Categories))
				}
				cat := s.Cfg.Categories[2]
				if cat.Name != "Reading" || len(cat.Links) != 1 {
					t.Fatalf("unexpected category: %+v", cat)
				}
				hk := cat.Links[0].Shortcut
				if hk == nil || hk.String() != "command+shift+h" {
					t.Errorf("unexpected shortcut: %v", hk)
				}
			},
		},
		{
			name:        "duplicate url",
			url:         "https://pkg.go.dev",
			setupFlags:  func() { setAddFlags("Again", "Docs", "") },
			wantErr:     true,
			errContains: "already exists",
		},
		{
			name:        "invalid url",
			url:         "pkg.go.dev",
			setupFlags:  func() { setAddFlags("Go", "Docs", "") },
			wantErr:     true,
			errContains: "scheme",
		},
		{
			name:        "blank name",
			url:         "https://example.com",
			setupFlags:  func() { setAddFlags("  ", "Docs", "") },
			wantErr:     true,
			errContains: "name cannot be empty",
		},
		{
			name:        "bad shortcut",
			url:         "https://example.com",
			setupFlags:  func() { setAddFlags("Example", "Docs", "hyper+x") },
			wantErr:     true,
			errContains: "unknown modifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := deps
			defer func() {
				deps = old
				setAddFlags("", "", "")
			}()

			store := &MockConfigStore{Cfg: sampleConfig()}
			deps = NewMockDeps().WithStore(store).Build()
			tt.setupFlags()

			var err error
			captureOutput(func() {
				err = runAdd(addCmd, []string{tt.url})
			})

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				if store.SaveCalls != 0 {
					t.Errorf("expected no Save call, got %d", store.SaveCalls)
				}
				return
			}
			if err != nil {
				t.Fatalf("runAdd() error = %v", err)
			}
			if store.SaveCalls != 1 {
				t.Errorf("expected 1 Save call, got %d", store.SaveCalls)
			}
			if tt.validate != nil {
				tt.validate(t, store)
			}
		})
	}
}

func TestRunAddPersists(t *testing.T) {
	h := NewTestHelper(t)
	defer setAddFlags("", "", "")
	setAddFlags("Go Packages", "Docs", "", "golang")

	var err error
	captureOutput(func() {
		err = runAdd(addCmd, []string{"https://pkg.go.dev"})
	})
	if err != nil {
		t.Fatalf("runAdd() error = %v", err)
	}

	cfg, err := h.Config()
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	link, cat, ok := cfg.FindLink("https://pkg.go.dev")
	if !ok {
		t.Fatal("link not persisted")
	}
	if cfg.Categories[cat].Name != "Docs" || link.Name != "Go Packages" {
		t.Errorf("unexpected link %+v in %q", link, cfg.Categories[cat].Name)
	}
	if got := len(cfg.AllLinks()); got != 5 {
		t.Errorf("expected 5 links, got %d", got)
	}
}

func TestRunAddKeepsSnapshot(t *testing.T) {
	old := deps
	defer func() {
		deps = old
		setAddFlags("", "", "")
	}()

	original := sampleConfig()
	store := &MockConfigStore{Cfg: original}
	deps = NewMockDeps().WithStore(store).Build()
	setAddFlags("X", "Docs", "")

	captureOutput(func() {
		_ = runAdd(addCmd, []string{"https://x.example.com"})
	})

	if store.Cfg == original {
		t.Fatal("expected a new configuration to be saved")
	}
	if _, _, ok := original.FindLink("https://x.example.com"); ok {
		t.Error("loaded configuration must not be modified")
	}
}
