package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qiushiyan/hop/internal/config"
	"github.com/qiushiyan/hop/internal/errors"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "hop", "config.json"), opts...)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestEnsureExistsWritesDefault(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.EnsureExists())

	cfg, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.GlobalHotkey)
	assert.Equal(t, "o", cfg.GlobalHotkey.Key)
	assert.True(t, cfg.GlobalHotkey.Equal(config.Hotkey{
		Key:       "o",
		Modifiers: []config.Modifier{config.ModCommand, config.ModShift},
	}))
	require.Len(t, cfg.Categories, 2)
	assert.Equal(t, "Getting Started", cfg.Categories[0].Name)
	assert.Equal(t, "Examples", cfg.Categories[1].Name)
	assert.Same(t, cfg, s.Config())
	assert.NoError(t, s.Err())
}

func TestEnsureExistsKeepsExistingFile(t *testing.T) {
	s := newTestStore(t)
	const doc = `{"version": 1, "categories": []}`
	writeFile(t, s.Path(), doc)

	require.NoError(t, s.EnsureExists())
	require.NoError(t, s.EnsureExists())

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, doc, string(data))
}

func TestEnsureExistsDirectoryFailure(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	writeFile(t, blocker, "not a directory")

	s := New(filepath.Join(blocker, "hop", "config.json"))
	err := s.EnsureExists()

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDirectoryCreate))
	assert.Equal(t, err, s.Err())
}

func TestLoadMalformedClearsConfig(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.Path(), `{"version": 1, "categories": []}`)
	_, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, s.Config())

	writeFile(t, s.Path(), `{"categories": "not-an-array"}`)
	cfg, err := s.Load()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Nil(t, s.Config())
	assert.True(t, errors.Is(err, errors.ErrParse))

	var ce *errors.ConfigError
	require.True(t, errors.As(s.Err(), &ce))
	assert.Equal(t, errors.KindTypeMismatch, ce.Kind)
	assert.Equal(t, "categories", ce.Path)
}

func TestLoadRetainOnError(t *testing.T) {
	s := newTestStore(t, WithRetainOnError(true))
	writeFile(t, s.Path(), `{"version": 1, "categories": [{"name": "A", "links": []}]}`)
	good, err := s.Load()
	require.NoError(t, err)

	writeFile(t, s.Path(), `{not json`)
	_, err = s.Load()

	require.Error(t, err)
	assert.Same(t, good, s.Config())
	assert.Equal(t, err, s.Err())
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load()

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrRead))
	assert.Nil(t, s.Config())
}

func TestReloadIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.EnsureExists())

	var states []State
	s.Subscribe(func(st State) { states = append(states, st) })

	s.Reload()
	s.Reload()

	require.Len(t, states, 2)
	assert.NoError(t, states[0].Err)
	assert.NoError(t, states[1].Err)
	assert.Equal(t, states[0].Config, states[1].Config)
}

func TestSaveIsAtomic(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.EnsureExists())
	cfg, err := s.Load()
	require.NoError(t, err)

	next := cfg.Clone()
	require.NoError(t, next.AddLink("Work", config.Link{Name: "Tracker", URL: "https://tracker.example.com"}))
	require.NoError(t, s.Save(next))

	// The snapshot only changes on reload.
	assert.Same(t, cfg, s.Config())

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.json", entries[0].Name())

	reloaded, err := s.Load()
	require.NoError(t, err)
	_, _, ok := reloaded.FindLink("https://tracker.example.com")
	assert.True(t, ok)
}

func TestSaveWriteFailureKeepsConfig(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.EnsureExists())
	cfg, err := s.Load()
	require.NoError(t, err)

	// Replace the config directory with a file so the write cannot land.
	dir := filepath.Dir(s.Path())
	require.NoError(t, os.RemoveAll(dir))
	writeFile(t, dir, "blocker")

	err = s.Save(cfg)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrWrite))
	assert.Same(t, cfg, s.Config())
	assert.Equal(t, err, s.Err())
}

func TestUpdateGlobalHotkey(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.EnsureExists())
	_, err := s.Load()
	require.NoError(t, err)

	hk := config.Hotkey{Key: "space", Modifiers: []config.Modifier{config.ModOption}}
	require.NoError(t, s.UpdateGlobalHotkey(&hk))

	cfg, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.GlobalHotkey)
	assert.True(t, cfg.GlobalHotkey.Equal(hk))

	require.NoError(t, s.UpdateGlobalHotkey(nil))
	cfg, err = s.Load()
	require.NoError(t, err)
	assert.Nil(t, cfg.GlobalHotkey)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "globalHotkey"))
}

func TestUpdateGlobalHotkeyWithoutConfig(t *testing.T) {
	s := newTestStore(t)

	hk := config.Hotkey{Key: "o", Modifiers: []config.Modifier{config.ModCommand}}
	require.NoError(t, s.UpdateGlobalHotkey(&hk))

	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestSubscribeOrder(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.Path(), `{"categories": []}`)

	var got []bool
	sub := s.Subscribe(func(st State) { got = append(got, st.Err == nil) })

	_, _ = s.Load()
	writeFile(t, s.Path(), `[]`)
	_, _ = s.Load()
	sub.Unsubscribe()
	_, _ = s.Load()

	assert.Equal(t, []bool{true, false}, got)
}
