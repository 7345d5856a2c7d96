package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = 2 * time.Second
	tick    = 10 * time.Millisecond
)

func startWatcher(t *testing.T, opts ...Option) (string, *atomic.Int32) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	var calls atomic.Int32
	w := New(path, func() { calls.Add(1) }, opts...)
	require.NoError(t, w.Start())
	t.Cleanup(func() { _ = w.Close() })
	return path, &calls
}

func TestWriteTriggersChange(t *testing.T) {
	path, calls := startWatcher(t, WithDebounce(20*time.Millisecond))

	require.NoError(t, os.WriteFile(path, []byte(`{"categories": []}`), 0o644))

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, waitFor, tick)
}

func TestBurstIsDebounced(t *testing.T) {
	path, calls := startWatcher(t, WithDebounce(200*time.Millisecond))

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`{"version": 1}`), 0o644))
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, waitFor, tick)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDeleteAndRecreate(t *testing.T) {
	path, calls := startWatcher(t, WithDebounce(20*time.Millisecond))

	require.NoError(t, os.Remove(path))
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, waitFor, tick)

	before := calls.Load()
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 1}`), 0o644))
	require.Eventually(t, func() bool { return calls.Load() > before }, waitFor, tick)

	// The file watch follows the new file.
	before = calls.Load()
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 1, "categories": []}`), 0o644))
	require.Eventually(t, func() bool { return calls.Load() > before }, waitFor, tick)
}

func TestRenameOverConfig(t *testing.T) {
	path, calls := startWatcher(t, WithDebounce(20*time.Millisecond))

	tmp := filepath.Join(filepath.Dir(path), ".config.json.swp")
	require.NoError(t, os.WriteFile(tmp, []byte(`{"version": 1}`), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, waitFor, tick)
}

func TestOtherFilesIgnored(t *testing.T) {
	path, calls := startWatcher(t, WithDebounce(20*time.Millisecond))

	other := filepath.Join(filepath.Dir(path), "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("hello"), 0o644))

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestQualifies(t *testing.T) {
	w := New("/home/u/.config/hop/config.json", nil)

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write to config", fsnotify.Event{Name: "/home/u/.config/hop/config.json", Op: fsnotify.Write}, true},
		{"create config", fsnotify.Event{Name: "/home/u/.config/hop/config.json", Op: fsnotify.Create}, true},
		{"remove config", fsnotify.Event{Name: "/home/u/.config/hop/config.json", Op: fsnotify.Remove}, true},
		{"rename config", fsnotify.Event{Name: "/home/u/.config/hop/config.json", Op: fsnotify.Rename}, true},
		{"chmod only", fsnotify.Event{Name: "/home/u/.config/hop/config.json", Op: fsnotify.Chmod}, false},
		{"unclean path", fsnotify.Event{Name: "/home/u/.config/hop/./config.json", Op: fsnotify.Write}, true},
		{"same base name elsewhere", fsnotify.Event{Name: "hop/config.json", Op: fsnotify.Write}, true},
		{"temp file", fsnotify.Event{Name: "/home/u/.config/hop/.hop-1234.tmp", Op: fsnotify.Create}, false},
		{"sibling file", fsnotify.Event{Name: "/home/u/.config/hop/other.json", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.qualifies(tt.event))
		})
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w := New(filepath.Join(dir, "config.json"), func() {})
	require.NoError(t, w.Start())

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
	assert.Error(t, w.Start())
}

func TestCloseWithoutStart(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "config.json"), func() {})
	assert.NoError(t, w.Close())
}

func TestStartMissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing", "config.json"), func() {})
	assert.Error(t, w.Start())
}

func TestWithDebounceNegative(t *testing.T) {
	w := New("config.json", nil, WithDebounce(-time.Second))
	assert.Equal(t, time.Duration(0), w.debounce)
}
