package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// tempPrefix marks in-flight writes so the watcher can tell them apart from
// the config file itself.
const tempPrefix = ".hop-"

// writeAtomic writes data to a temp file next to filename, syncs it and
// renames it over filename.
func writeAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	tmpName := filepath.Join(dir, tempPrefix+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	var success bool
	defer func() {
		if !success {
			if err := os.Remove(tmpName); err != nil && !os.IsNotExist(err) {
				log.Warn("failed to remove temp file %s: %v", tmpName, err)
			}
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	success = true
	return nil
}
