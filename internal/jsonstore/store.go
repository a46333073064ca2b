// Package jsonstore persists the application's collections as flat JSON
// files. Each collection lives in its own file guarded by an in-process
// mutex plus an advisory file lock, so concurrent handlers and sibling
// processes serialize their load-mutate-save cycles.
package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

const (
	lockTimeout    = 3 * time.Second
	lockRetryDelay = 100 * time.Millisecond
)

// file guards one JSON data file.
type file struct {
	path     string
	fileLock *flock.Flock
	mu       sync.Mutex
}

func newFile(path string) *file {
	return &file{
		path:     path,
		fileLock: flock.New(path + ".lock"),
	}
}

// withLock runs fn while holding both the process mutex and the advisory
// file lock.
func (f *file) withLock(ctx context.Context, fn func() error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	locked, err := f.fileLock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquiring lock on %s: %w", f.path, err)
	}
	if !locked {
		return fmt.Errorf("could not acquire lock on %s", f.path)
	}
	defer func() { _ = f.fileLock.Unlock() }()

	return fn()
}

// load reads and decodes the data file. A missing or empty file yields the
// default value, as does an unparseable one: the store self-heals on the
// next save rather than wedging every operation on a corrupt file.
func load[T any](f *file, def T) (T, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return def, nil
		}
		return def, fmt.Errorf("reading %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return def, nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return def, nil
	}
	return value, nil
}

// save encodes the value and atomically replaces the data file via a
// temp-write-then-rename.
func save[T any](f *file, value T) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", f.path, err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", f.path, err)
	}
	return nil
}
