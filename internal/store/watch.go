package store

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"versemate/internal/domain"
)

// Watch monitors the seed database file and calls onChange when it is
// created or replaced on disk (a seed shipped after first launch, or an
// updated seed synced in). The app uses this to upgrade navigators that
// started in single-slot loading mode. Blocks until ctx is cancelled.
func (s *Store) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create seed watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: the seed file is typically replaced atomically
	// via rename, which would drop a watch on the file itself.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			log.Printf("Seed database changed (%s), reloading", ev.Op)
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Seed watcher error: %v", err)
			if s.bus != nil {
				s.bus.Publish(domain.ErrorEvent{Message: "seed watcher error", Err: err})
			}
		}
	}
}
