package file

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/gsearch/internal/logger"
)

// Watch reloads the store whenever config.toml changes on disk and signals
// on the returned channel after each reload. Signals coalesce: a receiver
// that falls behind sees one pending signal, not one per write.
// The channel is closed when ctx is done.
func (s *ConfigStore) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Editors replace files by rename, so watch the directory.
	if err := watcher.Add(s.Dir()); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !s.isConfigEvent(ev) {
					continue
				}
				if err := s.Load(); err != nil {
					logger.Warn("reload %s: %v", s.filePath, err)
					continue
				}
				logger.Debug("config reloaded after %s", ev.Op)
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher: %v", err)
			}
		}
	}()

	return changes, nil
}

func (s *ConfigStore) isConfigEvent(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(s.filePath) {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}
