package config

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads the configuration whenever the config file changes and
// invokes onReload with the fresh config. It blocks until ctx is canceled.
// Editors tend to replace the file rather than write in place, so the parent
// directory is watched and events are filtered by name.
func Watch(ctx context.Context, logger *log.Logger, onReload func(*UserConfig)) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := LoadUserConfig()
			if err != nil {
				logger.Warn("config reload failed, keeping last good config", "err", err)
				continue
			}
			onReload(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", "err", err)
		}
	}
}
