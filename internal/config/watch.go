package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/themecast/internal/logger"
	themeerrors "github.com/alexisbeaulieu97/themecast/pkg/errors"
)

// Watch reloads path whenever it changes on disk and passes every valid
// result to onChange. Invalid files are logged and skipped. Watch blocks
// until ctx is done.
//
// The parent directory is watched rather than the file so that editors
// which replace the file on save keep triggering reloads.
func Watch(ctx context.Context, path string, log *logger.Logger, onChange func(*Config)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return themeerrors.NewWatchError(path, "resolve", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return themeerrors.NewWatchError(abs, "create", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return themeerrors.NewWatchError(abs, "add", err)
	}

	log = log.Component("config-watch").WithFields(map[string]any{"path": abs})
	log.Debug("watching configuration")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			cfg, err := Load(abs)
			if err != nil {
				log.Error(err, "configuration reload failed")
				continue
			}
			log.Info("configuration reloaded")
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error(err, "watcher error")
		}
	}
}
