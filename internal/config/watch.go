package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watch reloads path whenever it is written or replaced and delivers every
// valid result on the returned channel. Invalid edits are logged and
// skipped. The channel closes once ctx is done.
func Watch(ctx context.Context, path string, log *slog.Logger) (<-chan Settings, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}
	// Watch the directory so editors that save by rename are still seen.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "watch %s", path)
	}

	target := filepath.Clean(path)
	out := make(chan Settings)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				s, err := Load(path)
				if err != nil {
					log.Warn("settings reload rejected", "path", path, "err", err)
					continue
				}
				log.Info("settings reloaded", "path", path)
				select {
				case out <- s:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("settings watcher", "err", err)
			}
		}
	}()
	return out, nil
}
