// Package watcher logs inbox directory activity so operators can see items
// arrive and leave without polling the API. It is purely observational:
// listings always re-read the directory, nothing is cached here.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/jonesrussell/cortexgate/internal/logger"
)

// Watcher reports create and remove events for item files in the inbox.
type Watcher struct {
	fs     *fsnotify.Watcher
	dir    string
	logger logger.Logger
}

func New(dir string, log logger.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(dir); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("watch inbox directory: %w", err)
	}
	return &Watcher{
		fs:     fs,
		dir:    dir,
		logger: log,
	}, nil
}

// Run consumes events until the context is cancelled or the underlying
// watcher closes.
func (w *Watcher) Run(ctx context.Context) {
	defer func() { _ = w.fs.Close() }()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error("Inbox watcher error",
				logger.Error(err),
			)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !strings.HasSuffix(event.Name, ".json") {
		return
	}

	name := filepath.Base(event.Name)
	switch {
	case event.Has(fsnotify.Create):
		w.logger.Info("Item arrived in inbox",
			logger.String("file", name),
		)
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		w.logger.Info("Item left inbox",
			logger.String("file", name),
		)
	}
}
