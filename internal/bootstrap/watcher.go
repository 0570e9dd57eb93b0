package bootstrap

import (
	"context"
	"os"

	"github.com/jonesrussell/cortexgate/internal/config"
	"github.com/jonesrussell/cortexgate/internal/logger"
	"github.com/jonesrussell/cortexgate/internal/watcher"
)

// StartWatcher starts the inbox watcher in the background. Watcher setup
// failure is logged but never blocks startup; the watcher is an operator
// convenience, not part of the request path.
func StartWatcher(ctx context.Context, cfg *config.Config, log logger.Logger) {
	if err := os.MkdirAll(cfg.Inbox.Dir, 0o755); err != nil {
		log.Error("Could not create inbox directory for watcher",
			logger.String("dir", cfg.Inbox.Dir),
			logger.Error(err),
		)
		return
	}

	w, err := watcher.New(cfg.Inbox.Dir, log)
	if err != nil {
		log.Error("Could not start inbox watcher",
			logger.Error(err),
		)
		return
	}

	go w.Run(ctx)
}
