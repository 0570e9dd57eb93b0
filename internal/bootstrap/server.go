package bootstrap

import (
	"fmt"
	"net/http"

	"github.com/jonesrussell/cortexgate/internal/api"
	"github.com/jonesrussell/cortexgate/internal/archive"
	"github.com/jonesrussell/cortexgate/internal/config"
	"github.com/jonesrussell/cortexgate/internal/logger"
	"github.com/jonesrussell/cortexgate/internal/repository"
)

// SetupHTTPServer wires the repository, archive service, and router into
// an HTTP server.
func SetupHTTPServer(cfg *config.Config, log logger.Logger) *http.Server {
	repo := repository.NewItemRepository(cfg.Inbox.Dir, log)
	service := archive.NewService(repo, cfg.Archive.Dir, log)
	router := api.NewRouter(cfg, repo, service, log)

	return &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}
}
