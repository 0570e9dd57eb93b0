package api_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jonesrussell/cortexgate/internal/api"
	"github.com/jonesrussell/cortexgate/internal/archive"
	"github.com/jonesrussell/cortexgate/internal/config"
	"github.com/jonesrussell/cortexgate/internal/repository"
	"github.com/jonesrussell/cortexgate/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	staticDir := t.TempDir()
	cfg := &config.Config{
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 8080, CORSOrigins: []string{"*"}},
		Inbox:   config.InboxConfig{Dir: t.TempDir()},
		Archive: config.ArchiveConfig{Dir: t.TempDir()},
		Static:  config.StaticConfig{Dir: staticDir},
	}

	log := testhelpers.NewTestLogger()
	repo := repository.NewItemRepository(cfg.Inbox.Dir, log)
	service := archive.NewService(repo, cfg.Archive.Dir, log)
	return api.NewRouter(cfg, repo, service, log), staticDir
}

func perform(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(router, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(router, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/items", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSHeadersOnAPIResponses(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(router, http.MethodGet, "/health")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestStatic_ServesIndexAtRoot(t *testing.T) {
	router, staticDir := newTestRouter(t)
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>dash</html>"), 0o644))

	w := perform(router, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html", w.Header().Get("Content-Type"))
	assert.Equal(t, "<html>dash</html>", w.Body.String())
}

func TestStatic_ContentTypes(t *testing.T) {
	router, staticDir := newTestRouter(t)

	tests := []struct {
		file        string
		contentType string
	}{
		{"app.js", "application/javascript"},
		{"style.css", "text/css"},
		{"data.json", "application/json"},
		{"logo.svg", "image/svg+xml"},
		{"blob.bin", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			require.NoError(t, os.WriteFile(filepath.Join(staticDir, tt.file), []byte("x"), 0o644))

			w := perform(router, http.MethodGet, "/"+tt.file)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
		})
	}
}

func TestStatic_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(router, http.MethodGet, "/missing.html")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatic_PathTraversalForbidden(t *testing.T) {
	router, staticDir := newTestRouter(t)

	// A secret outside the document root must not be reachable.
	outside := filepath.Join(filepath.Dir(staticDir), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/placeholder", nil)
	req.URL.Path = "/../secret.txt"
	router.ServeHTTP(w, req)

	assert.NotEqual(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
}
