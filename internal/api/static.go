package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jonesrussell/cortexgate/internal/logger"
)

// mimeTypes is the fixed content-type table for dashboard assets.
var mimeTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

const defaultContentType = "application/octet-stream"

// staticHandler serves dashboard files from root. "/" maps to index.html,
// path traversal outside the root is rejected with 403, and unknown
// extensions fall back to application/octet-stream.
func staticHandler(root string, log logger.Logger) gin.HandlerFunc {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = root
	}

	return func(c *gin.Context) {
		urlPath := c.Request.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(absRoot, filepath.FromSlash(urlPath))
		if !strings.HasPrefix(filePath, absRoot+string(os.PathSeparator)) && filePath != absRoot {
			c.String(http.StatusForbidden, "Forbidden")
			return
		}

		content, readErr := os.ReadFile(filePath)
		if readErr != nil {
			if os.IsNotExist(readErr) {
				c.String(http.StatusNotFound, "Not Found")
				return
			}
			log.Error("Failed to read static file",
				logger.String("path", filePath),
				logger.Error(readErr),
			)
			c.String(http.StatusInternalServerError, "Internal server error")
			return
		}

		contentType, ok := mimeTypes[filepath.Ext(filePath)]
		if !ok {
			contentType = defaultContentType
		}
		c.Data(http.StatusOK, contentType, content)
	}
}
