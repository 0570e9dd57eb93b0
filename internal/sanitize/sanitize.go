// Package sanitize repairs typographic punctuation in AI-generated JSON and
// decodes it into items. Smart quotes are the most common reason an inbox
// file fails a strict parse; replacing them with ASCII equivalents recovers
// the file without manual intervention.
package sanitize

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonesrussell/cortexgate/internal/logger"
	"github.com/jonesrussell/cortexgate/internal/metrics"
	"github.com/jonesrussell/cortexgate/internal/models"
)

// replacer maps typographic punctuation to ASCII. Double-quote variants
// (curly, low-9, angled primes) become `"`, single-quote variants become
// `'`, and en/em dashes become `-`.
var replacer = strings.NewReplacer(
	"“", `"`, "”", `"`, "„", `"`, "‟", `"`,
	"″", `"`, "‶", `"`,
	"‘", "'", "’", "'", "‚", "'", "‛", "'",
	"′", "'", "‵", "'",
	"–", "-", "—", "-",
)

// Clean replaces typographic quotes and dashes with their ASCII
// equivalents. Already-ASCII input is returned unchanged, so Clean is
// idempotent.
func Clean(content string) string {
	return replacer.Replace(content)
}

// Decode parses JSON item content, retrying with Clean if the strict parse
// fails. Returns the parsed item and whether cleaning was needed.
func Decode(content string) (*models.Item, bool, error) {
	var item models.Item
	if err := json.Unmarshal([]byte(content), &item); err == nil {
		return &item, false, nil
	}

	cleaned := Clean(content)
	if err := json.Unmarshal([]byte(cleaned), &item); err != nil {
		return nil, false, err
	}
	return &item, true, nil
}

// DecodeFile reads and parses an item file. When the parse only succeeds
// after cleaning, the sanitized content is written back so the file is
// valid JSON on the next read. Write-back failures are logged and do not
// affect the returned item.
func DecodeFile(path string, log logger.Logger) (*models.Item, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	item, repaired, err := Decode(string(content))
	if err != nil {
		return nil, err
	}

	if repaired {
		metrics.AutoRepairs.Inc()
		if writeErr := os.WriteFile(path, []byte(Clean(string(content))), 0o644); writeErr != nil {
			log.Error("Could not write back sanitized JSON",
				logger.String("file", path),
				logger.Error(writeErr),
			)
		} else {
			log.Info("Auto-fixed JSON",
				logger.String("file", filepath.Base(path)),
			)
		}
	}

	return item, nil
}
