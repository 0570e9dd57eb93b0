// Package repository provides file-backed access to the inbox directory.
// There is no index and no cache: every operation re-reads the directory,
// which is acceptable at personal-inbox scale (hundreds of files, not
// millions).
package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonesrussell/cortexgate/internal/logger"
	"github.com/jonesrussell/cortexgate/internal/metrics"
	"github.com/jonesrussell/cortexgate/internal/models"
	"github.com/jonesrussell/cortexgate/internal/sanitize"
)

// ErrNotFound is returned when no inbox file holds the requested item id.
var ErrNotFound = errors.New("item not found")

const itemExt = ".json"

// ItemRepository lists, locates, and deletes item files in the inbox
// directory.
type ItemRepository struct {
	dir    string
	logger logger.Logger
}

func NewItemRepository(dir string, log logger.Logger) *ItemRepository {
	return &ItemRepository{
		dir:    dir,
		logger: log,
	}
}

// Dir returns the inbox directory path.
func (r *ItemRepository) Dir() string {
	return r.dir
}

// List returns all parsable items in the inbox. The directory is created
// if absent. Files that fail to parse even after sanitization are logged
// and skipped; one corrupt file never hides the others. No ordering is
// guaranteed beyond directory enumeration order.
func (r *ItemRepository) List(ctx context.Context) ([]models.Item, error) {
	files, err := r.itemFiles()
	if err != nil {
		return nil, err
	}

	items := make([]models.Item, 0, len(files))
	for _, path := range files {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		item, parseErr := sanitize.DecodeFile(path, r.logger)
		if parseErr != nil {
			metrics.ParseFailures.Inc()
			r.logger.Error("Skipping unparsable item file",
				logger.String("file", filepath.Base(path)),
				logger.Error(parseErr),
			)
			continue
		}
		items = append(items, *item)
	}

	metrics.ItemsListed.Add(float64(len(items)))
	return items, nil
}

// FindByID scans the inbox for the first file whose item id matches.
// Parse failures are skipped. When more than one file carries the same id
// the first match in enumeration order wins and a warning is logged.
func (r *ItemRepository) FindByID(ctx context.Context, id string) (string, *models.Item, error) {
	files, err := r.itemFiles()
	if err != nil {
		return "", nil, err
	}

	var matchPath string
	var match *models.Item
	duplicates := 0

	for _, path := range files {
		if ctx.Err() != nil {
			return "", nil, ctx.Err()
		}
		item, parseErr := sanitize.DecodeFile(path, r.logger)
		if parseErr != nil {
			continue
		}
		if item.ID != id {
			continue
		}
		if match == nil {
			matchPath = path
			match = item
		} else {
			duplicates++
		}
	}

	if match == nil {
		return "", nil, ErrNotFound
	}
	if duplicates > 0 {
		r.logger.Warn("Duplicate item id in inbox, using first match",
			logger.String("item_id", id),
			logger.String("file", filepath.Base(matchPath)),
			logger.Int("extra_matches", duplicates),
		)
	}
	return matchPath, match, nil
}

// Delete removes an item file. Fails if the file is missing or unwritable.
func (r *ItemRepository) Delete(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete item file: %w", err)
	}
	return nil
}

// itemFiles ensures the inbox directory exists and returns the paths of
// all *.json files in it, in enumeration order.
func (r *ItemRepository) itemFiles() ([]string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create inbox directory: %w", err)
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read inbox directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), itemExt) {
			continue
		}
		files = append(files, filepath.Join(r.dir, entry.Name()))
	}
	return files, nil
}
