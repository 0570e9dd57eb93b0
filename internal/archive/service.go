// Package archive moves triaged items out of the inbox: saved items are
// rendered to Markdown and filed into a category bucket under the archive
// root, dismissed items are deleted.
package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonesrussell/cortexgate/internal/logger"
	"github.com/jonesrussell/cortexgate/internal/markdown"
	"github.com/jonesrussell/cortexgate/internal/metrics"
	"github.com/jonesrussell/cortexgate/internal/models"
)

// fallbackBucket receives items whose source is not in the bucket table.
const fallbackBucket = "inbox"

// buckets maps item sources to archive subdirectories. The mapping is
// total: unknown sources land in fallbackBucket, never an error.
var buckets = map[string]string{
	models.SourceNewsletter: "3-resources/newsletters",
	models.SourceYouTube:    "3-resources/videos",
	models.SourceWebsite:    "3-resources/articles",
	models.SourceResearch:   "3-resources/research",
}

// ItemStore is the inbox access the service needs. Satisfied by
// *repository.ItemRepository.
type ItemStore interface {
	FindByID(ctx context.Context, id string) (string, *models.Item, error)
	Delete(path string) error
}

// Service orchestrates the two triage actions against the repository and
// the archive root.
type Service struct {
	repo   ItemStore
	root   string
	logger logger.Logger
	now    func() time.Time
}

func NewService(repo ItemStore, root string, log logger.Logger) *Service {
	return &Service{
		repo:   repo,
		root:   root,
		logger: log,
		now:    time.Now,
	}
}

// Bucket returns the archive subdirectory for a source.
func Bucket(source string) string {
	if bucket, ok := buckets[source]; ok {
		return bucket
	}
	return fallbackBucket
}

// Archive renders the item to Markdown, writes it into its category bucket,
// then deletes the inbox file. The archive write must succeed before the
// delete is attempted; a delete failure after a successful write leaves the
// item in both trees and is logged loudly. Returns the archived file path.
func (s *Service) Archive(ctx context.Context, id string) (string, error) {
	itemPath, item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	content := markdown.Render(item, s.now)

	targetDir := filepath.Join(s.root, Bucket(item.Source))
	if mkErr := os.MkdirAll(targetDir, 0o755); mkErr != nil {
		return "", fmt.Errorf("create archive directory: %w", mkErr)
	}

	filename := markdown.Date(item, s.now) + "-" + Slugify(item.Title) + ".md"
	targetPath := filepath.Join(targetDir, filename)

	if _, statErr := os.Stat(targetPath); statErr == nil {
		s.logger.Warn("Overwriting existing archive file",
			logger.String("path", targetPath),
		)
	}

	if writeErr := os.WriteFile(targetPath, []byte(content), 0o644); writeErr != nil {
		return "", fmt.Errorf("write archive file: %w", writeErr)
	}

	if delErr := s.repo.Delete(itemPath); delErr != nil {
		// The item now exists in both the inbox and the archive.
		s.logger.Error("Archived item could not be removed from inbox",
			logger.String("item_id", id),
			logger.String("inbox_path", itemPath),
			logger.String("archive_path", targetPath),
			logger.Error(delErr),
		)
		return "", delErr
	}

	metrics.ItemsSaved.Inc()
	s.logger.Info("Item archived",
		logger.String("item_id", id),
		logger.String("path", targetPath),
	)
	return targetPath, nil
}

// Discard deletes the inbox file for an item without archiving it.
func (s *Service) Discard(ctx context.Context, id string) error {
	itemPath, _, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if delErr := s.repo.Delete(itemPath); delErr != nil {
		return delErr
	}

	metrics.ItemsDismissed.Inc()
	s.logger.Info("Item dismissed",
		logger.String("item_id", id),
		logger.String("path", itemPath),
	)
	return nil
}

// DisplayPath substitutes the archive root with a home-relative form for
// API responses, e.g. /home/u/second-brain/x.md -> ~/second-brain/x.md.
func (s *Service) DisplayPath(path string) string {
	return strings.Replace(path, s.root, "~/"+filepath.Base(s.root), 1)
}
