// Package handlers maps triage operations onto HTTP responses.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jonesrussell/cortexgate/internal/archive"
	"github.com/jonesrussell/cortexgate/internal/logger"
	"github.com/jonesrussell/cortexgate/internal/repository"
)

type ItemHandler struct {
	repo    *repository.ItemRepository
	service *archive.Service
	logger  logger.Logger
}

func NewItemHandler(repo *repository.ItemRepository, service *archive.Service, log logger.Logger) *ItemHandler {
	return &ItemHandler{
		repo:    repo,
		service: service,
		logger:  log,
	}
}

// List returns every parsable inbox item as a JSON array. Ordering for
// display is the front-end's concern.
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list items",
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// Save archives an item into the knowledge base and removes it from the
// inbox.
func (h *ItemHandler) Save(c *gin.Context) {
	id := c.Param("id")

	savedPath, err := h.service.Archive(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		h.logger.Error("Failed to save item",
			logger.String("item_id", id),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"saved_to": h.service.DisplayPath(savedPath),
	})
}

// Dismiss deletes an item from the inbox without archiving it.
func (h *ItemHandler) Dismiss(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Discard(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		h.logger.Error("Failed to dismiss item",
			logger.String("item_id", id),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to dismiss item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
