package controller

import (
	"errors"
	"net/http"

	"github.com/marpemad/wealthHub/internal/models"
	"github.com/marpemad/wealthHub/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (c *Controller) ListHistory(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.store.History())
}

func (c *Controller) CreateHistoryEntry(ctx *gin.Context) {
	var entry models.HistoryEntry
	if err := ctx.ShouldBindJSON(&entry); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}
	if entry.Month == "" || entry.AssetID == "" {
		badRequest(ctx, "month and assetId are required")
		return
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if err := c.store.AddHistoryEntry(entry); err != nil {
		c.logger.Error("failed to create history entry", "error", err)
		internalError(ctx, "failed to create history entry")
		return
	}

	ctx.JSON(http.StatusCreated, entry)
}

func (c *Controller) UpdateHistoryEntry(ctx *gin.Context) {
	var entry models.HistoryEntry
	if err := ctx.ShouldBindJSON(&entry); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}
	entry.ID = ctx.Param("id")

	if err := c.store.UpdateHistoryEntry(entry); err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			notFound(ctx, "history entry not found")
			return
		}
		c.logger.Error("failed to update history entry", "error", err)
		internalError(ctx, "failed to update history entry")
		return
	}

	ctx.JSON(http.StatusOK, entry)
}

func (c *Controller) DeleteHistoryEntry(ctx *gin.Context) {
	if err := c.store.DeleteHistoryEntry(ctx.Param("id")); err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			notFound(ctx, "history entry not found")
			return
		}
		c.logger.Error("failed to delete history entry", "error", err)
		internalError(ctx, "failed to delete history entry")
		return
	}

	ctx.Status(http.StatusNoContent)
}
