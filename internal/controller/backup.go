package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/marpemad/wealthHub/internal/normalize"

	"github.com/gin-gonic/gin"
)

// ExportBackup downloads the whole document as a JSON file.
func (c *Controller) ExportBackup(ctx *gin.Context) {
	doc := c.store.Snapshot()
	doc.ExportedAt = time.Now().UTC().Format(time.RFC3339)
	doc.LastUpdated = ""

	filename := fmt.Sprintf("wealthhub_backup_%s.json", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Header("Content-Type", "application/json")
	ctx.JSON(http.StatusOK, doc)
}

// ImportBackup restores all four collections from an exported
// document. The payload goes through the same normalization as remote
// data, so older exports with localized verbs still import cleanly.
func (c *Controller) ImportBackup(ctx *gin.Context) {
	var raw normalize.RawDocument
	if err := ctx.ShouldBindJSON(&raw); err != nil {
		badRequestWithDetails(ctx, "invalid backup file", err.Error())
		return
	}
	if raw.Assets == nil {
		badRequest(ctx, "backup has no assets")
		return
	}

	doc := normalize.Document(raw, time.Now())
	if err := c.store.ReplaceDocument(&doc); err != nil {
		c.logger.Error("failed to import backup", "error", err)
		internalError(ctx, "failed to import backup")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"assets":              len(doc.Assets),
		"history":             len(doc.History),
		"bitcoinTransactions": len(doc.BitcoinTransactions),
		"stockTransactions":   len(doc.StockTransactions),
	})
}
