package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (c *Controller) SyncStatus(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.store.SyncState())
}

func (c *Controller) ForceSync(ctx *gin.Context) {
	if c.syncer == nil {
		serviceUnavailable(ctx, "sync is not configured")
		return
	}

	if err := c.syncer.ForceSync(); err != nil {
		c.logger.Error("forced sync failed", "error", err)
		internalError(ctx, "sync failed")
		return
	}

	ctx.JSON(http.StatusOK, c.store.SyncState())
}
