package controller

import (
	"errors"
	"net/http"

	"github.com/marpemad/wealthHub/internal/models"
	"github.com/marpemad/wealthHub/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (c *Controller) ListAssets(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.store.Assets())
}

func (c *Controller) CreateAsset(ctx *gin.Context) {
	var asset models.Asset
	if err := ctx.ShouldBindJSON(&asset); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}
	if asset.Name == "" {
		badRequest(ctx, "asset name is required")
		return
	}
	if asset.ID == "" {
		asset.ID = uuid.NewString()
	}

	if err := c.store.AddAsset(asset); err != nil {
		c.logger.Error("failed to create asset", "error", err)
		internalError(ctx, "failed to create asset")
		return
	}

	ctx.JSON(http.StatusCreated, asset)
}

func (c *Controller) UpdateAsset(ctx *gin.Context) {
	var asset models.Asset
	if err := ctx.ShouldBindJSON(&asset); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}
	asset.ID = ctx.Param("id")

	if err := c.store.UpdateAsset(asset); err != nil {
		if errors.Is(err, store.ErrAssetNotFound) {
			notFound(ctx, "asset not found")
			return
		}
		c.logger.Error("failed to update asset", "error", err)
		internalError(ctx, "failed to update asset")
		return
	}

	ctx.JSON(http.StatusOK, asset)
}

// DeleteAsset archives by default. ?hard=true removes the asset and
// its history for good.
func (c *Controller) DeleteAsset(ctx *gin.Context) {
	id := ctx.Param("id")

	var err error
	if ctx.Query("hard") == "true" {
		err = c.store.DeleteAsset(id)
	} else {
		err = c.store.ArchiveAsset(id)
	}

	if err != nil {
		if errors.Is(err, store.ErrAssetNotFound) {
			notFound(ctx, "asset not found")
			return
		}
		c.logger.Error("failed to delete asset", "error", err)
		internalError(ctx, "failed to delete asset")
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) RestoreAsset(ctx *gin.Context) {
	if err := c.store.RestoreAsset(ctx.Param("id")); err != nil {
		if errors.Is(err, store.ErrAssetNotFound) {
			notFound(ctx, "asset not found")
			return
		}
		c.logger.Error("failed to restore asset", "error", err)
		internalError(ctx, "failed to restore asset")
		return
	}

	ctx.Status(http.StatusNoContent)
}
