package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/marpemad/wealthHub/internal/metrics"
	"github.com/marpemad/wealthHub/internal/normalize"
	"github.com/marpemad/wealthHub/internal/store"

	"github.com/gin-gonic/gin"
)

func (c *Controller) ListStockTransactions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.store.StockTransactions())
}

func (c *Controller) CreateStockTransaction(ctx *gin.Context) {
	var raw normalize.RawStockTransaction
	if err := ctx.ShouldBindJSON(&raw); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}

	tx := normalize.StockTransaction(raw, time.Now())
	if tx.Ticker == "" {
		badRequest(ctx, "ticker is required")
		return
	}

	if err := c.store.AddStockTransaction(tx); err != nil {
		c.logger.Error("failed to create stock transaction", "error", err)
		internalError(ctx, "failed to create stock transaction")
		return
	}

	ctx.JSON(http.StatusCreated, tx)
}

func (c *Controller) UpdateStockTransaction(ctx *gin.Context) {
	var raw normalize.RawStockTransaction
	if err := ctx.ShouldBindJSON(&raw); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}

	tx := normalize.StockTransaction(raw, time.Now())
	tx.ID = ctx.Param("id")

	if err := c.store.UpdateStockTransaction(tx); err != nil {
		if errors.Is(err, store.ErrTransactionNotFound) {
			notFound(ctx, "transaction not found")
			return
		}
		c.logger.Error("failed to update stock transaction", "error", err)
		internalError(ctx, "failed to update stock transaction")
		return
	}

	ctx.JSON(http.StatusOK, tx)
}

func (c *Controller) DeleteStockTransaction(ctx *gin.Context) {
	if err := c.store.DeleteStockTransaction(ctx.Param("id")); err != nil {
		if errors.Is(err, store.ErrTransactionNotFound) {
			notFound(ctx, "transaction not found")
			return
		}
		c.logger.Error("failed to delete stock transaction", "error", err)
		internalError(ctx, "failed to delete stock transaction")
		return
	}

	ctx.Status(http.StatusNoContent)
}

// StockPortfolio values positions against the NAV of the linked stock
// asset when one exists, otherwise against last transaction prices.
// ?currentValue overrides both.
func (c *Controller) StockPortfolio(ctx *gin.Context) {
	currentValue := 0.0
	if v := ctx.Query("currentValue"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			badRequest(ctx, "invalid currentValue")
			return
		}
		currentValue = parsed
	}

	if currentValue == 0 {
		currentValue = metrics.LinkedAssetNAV(c.store.Assets(), c.store.History())
	}

	ctx.JSON(http.StatusOK, metrics.Stocks(c.store.StockTransactions(), currentValue))
}
