package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/marpemad/wealthHub/internal/metrics"
	"github.com/marpemad/wealthHub/internal/normalize"
	"github.com/marpemad/wealthHub/internal/store"

	"github.com/gin-gonic/gin"
)

func (c *Controller) ListBitcoinTransactions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.store.BitcoinTransactions())
}

// CreateBitcoinTransaction accepts the tolerant wire shape: localized
// verbs, numeric strings, and the amount/totalCost fallback chain.
func (c *Controller) CreateBitcoinTransaction(ctx *gin.Context) {
	var raw normalize.RawBitcoinTransaction
	if err := ctx.ShouldBindJSON(&raw); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}

	tx := normalize.BitcoinTransaction(raw, time.Now())
	if err := c.store.AddBitcoinTransaction(tx); err != nil {
		c.logger.Error("failed to create bitcoin transaction", "error", err)
		internalError(ctx, "failed to create bitcoin transaction")
		return
	}

	ctx.JSON(http.StatusCreated, tx)
}

func (c *Controller) UpdateBitcoinTransaction(ctx *gin.Context) {
	var raw normalize.RawBitcoinTransaction
	if err := ctx.ShouldBindJSON(&raw); err != nil {
		badRequestWithDetails(ctx, "invalid input", err.Error())
		return
	}

	tx := normalize.BitcoinTransaction(raw, time.Now())
	tx.ID = ctx.Param("id")

	if err := c.store.UpdateBitcoinTransaction(tx); err != nil {
		if errors.Is(err, store.ErrTransactionNotFound) {
			notFound(ctx, "transaction not found")
			return
		}
		c.logger.Error("failed to update bitcoin transaction", "error", err)
		internalError(ctx, "failed to update bitcoin transaction")
		return
	}

	ctx.JSON(http.StatusOK, tx)
}

func (c *Controller) DeleteBitcoinTransaction(ctx *gin.Context) {
	if err := c.store.DeleteBitcoinTransaction(ctx.Param("id")); err != nil {
		if errors.Is(err, store.ErrTransactionNotFound) {
			notFound(ctx, "transaction not found")
			return
		}
		c.logger.Error("failed to delete bitcoin transaction", "error", err)
		internalError(ctx, "failed to delete bitcoin transaction")
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) BitcoinPortfolio(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, metrics.Bitcoin(c.store.BitcoinTransactions()))
}
