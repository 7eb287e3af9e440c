package controller

import (
	"net/http"

	"github.com/marpemad/wealthHub/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics returns the aggregate snapshot, or JSON null when no assets
// exist. An empty portfolio is not the same as a worthless one.
func (c *Controller) Metrics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.store.Metrics())
}

func (c *Controller) Evolution(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.store.EvolutionSeries())
}

func (c *Controller) CumulativeReturn(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.store.ROISeries())
}

func (c *Controller) AssetMetrics(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, metrics.PerAsset(c.store.Assets(), c.store.History()))
}
