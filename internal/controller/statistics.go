package controller

import (
	"net/http"

	"github.com/marpemad/wealthHub/internal/metrics"

	"github.com/gin-gonic/gin"
)

type yearlyStatisticsResponse struct {
	Years      []metrics.YearlyMetrics                 `json:"years"`
	Cumulative map[string]metrics.CumulativeInvestment `json:"cumulative"`
}

func (c *Controller) YearlyStatistics(ctx *gin.Context) {
	yearly := metrics.Yearly(c.store.Assets(), c.store.History())
	ctx.JSON(http.StatusOK, yearlyStatisticsResponse{
		Years:      yearly,
		Cumulative: metrics.CumulativeByAsset(yearly),
	})
}
