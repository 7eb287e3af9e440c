package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/marpemad/wealthHub/internal/metrics"

	"github.com/gin-gonic/gin"
)

type projectionResponse struct {
	Principal           float64                   `json:"principal"`
	MonthlyContribution float64                   `json:"monthlyContribution"`
	AnnualRate          float64                   `json:"annualRate"`
	Months              int                       `json:"months"`
	Points              []metrics.ProjectionPoint `json:"points"`
}

// Projections simulates growth. Absent parameters are seeded from the
// live portfolio: principal from current NAV, monthly contribution
// from the trailing twelve months of history.
func (c *Controller) Projections(ctx *gin.Context) {
	now := time.Now()

	principal := metrics.SeedPrincipal(c.store.Metrics())
	if v := ctx.Query("principal"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 {
			badRequest(ctx, "invalid principal")
			return
		}
		principal = parsed
	}

	monthly := metrics.SeedMonthlyContribution(c.store.History(), now)
	if v := ctx.Query("monthly"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 {
			badRequest(ctx, "invalid monthly contribution")
			return
		}
		monthly = parsed
	}

	rate := metrics.DefaultAnnualRate
	if v := ctx.Query("rate"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			badRequest(ctx, "invalid rate")
			return
		}
		rate = parsed
	}

	months := metrics.DefaultHorizonMonths
	if v := ctx.Query("months"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 || parsed > 600 {
			badRequest(ctx, "invalid months")
			return
		}
		months = parsed
	}

	ctx.JSON(http.StatusOK, projectionResponse{
		Principal:           principal,
		MonthlyContribution: monthly,
		AnnualRate:          rate,
		Months:              months,
		Points:              metrics.Project(principal, monthly, rate, months, now),
	})
}
