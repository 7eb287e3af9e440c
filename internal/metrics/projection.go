package metrics

import (
	"math"
	"time"

	"github.com/marpemad/wealthHub/internal/models"
)

// Fallback projection parameters when the portfolio has no data to
// seed them from.
const (
	DefaultPrincipal           = 10000.0
	DefaultMonthlyContribution = 500.0
	DefaultAnnualRate          = 7.0
	DefaultHorizonMonths       = 60
)

// ProjectionPoint is one simulated month.
type ProjectionPoint struct {
	CapitalInvested float64 `json:"capitalInvested"`
	TotalValue      float64 `json:"totalValue"`
	MonthLabel      string  `json:"monthLabel"`
	MonthIndex      int     `json:"monthIndex"`
}

// Project simulates portfolio growth over the given horizon. now only
// feeds the month labels, so tests can pin it.
//
// The growth model is the dashboard's original linear approximation,
// value_i = capital_i * (1 + monthlyRate*i), not textbook monthly
// compounding. Keep it as is: swapping in real compounding would
// silently change every projection users have seen.
func Project(principal, monthlyContribution, annualRate float64, months int, now time.Time) []ProjectionPoint {
	monthlyRate := annualRate / 12 / 100

	out := make([]ProjectionPoint, 0, max(months, 0))
	for i := 0; i < months; i++ {
		capital := principal + monthlyContribution*float64(i+1)
		out = append(out, ProjectionPoint{
			CapitalInvested: capital,
			TotalValue:      capital + capital*(monthlyRate*float64(i)),
			MonthLabel:      now.AddDate(0, i, 0).Format("Jan 2006"),
			MonthIndex:      i,
		})
	}
	return out
}

// SeedPrincipal defaults the projection's starting capital to the
// current portfolio value.
func SeedPrincipal(m *models.Metrics) float64 {
	if m == nil || m.TotalNAV <= 0 {
		return DefaultPrincipal
	}
	return math.Round(m.TotalNAV)
}

// SeedMonthlyContribution averages the portfolio's contributions over
// the last 12 calendar months that have history, rounded to the euro.
func SeedMonthlyContribution(history []models.HistoryEntry, now time.Time) float64 {
	if len(history) == 0 {
		return DefaultMonthlyContribution
	}

	// Anchor at the first of the month so stepping back never skips a
	// short month.
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	window := make(map[string]struct{}, 12)
	for i := 0; i < 12; i++ {
		window[first.AddDate(0, -i, 0).Format("2006-01")] = struct{}{}
	}

	perMonth := make(map[string]float64)
	for _, h := range history {
		if _, ok := window[h.Month]; ok {
			perMonth[h.Month] += h.Contribution
		}
	}
	if len(perMonth) == 0 {
		return DefaultMonthlyContribution
	}

	var total float64
	for _, v := range perMonth {
		total += v
	}
	return math.Round(total / float64(len(perMonth)))
}
