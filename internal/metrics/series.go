package metrics

import (
	"encoding/json"
	"sort"

	"github.com/marpemad/wealthHub/internal/models"
)

// SeriesPoint is one month of a chart series. Values carries one key
// per plotted line; an absent key is a gap in that line, which the
// chart renders with connect-nulls semantics.
type SeriesPoint struct {
	Month  string
	Values map[string]float64
}

// MarshalJSON flattens the point into a single object, the row shape
// the charts consume: {"month": "2024-01", "<line>": <value>, ...}.
func (p SeriesPoint) MarshalJSON() ([]byte, error) {
	row := make(map[string]any, len(p.Values)+1)
	row["month"] = p.Month
	for k, v := range p.Values {
		row[k] = v
	}
	return json.Marshal(row)
}

func groupByMonth(history []models.HistoryEntry) map[string][]models.HistoryEntry {
	grouped := make(map[string][]models.HistoryEntry)
	for _, h := range history {
		grouped[h.Month] = append(grouped[h.Month], h)
	}
	return grouped
}

func sortedMonths(grouped map[string][]models.HistoryEntry) []string {
	months := make([]string, 0, len(grouped))
	for m := range grouped {
		months = append(months, m)
	}
	// Lexicographic on YYYY-MM is chronological.
	sort.Strings(months)
	return months
}

// entryFor picks the first entry for the asset within a month bucket.
func entryFor(assetID string, entries []models.HistoryEntry) (models.HistoryEntry, bool) {
	for _, e := range entries {
		if e.AssetID == assetID {
			return e, true
		}
	}
	return models.HistoryEntry{}, false
}

// investedThrough sums an asset's contributions over every entry up
// to and including the given month.
func investedThrough(assetID, month string, history []models.HistoryEntry) float64 {
	var sum float64
	for _, h := range history {
		if h.AssetID == assetID && h.Month <= month {
			sum += h.Contribution
		}
	}
	return sum
}

// Evolution builds the month-by-month wealth series: one line per
// asset (keyed by name), plus "total" summing the NAVs present that
// month and "invested" with the cumulative contributions of every
// asset through that month. Callers pass the assets they want
// plotted, normally NonCash so archived assets stay in the history.
func Evolution(history []models.HistoryEntry, assets []models.Asset) []SeriesPoint {
	grouped := groupByMonth(history)
	months := sortedMonths(grouped)

	points := make([]SeriesPoint, 0, len(months))
	for _, month := range months {
		values := make(map[string]float64)

		var invested float64
		for _, asset := range assets {
			invested += investedThrough(asset.ID, month, history)
		}

		var totalNAV float64
		for _, asset := range assets {
			if entry, ok := entryFor(asset.ID, grouped[month]); ok {
				values[asset.Name] = entry.NAV
				totalNAV += entry.NAV
			}
		}

		values["total"] = totalNAV
		values["invested"] = invested
		points = append(points, SeriesPoint{Month: month, Values: values})
	}
	return points
}

// CumulativeReturn builds the cumulative ROI series: per asset
// present in a month, ROI of its NAV against everything contributed
// through that month, keyed "ROI_<name>"; "totalROI" aggregates NAV
// and invested across the assets present that month.
func CumulativeReturn(history []models.HistoryEntry, assets []models.Asset) []SeriesPoint {
	grouped := groupByMonth(history)
	months := sortedMonths(grouped)

	points := make([]SeriesPoint, 0, len(months))
	for _, month := range months {
		values := make(map[string]float64)

		var totalNAV, totalInvested float64
		for _, asset := range assets {
			entry, ok := entryFor(asset.ID, grouped[month])
			if !ok {
				continue
			}

			invested := investedThrough(asset.ID, month, history)

			var roi float64
			if invested > 0 {
				roi = (entry.NAV - invested) / invested * 100
			}

			values["ROI_"+asset.Name] = roi
			totalNAV += entry.NAV
			totalInvested += invested
		}

		var totalROI float64
		if totalInvested > 0 {
			totalROI = (totalNAV - totalInvested) / totalInvested * 100
		}
		values["totalROI"] = totalROI

		points = append(points, SeriesPoint{Month: month, Values: values})
	}
	return points
}
