package metrics

import (
	"sort"

	"github.com/marpemad/wealthHub/internal/models"
)

// AssetMetrics is the standalone view of a single asset.
type AssetMetrics struct {
	Asset         models.Asset `json:"asset"`
	NAV           float64      `json:"nav"`
	TotalInvested float64      `json:"totalInvested"`
	TotalProfit   float64      `json:"totalProfit"`
	ROI           float64      `json:"roi"`
}

// historyFor picks the entries belonging to one asset, preserving
// stored order. Entries pointing at unknown assets simply never match.
func historyFor(assetID string, history []models.HistoryEntry) []models.HistoryEntry {
	out := make([]models.HistoryEntry, 0, len(history))
	for _, h := range history {
		if h.AssetID == assetID {
			out = append(out, h)
		}
	}
	return out
}

// sortedByMonth returns a copy ordered by month ascending. The sort is
// stable so entries sharing a month keep their stored order and the
// last one stays authoritative.
func sortedByMonth(entries []models.HistoryEntry) []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Month < out[j].Month
	})
	return out
}

func sumContributions(entries []models.HistoryEntry) float64 {
	var sum float64
	for _, h := range entries {
		sum += h.Contribution
	}
	return sum
}

// ComputeAsset derives the standalone metrics for one asset. The
// current NAV comes from the last entry in stored order, not from the
// newest month; the aggregate view sorts chronologically instead, and
// the two deliberately stay distinct.
func ComputeAsset(asset models.Asset, history []models.HistoryEntry) AssetMetrics {
	entries := historyFor(asset.ID, history)
	if len(entries) == 0 {
		return AssetMetrics{
			Asset:         asset,
			NAV:           asset.BaseAmount,
			TotalInvested: asset.BaseAmount,
		}
	}

	latest := entries[len(entries)-1]
	invested := sumContributions(entries)
	profit := latest.NAV - invested

	var roi float64
	if invested > 0 {
		roi = profit / invested * 100
	}

	return AssetMetrics{
		Asset:         asset,
		NAV:           latest.NAV,
		TotalInvested: invested,
		TotalProfit:   profit,
		ROI:           roi,
	}
}

// PerAsset derives standalone metrics for every non-cash asset,
// archived ones included.
func PerAsset(assets []models.Asset, history []models.HistoryEntry) []AssetMetrics {
	tracked := NonCash(assets)
	out := make([]AssetMetrics, 0, len(tracked))
	for _, a := range tracked {
		out = append(out, ComputeAsset(a, history))
	}
	return out
}
