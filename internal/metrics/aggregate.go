package metrics

import "github.com/marpemad/wealthHub/internal/models"

// Aggregate rolls the whole portfolio into a single Metrics value.
//
// Archived assets are skipped. The cash asset contributes only its
// base amount, reported as liquidity. Every other active asset adds
// the NAV of its chronologically last history entry and the sum of
// its contributions; assets without history fall back to their base
// amount on both sides, which makes them ROI-neutral.
//
// Returns nil when there are no assets at all, so callers can tell
// "nothing entered yet" apart from a portfolio worth zero.
func Aggregate(assets []models.Asset, history []models.HistoryEntry) *models.Metrics {
	if len(assets) == 0 {
		return nil
	}

	active := Active(assets)

	var liquidity float64
	if cash, ok := findCash(active); ok {
		liquidity = cash.BaseAmount
	}

	var totalNAV, totalInvested float64
	for _, asset := range active {
		if IsCash(asset) {
			continue
		}

		entries := sortedByMonth(historyFor(asset.ID, history))
		if len(entries) > 0 {
			totalNAV += entries[len(entries)-1].NAV
			totalInvested += sumContributions(entries)
		} else {
			totalNAV += asset.BaseAmount
			totalInvested += asset.BaseAmount
		}
	}

	totalProfit := totalNAV - totalInvested

	var roi float64
	if totalInvested > 0 {
		roi = totalProfit / totalInvested * 100
	}

	return &models.Metrics{
		TotalNAV:    totalNAV,
		TotalInv:    totalInvested,
		TotalProfit: totalProfit,
		ROI:         roi,
		Liquidity:   liquidity,
	}
}
