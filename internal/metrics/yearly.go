package metrics

import (
	"sort"
	"strconv"

	"github.com/marpemad/wealthHub/internal/models"
)

// YearAssetMetrics is one asset's slice of a year.
type YearAssetMetrics struct {
	Invested   float64 `json:"invested"`
	NAV        float64 `json:"nav"`
	NAVAtStart float64 `json:"navAtStart"`
	GainLoss   float64 `json:"gainLoss"`
	ROI        float64 `json:"roi"`
}

// YearlyMetrics summarizes one calendar year. MonthsWithData below 12
// flags a partial year. Year totals exclude the cash asset; ByAsset
// keeps it so the breakdown table can still show it.
type YearlyMetrics struct {
	Year             int                         `json:"year"`
	MonthsWithData   int                         `json:"monthsWithData"`
	TotalInvested    float64                     `json:"totalInvested"`
	TotalNAV         float64                     `json:"totalNav"`
	TotalGainLoss    float64                     `json:"totalGainLoss"`
	ROI              float64                     `json:"roi"`
	ByAsset          map[string]YearAssetMetrics `json:"investmentByAsset"`
	ContributionRate float64                     `json:"contributionRate"`
}

// CumulativeInvestment is the all-years investment roll-up per asset.
type CumulativeInvestment struct {
	Total     float64 `json:"total"`
	YearStart int     `json:"yearStart"`
	YearEnd   int     `json:"yearEnd"`
}

func yearOf(month string) (int, bool) {
	if len(month) < 4 {
		return 0, false
	}
	y, err := strconv.Atoi(month[:4])
	if err != nil {
		return 0, false
	}
	return y, true
}

// Yearly breaks down performance per calendar year and asset.
//
// History is month-sorted (stable) and bucketed by year, then asset.
// Per bucket the gain is navEnd - navStart - invested, where navEnd
// is the bucket's last entry and navStart the last entry of the same
// asset in the previous year that has any data, zero when the asset
// is new. ROI divides the gain by the capital at risk, navStart plus
// invested, guarded against a zero denominator.
func Yearly(assets []models.Asset, history []models.HistoryEntry) []YearlyMetrics {
	if len(history) == 0 {
		return []YearlyMetrics{}
	}

	sorted := sortedByMonth(history)

	var cashAssetID string
	if cash, ok := findCash(assets); ok {
		cashAssetID = cash.ID
	}

	byYear := make(map[int]map[string][]models.HistoryEntry)
	for _, entry := range sorted {
		year, ok := yearOf(entry.Month)
		if !ok {
			continue
		}
		if byYear[year] == nil {
			byYear[year] = make(map[string][]models.HistoryEntry)
		}
		byYear[year][entry.AssetID] = append(byYear[year][entry.AssetID], entry)
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]YearlyMetrics, 0, len(years))
	for yearIndex, year := range years {
		yearData := byYear[year]

		monthsSeen := make(map[string]struct{})
		byAsset := make(map[string]YearAssetMetrics, len(yearData))
		var totalInvested, totalNAVEnd, totalNAVStart, totalGainLoss float64

		assetIDs := make([]string, 0, len(yearData))
		for id := range yearData {
			assetIDs = append(assetIDs, id)
		}
		sort.Strings(assetIDs)

		for _, assetID := range assetIDs {
			entries := yearData[assetID]
			for _, e := range entries {
				monthsSeen[e.Month] = struct{}{}
			}

			invested := sumContributions(entries)
			navEnd := entries[len(entries)-1].NAV

			var navStart float64
			if yearIndex > 0 {
				prev := byYear[years[yearIndex-1]][assetID]
				if len(prev) > 0 {
					navStart = prev[len(prev)-1].NAV
				}
			}

			gainLoss := navEnd - navStart - invested

			var roi float64
			if capital := navStart + invested; capital > 0 {
				roi = gainLoss / capital * 100
			}

			if assetID != cashAssetID {
				totalInvested += invested
				totalNAVEnd += navEnd
				totalNAVStart += navStart
				totalGainLoss += gainLoss
			}

			byAsset[assetID] = YearAssetMetrics{
				Invested:   invested,
				NAV:        navEnd,
				NAVAtStart: navStart,
				GainLoss:   gainLoss,
				ROI:        roi,
			}
		}

		var roi float64
		if capital := totalNAVStart + totalInvested; capital > 0 {
			roi = totalGainLoss / capital * 100
		}

		monthsWithData := len(monthsSeen)
		var contributionRate float64
		if monthsWithData > 0 {
			contributionRate = totalInvested / float64(monthsWithData)
		}

		out = append(out, YearlyMetrics{
			Year:             year,
			MonthsWithData:   monthsWithData,
			TotalInvested:    totalInvested,
			TotalNAV:         totalNAVEnd,
			TotalGainLoss:    totalGainLoss,
			ROI:              roi,
			ByAsset:          byAsset,
			ContributionRate: contributionRate,
		})
	}

	return out
}

// CumulativeByAsset rolls yearly breakdowns into per-asset lifetime
// investment totals with the first and last year each asset appears.
func CumulativeByAsset(yearly []YearlyMetrics) map[string]CumulativeInvestment {
	out := make(map[string]CumulativeInvestment)
	for _, year := range yearly {
		for assetID, data := range year.ByAsset {
			acc, ok := out[assetID]
			if !ok {
				acc = CumulativeInvestment{YearStart: year.Year, YearEnd: year.Year}
			}
			acc.Total += data.Invested
			acc.YearEnd = year.Year
			out[assetID] = acc
		}
	}
	return out
}
