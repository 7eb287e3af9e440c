// Package metrics derives portfolio figures from the raw record
// collections. Every function takes a snapshot of the inputs and
// returns fresh values; nothing here mutates or performs I/O.
package metrics

import "github.com/marpemad/wealthHub/internal/models"

// CashAssetName marks the designated liquidity asset. Matching is
// exact and case-sensitive: rename the asset and it silently loses
// the cash treatment in every aggregate.
const CashAssetName = "Cash"

func IsCash(a models.Asset) bool {
	return a.Name == CashAssetName
}

// Active returns the assets that have not been archived.
func Active(assets []models.Asset) []models.Asset {
	out := make([]models.Asset, 0, len(assets))
	for _, a := range assets {
		if !a.Archived {
			out = append(out, a)
		}
	}
	return out
}

// NonCash drops the cash asset but keeps archived ones, so historical
// views still include assets that were archived later.
func NonCash(assets []models.Asset) []models.Asset {
	out := make([]models.Asset, 0, len(assets))
	for _, a := range assets {
		if !IsCash(a) {
			out = append(out, a)
		}
	}
	return out
}

// Investable returns the active assets that count toward gain and ROI
// aggregates, i.e. everything active except the cash asset.
func Investable(assets []models.Asset) []models.Asset {
	return NonCash(Active(assets))
}

func findCash(assets []models.Asset) (models.Asset, bool) {
	for _, a := range assets {
		if IsCash(a) {
			return a, true
		}
	}
	return models.Asset{}, false
}
