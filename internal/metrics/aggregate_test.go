package metrics

import (
	"testing"

	"github.com/marpemad/wealthHub/internal/models"

	"github.com/stretchr/testify/require"
)

func sampleAssets() []models.Asset {
	return []models.Asset{
		{ID: "a1", Name: "Acciones Española", BaseAmount: 5500},
		{ID: "a2", Name: "Criptomonedas", BaseAmount: 3300},
		{ID: "a3", Name: "Cash", BaseAmount: 2000},
	}
}

func sampleHistory() []models.HistoryEntry {
	return []models.HistoryEntry{
		{ID: "h1", Month: "2024-01", AssetID: "a1", NAV: 5000, Contribution: 5000},
		{ID: "h2", Month: "2024-01", AssetID: "a2", NAV: 3000, Contribution: 3000},
		{ID: "h3", Month: "2024-02", AssetID: "a1", NAV: 5300, Contribution: 0},
		{ID: "h4", Month: "2024-02", AssetID: "a2", NAV: 3200, Contribution: 0},
	}
}

func TestAggregate_NilWhenNoAssets(t *testing.T) {
	require.Nil(t, Aggregate(nil, nil))
	require.Nil(t, Aggregate([]models.Asset{}, sampleHistory()))
}

func TestAggregate_Totals(t *testing.T) {
	got := Aggregate(sampleAssets(), sampleHistory())

	require.NotNil(t, got)
	require.Equal(t, 8500.0, got.TotalNAV)
	require.Equal(t, 8000.0, got.TotalInv)
	require.Equal(t, 500.0, got.TotalProfit)
	require.InDelta(t, 6.25, got.ROI, 1e-9)
	require.Equal(t, 2000.0, got.Liquidity)
}

func TestAggregate_ChronologicalLastEntry(t *testing.T) {
	// Unlike the standalone view, the aggregate sorts by month, so the
	// newest month wins regardless of stored order.
	assets := []models.Asset{{ID: "a1", Name: "Acciones Española"}}
	history := []models.HistoryEntry{
		{ID: "h1", Month: "2024-03", AssetID: "a1", NAV: 9000, Contribution: 1000},
		{ID: "h2", Month: "2024-01", AssetID: "a1", NAV: 4000, Contribution: 1000},
	}

	got := Aggregate(assets, history)

	require.NotNil(t, got)
	require.Equal(t, 9000.0, got.TotalNAV)
	require.Equal(t, 2000.0, got.TotalInv)
}

func TestAggregate_DuplicateMonthLastStoredWins(t *testing.T) {
	// Two entries for the same month: the stable sort keeps stored
	// order, so the later one in the slice is authoritative.
	assets := []models.Asset{{ID: "a1", Name: "Acciones Española"}}
	history := []models.HistoryEntry{
		{ID: "h1", Month: "2024-01", AssetID: "a1", NAV: 9999, Contribution: 0},
		{ID: "h2", Month: "2024-01", AssetID: "a1", NAV: 1000, Contribution: 1000},
	}

	got := Aggregate(assets, history)

	require.NotNil(t, got)
	require.Equal(t, 1000.0, got.TotalNAV)
}

func TestAggregate_BaseAmountFallback(t *testing.T) {
	got := Aggregate(sampleAssets(), nil)

	require.NotNil(t, got)
	require.Equal(t, 8800.0, got.TotalNAV)
	require.Equal(t, 8800.0, got.TotalInv)
	require.Zero(t, got.TotalProfit)
	require.Zero(t, got.ROI)
	require.Equal(t, 2000.0, got.Liquidity)
}

func TestAggregate_SkipsArchived(t *testing.T) {
	assets := sampleAssets()
	assets[1].Archived = true

	got := Aggregate(assets, sampleHistory())

	require.NotNil(t, got)
	require.Equal(t, 5300.0, got.TotalNAV)
	require.Equal(t, 5000.0, got.TotalInv)
}

func TestAggregate_MatchesPerAssetInvestedSum(t *testing.T) {
	// Σ per-asset invested over non-cash assets equals the aggregate
	// total when every asset has history.
	assets := sampleAssets()
	history := sampleHistory()

	agg := Aggregate(assets, history)
	require.NotNil(t, agg)

	var sum float64
	for _, m := range PerAsset(assets, history) {
		sum += m.TotalInvested
	}
	require.Equal(t, agg.TotalInv, sum)
}

func TestAggregate_Idempotent(t *testing.T) {
	assets := sampleAssets()
	history := sampleHistory()

	first := Aggregate(assets, history)
	second := Aggregate(assets, history)

	require.Equal(t, first, second)
}
