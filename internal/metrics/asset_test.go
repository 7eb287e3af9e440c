package metrics

import (
	"testing"

	"github.com/marpemad/wealthHub/internal/models"

	"github.com/stretchr/testify/require"
)

func TestComputeAsset_NoHistory(t *testing.T) {
	asset := models.Asset{ID: "a1", Name: "Fondo Indexado", BaseAmount: 2500}

	got := ComputeAsset(asset, nil)

	require.Equal(t, 2500.0, got.NAV)
	require.Equal(t, 2500.0, got.TotalInvested)
	require.Zero(t, got.TotalProfit)
	require.Zero(t, got.ROI)
}

func TestComputeAsset_WithHistory(t *testing.T) {
	asset := models.Asset{ID: "a1", Name: "Acciones Española", BaseAmount: 5500}
	history := []models.HistoryEntry{
		{ID: "h1", Month: "2024-01", AssetID: "a1", NAV: 5000, Contribution: 5000},
		{ID: "h2", Month: "2024-02", AssetID: "a1", NAV: 5300, Contribution: 0},
	}

	got := ComputeAsset(asset, history)

	require.Equal(t, 5300.0, got.NAV)
	require.Equal(t, 5000.0, got.TotalInvested)
	require.Equal(t, 300.0, got.TotalProfit)
	require.Equal(t, 6.0, got.ROI)
}

func TestComputeAsset_LastStoredEntryWins(t *testing.T) {
	// Stored order is authoritative, not the newest month.
	asset := models.Asset{ID: "a1", Name: "Acciones Española"}
	history := []models.HistoryEntry{
		{ID: "h1", Month: "2024-03", AssetID: "a1", NAV: 9000, Contribution: 1000},
		{ID: "h2", Month: "2024-01", AssetID: "a1", NAV: 4000, Contribution: 1000},
	}

	got := ComputeAsset(asset, history)

	require.Equal(t, 4000.0, got.NAV)
	require.Equal(t, 2000.0, got.TotalInvested)
}

func TestComputeAsset_NegativeInvestedFlooredToZeroROI(t *testing.T) {
	asset := models.Asset{ID: "a1", Name: "Acciones Española"}
	history := []models.HistoryEntry{
		{ID: "h1", Month: "2024-01", AssetID: "a1", NAV: 100, Contribution: -500},
	}

	got := ComputeAsset(asset, history)

	require.Equal(t, -500.0, got.TotalInvested)
	require.Zero(t, got.ROI)
}

func TestComputeAsset_IgnoresOtherAssets(t *testing.T) {
	asset := models.Asset{ID: "a1", Name: "Acciones Española", BaseAmount: 100}
	history := []models.HistoryEntry{
		{ID: "h1", Month: "2024-01", AssetID: "other", NAV: 7000, Contribution: 7000},
	}

	got := ComputeAsset(asset, history)

	require.Equal(t, 100.0, got.NAV)
	require.Equal(t, 100.0, got.TotalInvested)
}

func TestPerAsset_ExcludesCashKeepsArchived(t *testing.T) {
	assets := []models.Asset{
		{ID: "a1", Name: "Acciones Española"},
		{ID: "a2", Name: "Cash", BaseAmount: 2000},
		{ID: "a3", Name: "Criptomonedas", Archived: true, BaseAmount: 300},
	}

	got := PerAsset(assets, nil)

	require.Len(t, got, 2)
	require.Equal(t, "a1", got[0].Asset.ID)
	require.Equal(t, "a3", got[1].Asset.ID)
}

func TestFilters(t *testing.T) {
	assets := []models.Asset{
		{ID: "a1", Name: "Acciones Española"},
		{ID: "a2", Name: "Cash"},
		{ID: "a3", Name: "Criptomonedas", Archived: true},
	}

	require.Len(t, Active(assets), 2)
	require.Len(t, NonCash(assets), 2)

	investable := Investable(assets)
	require.Len(t, investable, 1)
	require.Equal(t, "a1", investable[0].ID)

	require.Empty(t, Active(nil))
	require.Empty(t, Investable(nil))
}

func TestFilters_CaseSensitiveCashMatch(t *testing.T) {
	// "cash" is not the sentinel; only the exact name is.
	assets := []models.Asset{{ID: "a1", Name: "cash"}}
	require.Len(t, Investable(assets), 1)
}
