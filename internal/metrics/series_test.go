package metrics

import (
	"encoding/json"
	"testing"

	"github.com/marpemad/wealthHub/internal/models"

	"github.com/stretchr/testify/require"
)

func seriesAssets() []models.Asset {
	return []models.Asset{
		{ID: "a1", Name: "Acciones Española"},
		{ID: "a2", Name: "Criptomonedas"},
	}
}

func TestEvolution_Empty(t *testing.T) {
	require.Empty(t, Evolution(nil, seriesAssets()))
}

func TestEvolution_MonthsSortedWithTotals(t *testing.T) {
	history := []models.HistoryEntry{
		{ID: "h3", Month: "2024-02", AssetID: "a1", NAV: 5300, Contribution: 0},
		{ID: "h1", Month: "2024-01", AssetID: "a1", NAV: 5000, Contribution: 5000},
		{ID: "h2", Month: "2024-01", AssetID: "a2", NAV: 3000, Contribution: 3000},
	}

	got := Evolution(history, seriesAssets())

	require.Len(t, got, 2)
	require.Equal(t, "2024-01", got[0].Month)
	require.Equal(t, "2024-02", got[1].Month)

	require.Equal(t, 5000.0, got[0].Values["Acciones Española"])
	require.Equal(t, 3000.0, got[0].Values["Criptomonedas"])
	require.Equal(t, 8000.0, got[0].Values["total"])
	require.Equal(t, 8000.0, got[0].Values["invested"])

	// a2 has no February entry: its line gaps, but its contributions
	// still count toward the cumulative invested.
	_, present := got[1].Values["Criptomonedas"]
	require.False(t, present)
	require.Equal(t, 5300.0, got[1].Values["total"])
	require.Equal(t, 8000.0, got[1].Values["invested"])
}

func TestEvolution_WithdrawalsReduceInvested(t *testing.T) {
	history := []models.HistoryEntry{
		{ID: "h1", Month: "2024-01", AssetID: "a1", NAV: 1000, Contribution: 1000},
		{ID: "h2", Month: "2024-02", AssetID: "a1", NAV: 600, Contribution: -400},
	}

	got := Evolution(history, seriesAssets())

	require.Len(t, got, 2)
	require.Equal(t, 1000.0, got[0].Values["invested"])
	require.Equal(t, 600.0, got[1].Values["invested"])
}

func TestCumulativeReturn_PerAssetAndTotal(t *testing.T) {
	history := []models.HistoryEntry{
		{ID: "h1", Month: "2024-01", AssetID: "a1", NAV: 5000, Contribution: 5000},
		{ID: "h2", Month: "2024-02", AssetID: "a1", NAV: 5300, Contribution: 0},
		{ID: "h3", Month: "2024-02", AssetID: "a2", NAV: 3200, Contribution: 3000},
	}

	got := CumulativeReturn(history, seriesAssets())

	require.Len(t, got, 2)

	require.Zero(t, got[0].Values["ROI_Acciones Española"])
	require.Zero(t, got[0].Values["totalROI"])

	require.Equal(t, 6.0, got[1].Values["ROI_Acciones Española"])
	require.InDelta(t, 6.666666, got[1].Values["ROI_Criptomonedas"], 1e-4)
	// total: (5300+3200-8000)/8000
	require.InDelta(t, 6.25, got[1].Values["totalROI"], 1e-9)
}

func TestCumulativeReturn_ZeroInvestedGuard(t *testing.T) {
	history := []models.HistoryEntry{
		{ID: "h1", Month: "2024-01", AssetID: "a1", NAV: 500, Contribution: 0},
	}

	got := CumulativeReturn(history, seriesAssets())

	require.Len(t, got, 1)
	require.Zero(t, got[0].Values["ROI_Acciones Española"])
	require.Zero(t, got[0].Values["totalROI"])
}

func TestSeriesPoint_MarshalFlattens(t *testing.T) {
	point := SeriesPoint{Month: "2024-01", Values: map[string]float64{"total": 8000}}

	data, err := json.Marshal(point)
	require.NoError(t, err)

	var row map[string]any
	require.NoError(t, json.Unmarshal(data, &row))
	require.Equal(t, "2024-01", row["month"])
	require.Equal(t, 8000.0, row["total"])
}

func TestSeries_Deterministic(t *testing.T) {
	history := []models.HistoryEntry{
		{ID: "h1", Month: "2024-02", AssetID: "a1", NAV: 5300, Contribution: 0},
		{ID: "h2", Month: "2024-01", AssetID: "a1", NAV: 5000, Contribution: 5000},
	}

	require.Equal(t, Evolution(history, seriesAssets()), Evolution(history, seriesAssets()))
	require.Equal(t, CumulativeReturn(history, seriesAssets()), CumulativeReturn(history, seriesAssets()))
}
