package metrics

import (
	"testing"

	"github.com/marpemad/wealthHub/internal/models"

	"github.com/stretchr/testify/require"
)

func TestStocks_Empty(t *testing.T) {
	got := Stocks(nil, 0)

	require.Empty(t, got.Positions)
	require.Zero(t, got.TotalValue)
	require.Zero(t, got.TotalInvestment)
	require.Zero(t, got.UnrealizedGains)
}

func TestStocks_WeightedAverage(t *testing.T) {
	txs := []models.StockTransaction{
		{ID: "t1", Ticker: "AAPL", Type: "buy", Shares: 10, PricePerShare: 150, Fees: 5, TotalAmount: 1500},
		{ID: "t2", Ticker: "AAPL", Type: "buy", Shares: 5, PricePerShare: 380, Fees: 3, TotalAmount: 1903},
	}

	got := Stocks(txs, 0)

	require.Len(t, got.Positions, 1)
	pos := got.Positions[0]
	require.Equal(t, "AAPL", pos.Ticker)
	require.Equal(t, 15.0, pos.Shares)
	require.Equal(t, 3411.0, pos.Cost)
	require.Equal(t, 227.4, pos.AvgPrice)
	require.Equal(t, 380.0, pos.LastPrice)
}

func TestStocks_SellUsesAverageBeforeTheSell(t *testing.T) {
	txs := []models.StockTransaction{
		{ID: "t1", Ticker: "AAPL", Type: "buy", Shares: 10, PricePerShare: 150, Fees: 5, TotalAmount: 1500},
		{ID: "t2", Ticker: "AAPL", Type: "buy", Shares: 5, PricePerShare: 380, Fees: 3, TotalAmount: 1903},
		{ID: "t3", Ticker: "AAPL", Type: "sell", Shares: 8, PricePerShare: 400, Fees: 2, TotalAmount: 3200},
	}

	got := Stocks(txs, 0)

	require.Len(t, got.Positions, 1)
	pos := got.Positions[0]
	require.Equal(t, 7.0, pos.Shares)
	// Cost removed at the running average (227.4), not the first buy
	// price: 3411 - (8*227.4 + 2).
	require.InDelta(t, 1589.8, pos.Cost, 1e-9)
	require.InDelta(t, 227.114285, pos.AvgPrice, 1e-5)
}

func TestStocks_OrderDependence(t *testing.T) {
	buyCheap := models.StockTransaction{ID: "t1", Ticker: "AAPL", Type: "buy", Shares: 10, PricePerShare: 100, TotalAmount: 1000}
	buyDear := models.StockTransaction{ID: "t2", Ticker: "AAPL", Type: "buy", Shares: 10, PricePerShare: 300, TotalAmount: 3000}
	sell := models.StockTransaction{ID: "t3", Ticker: "AAPL", Type: "sell", Shares: 10, PricePerShare: 300, TotalAmount: 3000}

	// The sell hits a different running average depending on what
	// preceded it, so reordering changes the remaining cost basis.
	a := Stocks([]models.StockTransaction{buyCheap, buyDear, sell}, 0)
	b := Stocks([]models.StockTransaction{buyDear, buyCheap, sell}, 0)

	require.Equal(t, a.Positions[0].Shares, b.Positions[0].Shares)
	require.Equal(t, a.Positions[0].Cost, b.Positions[0].Cost) // both averages are 200 here
	require.Equal(t, 2000.0, a.Positions[0].Cost)

	// Make the averages diverge: sell after only the cheap buy.
	c := Stocks([]models.StockTransaction{buyCheap, sell, buyDear}, 0)
	require.NotEqual(t, a.Positions[0].Cost, c.Positions[0].Cost)
}

func TestStocks_ClosedPositionsExcluded(t *testing.T) {
	txs := []models.StockTransaction{
		{ID: "t1", Ticker: "AAPL", Type: "buy", Shares: 10, PricePerShare: 150, TotalAmount: 1500},
		{ID: "t2", Ticker: "MSFT", Type: "buy", Shares: 5, PricePerShare: 380, TotalAmount: 1900},
		{ID: "t3", Ticker: "AAPL", Type: "sell", Shares: 10, PricePerShare: 200, TotalAmount: 2000},
	}

	got := Stocks(txs, 0)

	require.Len(t, got.Positions, 1)
	require.Equal(t, "MSFT", got.Positions[0].Ticker)
}

func TestStocks_ExternalValuationPreferred(t *testing.T) {
	txs := []models.StockTransaction{
		{ID: "t1", Ticker: "AAPL", Type: "buy", Shares: 10, PricePerShare: 150, Fees: 5, TotalAmount: 1500},
	}

	withNAV := Stocks(txs, 1700)
	require.Equal(t, 1700.0, withNAV.TotalValue)
	require.InDelta(t, 195.0, withNAV.UnrealizedGains, 1e-9)

	fallback := Stocks(txs, 0)
	require.Equal(t, 1500.0, fallback.TotalValue) // 10 shares at last price 150
}

func TestStocks_NetInvestmentFloorsAtZero(t *testing.T) {
	txs := []models.StockTransaction{
		{ID: "t1", Ticker: "AAPL", Type: "buy", Shares: 10, PricePerShare: 100, Fees: 0, TotalAmount: 1000},
		{ID: "t2", Ticker: "AAPL", Type: "sell", Shares: 10, PricePerShare: 300, Fees: 0, TotalAmount: 3000},
	}

	got := Stocks(txs, 0)

	require.Zero(t, got.TotalInvestment)
}

func TestLinkedAssetNAV(t *testing.T) {
	assets := []models.Asset{
		{ID: "a1", Name: "Acciones Española", Category: "Inversión"},
		{ID: "a2", Name: "Cash"},
	}
	history := []models.HistoryEntry{
		{ID: "h1", Month: "2024-01", AssetID: "a1", NAV: 5000},
		{ID: "h2", Month: "2024-02", AssetID: "a1", NAV: 5300},
	}

	require.Equal(t, 5300.0, LinkedAssetNAV(assets, history))
	require.Zero(t, LinkedAssetNAV(assets[1:], history))
	require.Zero(t, LinkedAssetNAV(assets, nil))
}
