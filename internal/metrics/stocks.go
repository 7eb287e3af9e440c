package metrics

import (
	"math"
	"sort"
	"strings"

	"github.com/marpemad/wealthHub/internal/models"
)

// StockPosition is the running accumulator for one ticker.
type StockPosition struct {
	Ticker    string  `json:"ticker"`
	Shares    float64 `json:"shares"`
	Cost      float64 `json:"cost"`
	AvgPrice  float64 `json:"avgPrice"`
	LastPrice float64 `json:"lastPrice"`
}

// StockPortfolio is the derived stock position set.
type StockPortfolio struct {
	Positions       []StockPosition `json:"positions"`
	TotalValue      float64         `json:"totalValue"`
	TotalInvestment float64         `json:"totalInvestment"`
	UnrealizedGains float64         `json:"unrealizedGains"`
}

// Stocks accumulates per-ticker positions transaction by transaction
// in stored order. A sell removes shares at the average price as it
// stood before that sell, which makes the whole computation
// order-dependent: reordering the log changes every later average.
//
// currentValue is an externally supplied portfolio valuation (zero
// means none); when absent the fallback values open positions at each
// ticker's last seen transaction price.
func Stocks(txs []models.StockTransaction, currentValue float64) StockPortfolio {
	type accumulator struct {
		shares    float64
		cost      float64
		avgPrice  float64
		lastPrice float64
	}

	accs := make(map[string]*accumulator)
	order := make([]string, 0)

	for _, tx := range txs {
		acc, ok := accs[tx.Ticker]
		if !ok {
			acc = &accumulator{}
			accs[tx.Ticker] = acc
			order = append(order, tx.Ticker)
		}
		acc.lastPrice = tx.PricePerShare

		if tx.Type == models.TransactionSell {
			acc.cost -= tx.Shares*acc.avgPrice + tx.Fees
			acc.shares -= tx.Shares
		} else {
			acc.shares += tx.Shares
			acc.cost += tx.TotalAmount + tx.Fees
		}

		if acc.shares > 0 {
			acc.avgPrice = acc.cost / acc.shares
		} else {
			acc.avgPrice = 0
		}
	}

	positions := make([]StockPosition, 0, len(order))
	var fallbackValue float64
	for _, ticker := range order {
		acc := accs[ticker]
		if acc.shares <= 0 {
			continue
		}
		fallbackValue += acc.shares * acc.lastPrice
		positions = append(positions, StockPosition{
			Ticker:    ticker,
			Shares:    acc.shares,
			Cost:      acc.cost,
			AvgPrice:  acc.avgPrice,
			LastPrice: acc.lastPrice,
		})
	}

	totalValue := currentValue
	if totalValue <= 0 {
		totalValue = fallbackValue
	}

	var buyCost, sellProceeds float64
	for _, tx := range txs {
		if tx.Type == models.TransactionSell {
			sellProceeds += tx.TotalAmount - tx.Fees
		} else {
			buyCost += tx.TotalAmount + tx.Fees
		}
	}
	totalInvestment := math.Max(0, buyCost-sellProceeds)

	return StockPortfolio{
		Positions:       positions,
		TotalValue:      totalValue,
		TotalInvestment: totalInvestment,
		UnrealizedGains: totalValue - totalInvestment,
	}
}

// LinkedAssetNAV finds the portfolio asset that mirrors the stock
// holdings, by category or by name, and returns its newest NAV. Zero
// when no such asset or no history exists, which tells Stocks to fall
// back to transaction-derived pricing.
func LinkedAssetNAV(assets []models.Asset, history []models.HistoryEntry) float64 {
	var linked *models.Asset
	for i, a := range assets {
		if a.Category == "Stocks" || strings.Contains(strings.ToLower(a.Name), "acciones") {
			linked = &assets[i]
			break
		}
	}
	if linked == nil {
		return 0
	}

	entries := historyFor(linked.ID, history)
	if len(entries) == 0 {
		return 0
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Month > entries[j].Month
	})
	return entries[0].NAV
}
