package metrics

import "github.com/marpemad/wealthHub/internal/models"

// BitcoinPortfolio is the derived BTC position.
type BitcoinPortfolio struct {
	TotalInvested  float64 `json:"totalInvested"`
	TotalBTC       float64 `json:"totalBTC"`
	MeanPrice      float64 `json:"meanPrice"`
	LastPrice      float64 `json:"lastPrice"`
	CurrentValue   float64 `json:"currentValue"`
	UnrealizedGain float64 `json:"unrealizedGain"`
}

// Bitcoin derives the BTC position from the transaction log in stored
// order. Callers must pass the authoritative insertion-ordered slice,
// never a display-sorted view: the last transaction's mean price
// doubles as the reference price for the whole position.
//
// Sells subtract BTC but their cost still adds to the invested total;
// the cost basis is never netted out on a sell.
func Bitcoin(txs []models.BitcoinTransaction) BitcoinPortfolio {
	var invested, totalBTC float64
	for _, tx := range txs {
		invested += tx.TotalCost
		if tx.Type == models.TransactionSell {
			totalBTC -= tx.AmountBTC
		} else {
			totalBTC += tx.AmountBTC
		}
	}

	var meanPrice float64
	if totalBTC > 0 {
		meanPrice = invested / totalBTC
	}

	var lastPrice float64
	if len(txs) > 0 {
		lastPrice = txs[len(txs)-1].MeanPrice
	}

	currentValue := totalBTC * lastPrice

	return BitcoinPortfolio{
		TotalInvested:  invested,
		TotalBTC:       totalBTC,
		MeanPrice:      meanPrice,
		LastPrice:      lastPrice,
		CurrentValue:   currentValue,
		UnrealizedGain: currentValue - invested,
	}
}
