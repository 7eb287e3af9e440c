package service

import "github.com/marpemad/wealthHub/internal/models"

func floatPtr(v float64) *float64 {
	return &v
}

// SampleDocument returns the starter dataset used when neither the
// remote endpoint nor the local database has any data.
func SampleDocument() models.Document {
	return models.Document{
		Assets: []models.Asset{
			{
				ID:               "asset-1",
				Name:             "Acciones Española",
				Category:         "Inversión",
				Color:            "#4F46E5",
				BaseAmount:       5500,
				Archived:         false,
				TargetAllocation: floatPtr(30),
				RiskLevel:        "medium",
			},
			{
				ID:               "asset-2",
				Name:             "Criptomonedas",
				Category:         "Criptomonedas",
				Color:            "#F97316",
				BaseAmount:       3300,
				Archived:         false,
				TargetAllocation: floatPtr(20),
				RiskLevel:        "high",
			},
			{
				ID:               "asset-3",
				Name:             "Cash",
				Category:         "Efectivo",
				Color:            "#22C55E",
				BaseAmount:       2000,
				Archived:         false,
				TargetAllocation: floatPtr(50),
				RiskLevel:        "low",
			},
		},
		History: []models.HistoryEntry{
			{ID: "hist-1", Month: "2024-01", AssetID: "asset-1", NAV: 5000, Contribution: 5000},
			{ID: "hist-2", Month: "2024-01", AssetID: "asset-2", NAV: 3000, Contribution: 3000},
			{ID: "hist-3", Month: "2024-01", AssetID: "asset-3", NAV: 2000, Contribution: 2000},
			{ID: "hist-4", Month: "2024-02", AssetID: "asset-1", NAV: 5300, Contribution: 5000},
			{ID: "hist-5", Month: "2024-02", AssetID: "asset-2", NAV: 3200, Contribution: 3000},
			{ID: "hist-6", Month: "2024-02", AssetID: "asset-3", NAV: 2000, Contribution: 2000},
		},
		BitcoinTransactions: []models.BitcoinTransaction{
			{
				ID:        "btc-1",
				Date:      "2024-01-15",
				Type:      models.TransactionBuy,
				Amount:    10000,
				AmountBTC: 0.235294,
				TotalCost: 10000,
				MeanPrice: 42500,
			},
			{
				ID:        "btc-2",
				Date:      "2024-02-10",
				Type:      models.TransactionBuy,
				Amount:    8000,
				AmountBTC: 0.16,
				TotalCost: 8000,
				MeanPrice: 50000,
			},
		},
		StockTransactions: []models.StockTransaction{
			{
				ID:            "stock-1",
				Ticker:        "AAPL",
				Date:          "2024-01-20",
				Type:          models.TransactionBuy,
				Shares:        10,
				PricePerShare: 150,
				Fees:          5,
				TotalAmount:   1505,
			},
			{
				ID:            "stock-2",
				Ticker:        "MSFT",
				Date:          "2024-02-05",
				Type:          models.TransactionBuy,
				Shares:        5,
				PricePerShare: 380,
				Fees:          3,
				TotalAmount:   1903,
			},
			{
				ID:            "stock-3",
				Ticker:        "AAPL",
				Date:          "2024-02-15",
				Type:          models.TransactionBuy,
				Shares:        8,
				PricePerShare: 160,
				Fees:          4,
				TotalAmount:   1284,
			},
		},
	}
}
