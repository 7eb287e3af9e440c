package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

const baseURL = "http://localhost:8080/api"

type Asset struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Color      string  `json:"color"`
	BaseAmount float64 `json:"baseAmount"`
	RiskLevel  string  `json:"riskLevel"`
}

type HistoryEntry struct {
	Month        string  `json:"month"`
	AssetID      string  `json:"assetId"`
	NAV          float64 `json:"nav"`
	Contribution float64 `json:"contribution"`
}

type BitcoinTransaction struct {
	Date      string  `json:"date"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	AmountBTC float64 `json:"amountBTC"`
	TotalCost float64 `json:"totalCost"`
	MeanPrice float64 `json:"meanPrice"`
}

type StockTransaction struct {
	Ticker        string  `json:"ticker"`
	Date          string  `json:"date"`
	Type          string  `json:"type"`
	Shares        float64 `json:"shares"`
	PricePerShare float64 `json:"pricePerShare"`
	Fees          float64 `json:"fees"`
	TotalAmount   float64 `json:"totalAmount"`
}

func main() {
	fund := createAsset(Asset{
		Name: "Fondo Indexado", Category: "Inversión",
		Color: "#4F46E5", BaseAmount: 10000, RiskLevel: "medium",
	})
	crypto := createAsset(Asset{
		Name: "Criptomonedas", Category: "Criptomonedas",
		Color: "#F97316", BaseAmount: 4000, RiskLevel: "high",
	})
	cash := createAsset(Asset{
		Name: "Cash", Category: "Efectivo",
		Color: "#22C55E", BaseAmount: 3000, RiskLevel: "low",
	})
	fmt.Printf("Created assets: fund=%s, crypto=%s, cash=%s\n", fund.ID, crypto.ID, cash.ID)

	fundNAV := 10000.0
	cryptoNAV := 4000.0
	start := time.Date(time.Now().Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 12; i++ {
		month := start.AddDate(0, i, 0).Format("2006-01")

		fundNAV = fundNAV*1.005 + 500
		createHistory(HistoryEntry{
			Month: month, AssetID: fund.ID,
			NAV: round2(fundNAV), Contribution: 500,
		})

		cryptoNAV = cryptoNAV * 1.02
		createHistory(HistoryEntry{
			Month: month, AssetID: crypto.ID,
			NAV: round2(cryptoNAV), Contribution: 0,
		})

		createHistory(HistoryEntry{
			Month: month, AssetID: cash.ID,
			NAV: 3000, Contribution: 3000,
		})
		fmt.Printf("Month %s: fund=%.2f crypto=%.2f\n", month, fundNAV, cryptoNAV)
	}

	createBitcoinTx(BitcoinTransaction{
		Date: start.Format("2006-01-02"), Type: "buy",
		Amount: 2000, AmountBTC: 0.05, TotalCost: 2000, MeanPrice: 40000,
	})
	createBitcoinTx(BitcoinTransaction{
		Date: start.AddDate(0, 6, 0).Format("2006-01-02"), Type: "Compra",
		Amount: 1500, AmountBTC: 0.025, TotalCost: 1500, MeanPrice: 60000,
	})
	fmt.Println("Created bitcoin transactions")

	createStockTx(StockTransaction{
		Ticker: "AAPL", Date: start.Format("2006-01-02"), Type: "buy",
		Shares: 10, PricePerShare: 150, Fees: 5, TotalAmount: 1500,
	})
	createStockTx(StockTransaction{
		Ticker: "AAPL", Date: start.AddDate(0, 3, 0).Format("2006-01-02"), Type: "buy",
		Shares: 15, PricePerShare: 127.2, Fees: 3, TotalAmount: 1908,
	})
	createStockTx(StockTransaction{
		Ticker: "AAPL", Date: start.AddDate(0, 8, 0).Format("2006-01-02"), Type: "Venta",
		Shares: 8, PricePerShare: 170, Fees: 2, TotalAmount: 1360,
	})
	fmt.Println("Created stock transactions")

	fmt.Println("Sample data created successfully!")
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

func createAsset(asset Asset) Asset {
	body, _ := json.Marshal(asset)

	resp, err := http.Post(baseURL+"/assets", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Failed to create asset %s: %v", asset.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("Failed to create asset %s: status %d", asset.Name, resp.StatusCode)
	}

	var created Asset
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		log.Fatalf("Failed to decode asset response: %v", err)
	}
	return created
}

func createHistory(entry HistoryEntry) {
	body, _ := json.Marshal(entry)

	resp, err := http.Post(baseURL+"/history", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Failed to create history entry: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("Failed to create history entry: status %d", resp.StatusCode)
	}
}

func createBitcoinTx(tx BitcoinTransaction) {
	body, _ := json.Marshal(tx)

	resp, err := http.Post(baseURL+"/bitcoin/transactions", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Failed to create bitcoin transaction: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("Failed to create bitcoin transaction: status %d", resp.StatusCode)
	}
}

func createStockTx(tx StockTransaction) {
	body, _ := json.Marshal(tx)

	resp, err := http.Post(baseURL+"/stocks/transactions", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Failed to create stock transaction: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("Failed to create stock transaction: status %d", resp.StatusCode)
	}
}
