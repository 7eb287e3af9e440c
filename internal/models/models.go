package models

import "time"

// Transaction direction for bitcoin and stock transactions.
const (
	TransactionBuy  = "buy"
	TransactionSell = "sell"
)

// Asset is one tracked position in the portfolio. Deleting an asset
// from the dashboard archives it; history entries keep referencing its
// ID either way, so a hard delete leaves orphaned entries behind.
type Asset struct {
	ID               string   `json:"id"                         gorm:"primaryKey"`
	Name             string   `json:"name"                       gorm:"index"`
	Category         string   `json:"category"`
	Color            string   `json:"color"`
	BaseAmount       float64  `json:"baseAmount"`
	Archived         bool     `json:"archived"                   gorm:"index"`
	TargetAllocation *float64 `json:"targetAllocation,omitempty"`
	RiskLevel        string   `json:"riskLevel,omitempty"`
	ISIN             string   `json:"isin,omitempty"`
	Ticker           string   `json:"ticker,omitempty"`

	Position int64 `json:"-" gorm:"index"`
}

// HistoryEntry is one monthly valuation snapshot for an asset. NAV is
// the absolute valuation that month, Contribution the net cash moved
// in (or out, when negative). Several entries may share the same
// (asset, month) pair; stored order decides which one wins.
type HistoryEntry struct {
	ID           string  `json:"id"           gorm:"primaryKey"`
	Month        string  `json:"month"        gorm:"index"`
	AssetID      string  `json:"assetId"      gorm:"index"`
	NAV          float64 `json:"nav"`
	Contribution float64 `json:"contribution"`

	// Position preserves insertion order across snapshot reloads.
	Position int64 `json:"-" gorm:"index"`
}

// BitcoinTransaction is a single buy or sell of BTC. Amount is the
// legacy fiat amount kept for display; TotalCost is authoritative.
type BitcoinTransaction struct {
	ID        string  `json:"id"        gorm:"primaryKey"`
	Date      string  `json:"date"      gorm:"index"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	AmountBTC float64 `json:"amountBTC"`
	TotalCost float64 `json:"totalCost"`
	MeanPrice float64 `json:"meanPrice"`

	Position int64 `json:"-" gorm:"index"`
}

// StockTransaction is a single buy or sell of a listed stock.
type StockTransaction struct {
	ID            string  `json:"id"            gorm:"primaryKey"`
	Ticker        string  `json:"ticker"        gorm:"index"`
	Date          string  `json:"date"          gorm:"index"`
	Type          string  `json:"type"`
	Shares        float64 `json:"shares"`
	PricePerShare float64 `json:"pricePerShare"`
	Fees          float64 `json:"fees"`
	TotalAmount   float64 `json:"totalAmount"`

	Position int64 `json:"-" gorm:"index"`
}

// Metrics is the derived portfolio aggregate. It is recomputed from
// the asset and history collections and never persisted.
type Metrics struct {
	TotalNAV    float64 `json:"totalNAV"`
	TotalInv    float64 `json:"totalInv"`
	TotalProfit float64 `json:"totalProfit"`
	ROI         float64 `json:"roi"`
	Liquidity   float64 `json:"liquidez"`
}

// SyncState reports the health of the remote sync loop.
type SyncState struct {
	IsSyncing bool       `json:"isSyncing"`
	LastSync  *time.Time `json:"lastSync"`
	SyncError string     `json:"syncError,omitempty"`
}

// Document is the persisted/transmitted shape used for remote sync
// and for backup export/import.
type Document struct {
	Assets              []Asset              `json:"assets"`
	History             []HistoryEntry       `json:"history"`
	BitcoinTransactions []BitcoinTransaction `json:"bitcoinTransactions"`
	StockTransactions   []StockTransaction   `json:"stockTransactions"`
	LastUpdated         string               `json:"lastUpdated,omitempty"`
	ExportedAt          string               `json:"exportedAt,omitempty"`
}

func (Asset) TableName() string {
	return "assets"
}

func (HistoryEntry) TableName() string {
	return "history_entries"
}

func (BitcoinTransaction) TableName() string {
	return "bitcoin_transactions"
}

func (StockTransaction) TableName() string {
	return "stock_transactions"
}
