// Package normalize sanitizes record payloads arriving from outside
// the process: the remote sync endpoint, backup imports, or an old
// local snapshot. Numbers may come as JSON numbers or numeric
// strings, transaction types as localized verbs; anything unparsable
// degrades to zero rather than failing the whole document.
package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/marpemad/wealthHub/internal/models"

	"github.com/google/uuid"
)

// RawBitcoinTransaction is the tolerant wire shape of a bitcoin
// transaction.
type RawBitcoinTransaction struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Type      string          `json:"type"`
	Amount    json.RawMessage `json:"amount"`
	AmountBTC json.RawMessage `json:"amountBTC"`
	TotalCost json.RawMessage `json:"totalCost"`
	MeanPrice json.RawMessage `json:"meanPrice"`
}

// RawStockTransaction is the tolerant wire shape of a stock
// transaction.
type RawStockTransaction struct {
	ID            string          `json:"id"`
	Ticker        string          `json:"ticker"`
	Date          string          `json:"date"`
	Type          string          `json:"type"`
	Shares        json.RawMessage `json:"shares"`
	PricePerShare json.RawMessage `json:"pricePerShare"`
	Fees          json.RawMessage `json:"fees"`
	TotalAmount   json.RawMessage `json:"totalAmount"`
}

// RawDocument mirrors models.Document with tolerant transaction
// collections. Assets and history already bind strictly.
type RawDocument struct {
	Assets              []models.Asset          `json:"assets"`
	History             []models.HistoryEntry   `json:"history"`
	BitcoinTransactions []RawBitcoinTransaction `json:"bitcoinTransactions"`
	StockTransactions   []RawStockTransaction   `json:"stockTransactions"`
}

// Envelope is the remote fetch response. A missing success flag or an
// absent data.assets means "no remote data".
type Envelope struct {
	Success bool         `json:"success"`
	Data    *RawDocument `json:"data"`
}

// HasData reports whether the envelope carries a usable document.
func (e Envelope) HasData() bool {
	return e.Success && e.Data != nil && e.Data.Assets != nil
}

// Float coerces a raw JSON value to a float64: numbers pass through,
// numeric strings are parsed, everything else is zero.
func Float(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return n
		}
	}
	return 0
}

// TransactionType maps localized verbs onto the buy/sell enum.
// Unknown values default to buy, matching the dashboard's behavior.
func TransactionType(s string) string {
	switch s {
	case "Venta", models.TransactionSell:
		return models.TransactionSell
	default:
		return models.TransactionBuy
	}
}

// BitcoinTransaction sanitizes one transaction. Amount and totalCost
// back each other up, missing IDs get a fresh UUID and missing dates
// default to today.
func BitcoinTransaction(raw RawBitcoinTransaction, now time.Time) models.BitcoinTransaction {
	amount := Float(raw.Amount)
	totalCost := Float(raw.TotalCost)
	if amount == 0 {
		amount = totalCost
	}
	if totalCost == 0 {
		totalCost = Float(raw.Amount)
	}

	id := raw.ID
	if id == "" {
		id = uuid.NewString()
	}
	date := raw.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	return models.BitcoinTransaction{
		ID:        id,
		Date:      date,
		Type:      TransactionType(raw.Type),
		Amount:    amount,
		AmountBTC: Float(raw.AmountBTC),
		TotalCost: totalCost,
		MeanPrice: Float(raw.MeanPrice),
	}
}

// StockTransaction sanitizes one stock transaction.
func StockTransaction(raw RawStockTransaction, now time.Time) models.StockTransaction {
	id := raw.ID
	if id == "" {
		id = uuid.NewString()
	}
	date := raw.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	return models.StockTransaction{
		ID:            id,
		Ticker:        raw.Ticker,
		Date:          date,
		Type:          TransactionType(raw.Type),
		Shares:        Float(raw.Shares),
		PricePerShare: Float(raw.PricePerShare),
		Fees:          Float(raw.Fees),
		TotalAmount:   Float(raw.TotalAmount),
	}
}

// Document sanitizes a whole raw document into the strict model
// shape. Nil collections come back as empty slices so callers never
// store nils.
func Document(raw RawDocument, now time.Time) models.Document {
	doc := models.Document{
		Assets:              raw.Assets,
		History:             raw.History,
		BitcoinTransactions: make([]models.BitcoinTransaction, 0, len(raw.BitcoinTransactions)),
		StockTransactions:   make([]models.StockTransaction, 0, len(raw.StockTransactions)),
	}
	if doc.Assets == nil {
		doc.Assets = []models.Asset{}
	}
	if doc.History == nil {
		doc.History = []models.HistoryEntry{}
	}

	for _, tx := range raw.BitcoinTransactions {
		doc.BitcoinTransactions = append(doc.BitcoinTransactions, BitcoinTransaction(tx, now))
	}
	for _, tx := range raw.StockTransactions {
		doc.StockTransactions = append(doc.StockTransactions, StockTransaction(tx, now))
	}
	return doc
}
