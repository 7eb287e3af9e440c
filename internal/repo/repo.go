// Package repo is the local snapshot layer: the in-memory store
// writes whole collections through to SQLite so the dashboard can
// come back up without the remote endpoint. Collections are replaced
// wholesale, never patched row by row; the Position column keeps the
// stored order stable across reloads, since several calculations
// depend on insertion order.
package repo

import (
	"errors"

	"github.com/marpemad/wealthHub/internal/models"

	"gorm.io/gorm"
)

var ErrNilDatabase = errors.New("database cannot be nil")

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) (*Repository, error) {
	if db == nil {
		return nil, ErrNilDatabase
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(
		&models.Asset{},
		&models.HistoryEntry{},
		&models.BitcoinTransaction{},
		&models.StockTransaction{},
	)
}

func replaceAll[T any](db *gorm.DB, model any, rows []T, position func(*T, int64)) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		for i := range rows {
			position(&rows[i], int64(i))
		}
		return tx.Create(&rows).Error
	})
}

func (r *Repository) ReplaceAssets(assets []models.Asset) error {
	return replaceAll(r.db, &models.Asset{}, assets, func(a *models.Asset, pos int64) {
		a.Position = pos
	})
}

func (r *Repository) GetAllAssets() ([]models.Asset, error) {
	assets := make([]models.Asset, 0)
	if err := r.db.Order("position ASC").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *Repository) ReplaceHistory(entries []models.HistoryEntry) error {
	return replaceAll(r.db, &models.HistoryEntry{}, entries, func(h *models.HistoryEntry, pos int64) {
		h.Position = pos
	})
}

func (r *Repository) GetAllHistory() ([]models.HistoryEntry, error) {
	entries := make([]models.HistoryEntry, 0)
	if err := r.db.Order("position ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *Repository) ReplaceBitcoinTransactions(txs []models.BitcoinTransaction) error {
	return replaceAll(r.db, &models.BitcoinTransaction{}, txs, func(t *models.BitcoinTransaction, pos int64) {
		t.Position = pos
	})
}

func (r *Repository) GetAllBitcoinTransactions() ([]models.BitcoinTransaction, error) {
	txs := make([]models.BitcoinTransaction, 0)
	if err := r.db.Order("position ASC").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *Repository) ReplaceStockTransactions(txs []models.StockTransaction) error {
	return replaceAll(r.db, &models.StockTransaction{}, txs, func(t *models.StockTransaction, pos int64) {
		t.Position = pos
	})
}

func (r *Repository) GetAllStockTransactions() ([]models.StockTransaction, error) {
	txs := make([]models.StockTransaction, 0)
	if err := r.db.Order("position ASC").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// LoadDocument reads the whole snapshot back in one document.
func (r *Repository) LoadDocument() (models.Document, error) {
	var doc models.Document
	var err error

	if doc.Assets, err = r.GetAllAssets(); err != nil {
		return doc, err
	}
	if doc.History, err = r.GetAllHistory(); err != nil {
		return doc, err
	}
	if doc.BitcoinTransactions, err = r.GetAllBitcoinTransactions(); err != nil {
		return doc, err
	}
	if doc.StockTransactions, err = r.GetAllStockTransactions(); err != nil {
		return doc, err
	}
	return doc, nil
}

// SaveDocument replaces all four collections with the document's.
func (r *Repository) SaveDocument(doc models.Document) error {
	if err := r.ReplaceAssets(doc.Assets); err != nil {
		return err
	}
	if err := r.ReplaceHistory(doc.History); err != nil {
		return err
	}
	if err := r.ReplaceBitcoinTransactions(doc.BitcoinTransactions); err != nil {
		return err
	}
	return r.ReplaceStockTransactions(doc.StockTransactions)
}

func (r *Repository) CountAssets() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Asset{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
