package store

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/marpemad/wealthHub/internal/metrics"
	"github.com/marpemad/wealthHub/internal/models"
	"github.com/marpemad/wealthHub/pkg/types/cache"
	"github.com/marpemad/wealthHub/pkg/types/pubsub"

	"github.com/pkg/errors"
)

var (
	ErrInvalidStoreConfig  = errors.New("invalid store config")
	ErrAssetNotFound       = errors.New("asset not found")
	ErrEntryNotFound       = errors.New("history entry not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

const (
	keyEvolution = "evolution"
	keyROI       = "roi"
)

// DocumentRepository persists whole collections. Writes replace the
// stored collection so the database always mirrors in-memory state.
type DocumentRepository interface {
	ReplaceAssets([]models.Asset) error
	ReplaceHistory([]models.HistoryEntry) error
	ReplaceBitcoinTransactions([]models.BitcoinTransaction) error
	ReplaceStockTransactions([]models.StockTransaction) error
}

// ChangeEvent is published after every mutation.
type ChangeEvent struct {
	Collection string `json:"collection"`
	Revision   uint64 `json:"revision"`
}

// Store holds all portfolio data in memory. Reads return copies,
// mutations write through to the repository and publish a change
// event. Derived series are memoized per revision.
type Store struct {
	mu sync.RWMutex

	assets  []models.Asset
	history []models.HistoryEntry
	bitcoin []models.BitcoinTransaction
	stocks  []models.StockTransaction

	metrics   *models.Metrics
	syncState models.SyncState
	revision  uint64

	logger      *slog.Logger
	repo        DocumentRepository
	publisher   pubsub.Publisher
	seriesCache cache.Cache[string, []metrics.SeriesPoint]
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

func WithRepo(r DocumentRepository) Option {
	return func(s *Store) {
		s.repo = r
	}
}

func WithPublisher(p pubsub.Publisher) Option {
	return func(s *Store) {
		s.publisher = p
	}
}

func WithSeriesCache(c cache.Cache[string, []metrics.SeriesPoint]) Option {
	return func(s *Store) {
		s.seriesCache = c
	}
}

func (s *Store) IsValid() error {
	switch {
	case s.logger == nil:
		return errors.Wrap(ErrInvalidStoreConfig, "logger cannot be nil")
	case s.repo == nil:
		return errors.Wrap(ErrInvalidStoreConfig, "repo cannot be nil")
	case s.seriesCache == nil:
		return errors.Wrap(ErrInvalidStoreConfig, "series cache cannot be nil")
	default:
		return nil
	}
}

func New(opts ...Option) (*Store, error) {
	s := &Store{}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.IsValid(); err != nil {
		return nil, err
	}

	return s, nil
}

// SetPublisher wires the change-event publisher after construction.
// The store and the sync service reference each other, so one side
// has to be attached late.
func (s *Store) SetPublisher(p pubsub.Publisher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publisher = p
}

// Load replaces all in-memory collections without writing through.
// Used when bootstrapping from the database or a remote document.
func (s *Store) Load(doc *models.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assets = append([]models.Asset(nil), doc.Assets...)
	s.history = append([]models.HistoryEntry(nil), doc.History...)
	s.bitcoin = append([]models.BitcoinTransaction(nil), doc.BitcoinTransactions...)
	s.stocks = append([]models.StockTransaction(nil), doc.StockTransactions...)
	s.afterMutation("document")
}

// Snapshot returns a copy of all collections as a document.
func (s *Store) Snapshot() models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.Document{
		Assets:              append([]models.Asset(nil), s.assets...),
		History:             append([]models.HistoryEntry(nil), s.history...),
		BitcoinTransactions: append([]models.BitcoinTransaction(nil), s.bitcoin...),
		StockTransactions:   append([]models.StockTransaction(nil), s.stocks...),
		LastUpdated:         time.Now().UTC().Format(time.RFC3339),
	}
}

func (s *Store) Assets() []models.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Asset(nil), s.assets...)
}

func (s *Store) History() []models.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.HistoryEntry(nil), s.history...)
}

func (s *Store) BitcoinTransactions() []models.BitcoinTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.BitcoinTransaction(nil), s.bitcoin...)
}

func (s *Store) StockTransactions() []models.StockTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.StockTransaction(nil), s.stocks...)
}

// Metrics returns the aggregate metrics for the current revision, or
// nil when no assets are loaded.
func (s *Store) Metrics() *models.Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.metrics == nil {
		return nil
	}
	m := *s.metrics
	return &m
}

func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

func (s *Store) SyncState() models.SyncState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.syncState
}

func (s *Store) SetSyncing(syncing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncState.IsSyncing = syncing
}

func (s *Store) SetSyncResult(at time.Time, syncErr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncState.IsSyncing = false
	s.syncState.SyncError = syncErr
	if syncErr == "" {
		t := at
		s.syncState.LastSync = &t
	}
}

// EvolutionSeries returns the monthly portfolio evolution, memoized
// until the next mutation.
func (s *Store) EvolutionSeries() []metrics.SeriesPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cached, ok := s.seriesCache.Get(keyEvolution); ok {
		return cached
	}
	series := metrics.Evolution(s.history, metrics.NonCash(s.assets))
	s.seriesCache.Set(keyEvolution, series)
	return series
}

// ROISeries returns the cumulative return series, memoized until the
// next mutation.
func (s *Store) ROISeries() []metrics.SeriesPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cached, ok := s.seriesCache.Get(keyROI); ok {
		return cached
	}
	series := metrics.CumulativeReturn(s.history, metrics.NonCash(s.assets))
	s.seriesCache.Set(keyROI, series)
	return series
}

func (s *Store) AddAsset(asset models.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assets = append(s.assets, asset)
	return s.commitAssets()
}

func (s *Store) UpdateAsset(asset models.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.assets {
		if s.assets[i].ID == asset.ID {
			s.assets[i] = asset
			return s.commitAssets()
		}
	}
	return ErrAssetNotFound
}

func (s *Store) ArchiveAsset(id string) error {
	return s.setArchived(id, true)
}

func (s *Store) RestoreAsset(id string) error {
	return s.setArchived(id, false)
}

func (s *Store) setArchived(id string, archived bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.assets {
		if s.assets[i].ID == id {
			s.assets[i].Archived = archived
			return s.commitAssets()
		}
	}
	return ErrAssetNotFound
}

// DeleteAsset removes an asset and all of its history entries.
func (s *Store) DeleteAsset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	kept := s.assets[:0]
	for _, a := range s.assets {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return ErrAssetNotFound
	}
	s.assets = kept

	keptHistory := s.history[:0]
	for _, e := range s.history {
		if e.AssetID != id {
			keptHistory = append(keptHistory, e)
		}
	}
	s.history = keptHistory

	if err := s.repo.ReplaceHistory(s.history); err != nil {
		return errors.Wrap(err, "failed to persist history")
	}
	return s.commitAssets()
}

func (s *Store) AddHistoryEntry(entry models.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, entry)
	return s.commitHistory()
}

func (s *Store) UpdateHistoryEntry(entry models.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.history {
		if s.history[i].ID == entry.ID {
			s.history[i] = entry
			return s.commitHistory()
		}
	}
	return ErrEntryNotFound
}

func (s *Store) DeleteHistoryEntry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.history[:0]
	found := false
	for _, e := range s.history {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrEntryNotFound
	}
	s.history = kept
	return s.commitHistory()
}

func (s *Store) AddBitcoinTransaction(tx models.BitcoinTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bitcoin = append(s.bitcoin, tx)
	return s.commitBitcoin()
}

func (s *Store) UpdateBitcoinTransaction(tx models.BitcoinTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bitcoin {
		if s.bitcoin[i].ID == tx.ID {
			s.bitcoin[i] = tx
			return s.commitBitcoin()
		}
	}
	return ErrTransactionNotFound
}

func (s *Store) DeleteBitcoinTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.bitcoin[:0]
	found := false
	for _, tx := range s.bitcoin {
		if tx.ID == id {
			found = true
			continue
		}
		kept = append(kept, tx)
	}
	if !found {
		return ErrTransactionNotFound
	}
	s.bitcoin = kept
	return s.commitBitcoin()
}

func (s *Store) AddStockTransaction(tx models.StockTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stocks = append(s.stocks, tx)
	return s.commitStocks()
}

func (s *Store) UpdateStockTransaction(tx models.StockTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.stocks {
		if s.stocks[i].ID == tx.ID {
			s.stocks[i] = tx
			return s.commitStocks()
		}
	}
	return ErrTransactionNotFound
}

func (s *Store) DeleteStockTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.stocks[:0]
	found := false
	for _, tx := range s.stocks {
		if tx.ID == id {
			found = true
			continue
		}
		kept = append(kept, tx)
	}
	if !found {
		return ErrTransactionNotFound
	}
	s.stocks = kept
	return s.commitStocks()
}

// ReplaceDocument swaps in all four collections and persists them.
// Used by backup import.
func (s *Store) ReplaceDocument(doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assets = append([]models.Asset(nil), doc.Assets...)
	s.history = append([]models.HistoryEntry(nil), doc.History...)
	s.bitcoin = append([]models.BitcoinTransaction(nil), doc.BitcoinTransactions...)
	s.stocks = append([]models.StockTransaction(nil), doc.StockTransactions...)

	if err := s.repo.ReplaceAssets(s.assets); err != nil {
		return errors.Wrap(err, "failed to persist assets")
	}
	if err := s.repo.ReplaceHistory(s.history); err != nil {
		return errors.Wrap(err, "failed to persist history")
	}
	if err := s.repo.ReplaceBitcoinTransactions(s.bitcoin); err != nil {
		return errors.Wrap(err, "failed to persist bitcoin transactions")
	}
	if err := s.repo.ReplaceStockTransactions(s.stocks); err != nil {
		return errors.Wrap(err, "failed to persist stock transactions")
	}

	s.afterMutation("document")
	return nil
}

func (s *Store) commitAssets() error {
	if err := s.repo.ReplaceAssets(s.assets); err != nil {
		return errors.Wrap(err, "failed to persist assets")
	}
	s.afterMutation("assets")
	return nil
}

func (s *Store) commitHistory() error {
	if err := s.repo.ReplaceHistory(s.history); err != nil {
		return errors.Wrap(err, "failed to persist history")
	}
	s.afterMutation("history")
	return nil
}

func (s *Store) commitBitcoin() error {
	if err := s.repo.ReplaceBitcoinTransactions(s.bitcoin); err != nil {
		return errors.Wrap(err, "failed to persist bitcoin transactions")
	}
	s.afterMutation("bitcoinTransactions")
	return nil
}

func (s *Store) commitStocks() error {
	if err := s.repo.ReplaceStockTransactions(s.stocks); err != nil {
		return errors.Wrap(err, "failed to persist stock transactions")
	}
	s.afterMutation("stockTransactions")
	return nil
}

// afterMutation runs with the write lock held.
func (s *Store) afterMutation(collection string) {
	s.revision++
	s.seriesCache.Clear()
	s.metrics = metrics.Aggregate(s.assets, s.history)

	if s.publisher != nil {
		event := ChangeEvent{Collection: collection, Revision: s.revision}
		if data, err := json.Marshal(event); err == nil {
			if pubErr := s.publisher.Publish(data); pubErr != nil {
				s.logger.Error("failed to publish change event", "error", pubErr)
			}
		}
	}
}
