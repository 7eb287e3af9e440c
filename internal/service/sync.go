package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/marpemad/wealthHub/internal/models"
	"github.com/marpemad/wealthHub/internal/normalize"
	chanPubsub "github.com/marpemad/wealthHub/pkg/integrations/pubsub"
	tickerScheduler "github.com/marpemad/wealthHub/pkg/integrations/scheduler"
	"github.com/marpemad/wealthHub/pkg/types/pubsub"
	"github.com/marpemad/wealthHub/pkg/types/scheduler"

	"github.com/pkg/errors"
)

var (
	ErrInvalidSyncConfig = errors.New("invalid sync service config")
	ErrNoRemoteData      = errors.New("no remote data")
)

// DataStore is the sync-facing slice of the store.
type DataStore interface {
	Load(doc *models.Document)
	ReplaceDocument(doc *models.Document) error
	Snapshot() models.Document
	SetSyncing(syncing bool)
	SetSyncResult(at time.Time, syncErr string)
	SyncState() models.SyncState
}

// DocumentLoader reads the locally persisted document.
type DocumentLoader interface {
	LoadDocument() (models.Document, error)
}

// SyncService mirrors the store to a remote document endpoint. Change
// events mark the state dirty and the scheduler flushes at most one
// push per debounce interval.
type SyncService struct {
	ctx       context.Context
	logger    *slog.Logger
	store     DataStore
	repo      DocumentLoader
	url       string
	client    *http.Client
	ch        chan []byte
	interval  time.Duration
	pubsub    *chanPubsub.PubSub
	scheduler scheduler.Scheduler
	dirty     atomic.Bool
}

type SyncOption func(*SyncService)

func WithSyncContext(ctx context.Context) SyncOption {
	return func(s *SyncService) {
		s.ctx = ctx
	}
}

func WithSyncLogger(l *slog.Logger) SyncOption {
	return func(s *SyncService) {
		s.logger = l
	}
}

func WithSyncStore(st DataStore) SyncOption {
	return func(s *SyncService) {
		s.store = st
	}
}

func WithSyncRepo(r DocumentLoader) SyncOption {
	return func(s *SyncService) {
		s.repo = r
	}
}

func WithSyncURL(url string) SyncOption {
	return func(s *SyncService) {
		s.url = url
	}
}

func WithSyncClient(c *http.Client) SyncOption {
	return func(s *SyncService) {
		s.client = c
	}
}

func WithSyncChannel(ch chan []byte) SyncOption {
	return func(s *SyncService) {
		s.ch = ch
	}
}

func WithSyncInterval(d time.Duration) SyncOption {
	return func(s *SyncService) {
		s.interval = d
	}
}

func (s *SyncService) IsValid() error {
	switch {
	case s.ctx == nil:
		return errors.Wrap(ErrInvalidSyncConfig, "ctx cannot be nil")
	case s.logger == nil:
		return errors.Wrap(ErrInvalidSyncConfig, "logger cannot be nil")
	case s.store == nil:
		return errors.Wrap(ErrInvalidSyncConfig, "store cannot be nil")
	case s.repo == nil:
		return errors.Wrap(ErrInvalidSyncConfig, "repo cannot be nil")
	case s.ch == nil:
		return errors.Wrap(ErrInvalidSyncConfig, "channel cannot be nil")
	default:
		return nil
	}
}

func NewSyncService(opts ...SyncOption) (*SyncService, error) {
	s := &SyncService{
		client:   &http.Client{Timeout: 15 * time.Second},
		interval: scheduler.IntervalSyncDebounce,
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.IsValid(); err != nil {
		return nil, err
	}

	s.pubsub = chanPubsub.New(
		chanPubsub.WithContext(s.ctx),
		chanPubsub.WithLogger(s.logger),
		chanPubsub.WithTopic("store-changed"),
		chanPubsub.WithChannel(s.ch),
		chanPubsub.WithHandler(s.handleChange),
	)

	sched, err := tickerScheduler.New(
		tickerScheduler.WithContext(s.ctx),
		tickerScheduler.WithLogger(s.logger),
		tickerScheduler.WithInterval(s.interval),
		tickerScheduler.WithHandler(s.tick),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scheduler")
	}
	s.scheduler = sched

	return s, nil
}

// Publisher exposes the change-event publisher for store wiring.
func (s *SyncService) Publisher() pubsub.Publisher {
	return s.pubsub
}

func (s *SyncService) Start() error {
	if err := s.pubsub.Subscribe(); err != nil {
		return errors.Wrap(err, "failed to subscribe to store changes")
	}
	return s.scheduler.Start()
}

func (s *SyncService) Stop() {
	s.scheduler.Stop()
}

// Bootstrap fills the store using the first source that has data:
// the remote document, the local database, then the sample dataset.
func (s *SyncService) Bootstrap() error {
	s.store.SetSyncing(true)

	doc, err := s.fetchRemote()
	if err == nil {
		if err := s.store.ReplaceDocument(doc); err != nil {
			return errors.Wrap(err, "failed to persist remote document")
		}
		s.dirty.Store(false)
		s.store.SetSyncResult(time.Now(), "")
		s.logger.Info("loaded data from remote",
			"assets", len(doc.Assets), "history", len(doc.History))
		return nil
	}
	s.logger.Warn("remote load failed, trying local database", "error", err)

	local, err := s.repo.LoadDocument()
	if err == nil && len(local.Assets) > 0 {
		s.store.Load(&local)
		s.dirty.Store(false)
		s.store.SetSyncResult(time.Now(), "")
		s.logger.Info("loaded data from local database", "assets", len(local.Assets))
		return nil
	}
	if err != nil {
		s.logger.Warn("local load failed, using sample data", "error", err)
	}

	sample := SampleDocument()
	if err := s.store.ReplaceDocument(&sample); err != nil {
		return errors.Wrap(err, "failed to persist sample document")
	}
	s.dirty.Store(false)
	s.store.SetSyncResult(time.Now(), "using sample data")
	s.logger.Info("loaded sample data", "assets", len(sample.Assets))
	return nil
}

// ForceSync pushes the current document immediately.
func (s *SyncService) ForceSync() error {
	s.dirty.Store(false)
	return s.push()
}

func (s *SyncService) handleChange(data []byte) error {
	s.dirty.Store(true)
	s.logger.Debug("store changed", "event", string(data))
	return nil
}

func (s *SyncService) tick() error {
	if !s.dirty.Swap(false) {
		return nil
	}
	if err := s.push(); err != nil {
		s.logger.Error("sync push failed", "error", err)
	}
	return nil
}

func (s *SyncService) fetchRemote() (*models.Document, error) {
	if s.url == "" {
		return nil, errors.New("sync url not configured")
	}

	req, err := http.NewRequestWithContext(s.ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "remote fetch failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("remote returned status %d", resp.StatusCode)
	}

	var envelope normalize.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.Wrap(err, "failed to decode remote response")
	}
	if !envelope.HasData() {
		return nil, ErrNoRemoteData
	}

	doc := normalize.Document(*envelope.Data, time.Now())
	return &doc, nil
}

// push sends the whole document. An empty asset list is never pushed
// so a fresh instance cannot wipe the remote copy.
func (s *SyncService) push() error {
	if s.url == "" {
		return nil
	}

	doc := s.store.Snapshot()
	if len(doc.Assets) == 0 {
		return nil
	}

	s.store.SetSyncing(true)

	payload, err := json.Marshal(doc)
	if err != nil {
		s.store.SetSyncResult(time.Now(), err.Error())
		return errors.Wrap(err, "failed to marshal document")
	}

	req, err := http.NewRequestWithContext(s.ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		s.store.SetSyncResult(time.Now(), err.Error())
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.store.SetSyncResult(time.Now(), err.Error())
		return errors.Wrap(err, "sync push failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		msg := errors.Errorf("remote returned status %d", resp.StatusCode)
		s.store.SetSyncResult(time.Now(), msg.Error())
		return msg
	}

	s.store.SetSyncResult(time.Now(), "")
	s.logger.Info("synced document to remote",
		"assets", len(doc.Assets), "history", len(doc.History))
	return nil
}
