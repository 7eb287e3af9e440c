package handler

import (
	"errors"
	"log/slog"

	"github.com/marpemad/wealthHub/internal/controller"
	"github.com/marpemad/wealthHub/internal/store"

	"github.com/gin-gonic/gin"
)

var (
	ErrNilEngine = errors.New("engine is required")
	ErrNilLogger = errors.New("logger is required")
	ErrNilStore  = errors.New("store is required")
)

type Handler struct {
	engine *gin.Engine
	logger *slog.Logger
	store  *store.Store
	syncer controller.Syncer
}

func (h *Handler) IsValid() error {
	if h.engine == nil {
		return ErrNilEngine
	}
	if h.logger == nil {
		return ErrNilLogger
	}
	if h.store == nil {
		return ErrNilStore
	}
	return nil
}

type Option func(*Handler)

func WithEngine(engine *gin.Engine) Option {
	return func(h *Handler) {
		h.engine = engine
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = l
	}
}

func WithStore(s *store.Store) Option {
	return func(h *Handler) {
		h.store = s
	}
}

func WithSyncer(s controller.Syncer) Option {
	return func(h *Handler) {
		h.syncer = s
	}
}

func New(opts ...Option) (*Handler, error) {
	h := &Handler{}
	for _, opt := range opts {
		opt(h)
	}
	if err := h.IsValid(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Handler) Setup() error {
	ctrl, err := controller.New(
		controller.WithLogger(h.logger),
		controller.WithStore(h.store),
		controller.WithSyncer(h.syncer),
	)
	if err != nil {
		return err
	}

	api := h.engine.Group("/api")

	assets := api.Group("/assets")
	assets.GET("", ctrl.ListAssets)
	assets.POST("", ctrl.CreateAsset)
	assets.PUT("/:id", ctrl.UpdateAsset)
	assets.DELETE("/:id", ctrl.DeleteAsset)
	assets.POST("/:id/restore", ctrl.RestoreAsset)

	history := api.Group("/history")
	history.GET("", ctrl.ListHistory)
	history.POST("", ctrl.CreateHistoryEntry)
	history.PUT("/:id", ctrl.UpdateHistoryEntry)
	history.DELETE("/:id", ctrl.DeleteHistoryEntry)

	bitcoin := api.Group("/bitcoin")
	bitcoin.GET("/transactions", ctrl.ListBitcoinTransactions)
	bitcoin.POST("/transactions", ctrl.CreateBitcoinTransaction)
	bitcoin.PUT("/transactions/:id", ctrl.UpdateBitcoinTransaction)
	bitcoin.DELETE("/transactions/:id", ctrl.DeleteBitcoinTransaction)
	bitcoin.GET("/portfolio", ctrl.BitcoinPortfolio)

	stocks := api.Group("/stocks")
	stocks.GET("/transactions", ctrl.ListStockTransactions)
	stocks.POST("/transactions", ctrl.CreateStockTransaction)
	stocks.PUT("/transactions/:id", ctrl.UpdateStockTransaction)
	stocks.DELETE("/transactions/:id", ctrl.DeleteStockTransaction)
	stocks.GET("/portfolio", ctrl.StockPortfolio)

	api.GET("/metrics", ctrl.Metrics)

	dashboard := api.Group("/dashboard")
	dashboard.GET("/evolution", ctrl.Evolution)
	dashboard.GET("/roi", ctrl.CumulativeReturn)
	dashboard.GET("/assets", ctrl.AssetMetrics)

	api.GET("/statistics/yearly", ctrl.YearlyStatistics)
	api.GET("/projections", ctrl.Projections)

	backup := api.Group("/backup")
	backup.GET("/export", ctrl.ExportBackup)
	backup.POST("/import", ctrl.ImportBackup)

	syncGroup := api.Group("/sync")
	syncGroup.GET("/status", ctrl.SyncStatus)
	syncGroup.POST("/force", ctrl.ForceSync)

	return nil
}
