package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marpemad/wealthHub/internal/handler"
	"github.com/marpemad/wealthHub/internal/metrics"
	"github.com/marpemad/wealthHub/internal/repo"
	"github.com/marpemad/wealthHub/internal/service"
	"github.com/marpemad/wealthHub/internal/store"
	"github.com/marpemad/wealthHub/pkg/database"
	"github.com/marpemad/wealthHub/pkg/integrations/memcache"
	"github.com/marpemad/wealthHub/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	utils.LoadEnv()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbPath := utils.GetEnv("DB_PATH", "./data/wealthhub.db")
	db, err := database.New(database.WithPath(dbPath))
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	repository, err := repo.New(db.Get())
	if err != nil {
		log.Fatal("Failed to create repository:", err)
	}

	if err := repository.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	changeCh := make(chan []byte, 10)

	syncInterval, err := time.ParseDuration(utils.GetEnv("SYNC_INTERVAL", "5s"))
	if err != nil {
		log.Fatal("Invalid SYNC_INTERVAL:", err)
	}

	dataStore, err := store.New(
		store.WithLogger(logger),
		store.WithRepo(repository),
		store.WithSeriesCache(memcache.New[string, []metrics.SeriesPoint]()),
	)
	if err != nil {
		log.Fatal("Failed to create store:", err)
	}

	syncSvc, err := service.NewSyncService(
		service.WithSyncContext(ctx),
		service.WithSyncLogger(logger),
		service.WithSyncStore(dataStore),
		service.WithSyncRepo(repository),
		service.WithSyncURL(utils.GetEnv("SYNC_URL", "")),
		service.WithSyncChannel(changeCh),
		service.WithSyncInterval(syncInterval),
	)
	if err != nil {
		log.Fatal("Failed to create sync service:", err)
	}

	// The store publishes change events into the sync service's
	// channel, which debounces them into remote pushes.
	dataStore.SetPublisher(syncSvc.Publisher())

	if err := syncSvc.Bootstrap(); err != nil {
		log.Fatal("Failed to bootstrap data:", err)
	}
	if err := syncSvc.Start(); err != nil {
		log.Fatal("Failed to start sync service:", err)
	}

	r := gin.Default()
	r.Static("/static", "./static")

	h, err := handler.New(
		handler.WithEngine(r),
		handler.WithLogger(logger),
		handler.WithStore(dataStore),
		handler.WithSyncer(syncSvc),
	)
	if err != nil {
		log.Fatal("Failed to create handler:", err)
	}
	if err := h.Setup(); err != nil {
		log.Fatal("Failed to setup routes:", err)
	}

	port := utils.GetEnv("APP_PORT", "8080")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Info("shutting down...")
		cancel()
		syncSvc.Stop()
		os.Exit(0)
	}()

	logger.Info("starting WealthHub", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
