package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cafe-pos/config"
	httpapi "cafe-pos/pos-svc/internal/api/http"
	"cafe-pos/pos-svc/internal/catalog"
	"cafe-pos/pos-svc/internal/domain"
	"cafe-pos/pos-svc/internal/service"
	"cafe-pos/pos-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	var cfg config.POS
	if err := config.Load(&cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore := newSnapshotStore(ctx, cfg, logger)
	defer closeStore()

	var publisher service.TicketPublisher
	if cfg.KafkaEnabled {
		writer := config.NewKafkaWriter(cfg.Kafka, cfg.OrderTopic)
		defer writer.Close()
		publisher = storage.NewKafkaTicketPublisher(writer)
		logger.Info("Publishing order tickets", zap.String("topic", cfg.OrderTopic))
	}

	storefront, err := newStorefront(cfg, store, publisher, logger)
	if err != nil {
		logger.Fatal("Failed to build storefront", zap.Error(err))
	}
	storefront.Restore(ctx)

	handler := httpapi.NewHandler(storefront, logger)
	srv := config.NewServer(cfg.Port, httpapi.NewRouter(handler))
	if err := config.Serve(ctx, srv, "POS Service", logger); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func newSnapshotStore(ctx context.Context, cfg config.POS, logger *zap.Logger) (service.SnapshotStore, func()) {
	switch cfg.SnapshotBackend {
	case "redis":
		rdb := config.MustInitRedis(cfg.Redis, logger)
		return storage.NewRedisSnapshotStore(rdb, cfg.SnapshotKey), func() { rdb.Close() }
	case "postgres":
		db := config.MustInitPostgres(cfg.Postgres, logger)
		store := storage.NewPostgresSnapshotStore(db, cfg.SnapshotKey)
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Fatal("Failed to prepare snapshot table", zap.Error(err))
		}
		return store, func() { db.Close() }
	default:
		logger.Fatal("Unknown snapshot backend", zap.String("backend", cfg.SnapshotBackend))
		return nil, func() {}
	}
}

func newStorefront(cfg config.POS, store service.SnapshotStore, publisher service.TicketPublisher, logger *zap.Logger) (*service.Storefront, error) {
	pricing, err := service.NewPricing(cfg.TaxRate, cfg.DiscountCodes)
	if err != nil {
		return nil, err
	}

	return service.NewStorefront(
		catalog.Default(),
		pricing,
		store,
		publisher,
		service.DefaultQRGenerator{BaseURL: cfg.ReceiptBaseURL},
		logger,
		service.WithCurrency(domain.Currency{Symbol: cfg.CurrencySymbol, Code: cfg.CurrencyCode}),
		service.WithLoadingDelay(cfg.LoadingDelay),
		service.WithSaveTimeout(cfg.SaveTimeout),
		service.WithPublishTimeout(cfg.PublishTimeout),
	), nil
}
