package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cafe-pos/api-gateway/internal/gateway"
	"cafe-pos/config"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	var cfg config.Gateway
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

	logger.Info("Proxying to POS service", zap.String("pos_svc_url", cfg.PosSvcURL))
	srv := config.NewServer(cfg.Port, newHandler(cfg, &http.Client{Timeout: 10 * time.Second}, logger))
	if err := config.Serve(ctx, srv, "API Gateway", logger); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func newHandler(cfg config.Gateway, client gateway.HTTPClient, logger *zap.Logger) http.Handler {
	gw := gateway.NewGateway(gateway.Config{
		PosSvcURL:   cfg.PosSvcURL,
		FrontendDir: cfg.FrontendDir,
	}, client, logger)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(gw.SetupRoutes())
}
