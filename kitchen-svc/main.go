package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cafe-pos/config"
	"cafe-pos/kitchen-svc/internal/printer"
	"cafe-pos/kitchen-svc/internal/service"

	"go.uber.org/zap"
)

func main() {
	var cfg config.Kitchen
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

	reader := config.NewKafkaReader(cfg.Kafka, cfg.OrderTopic, cfg.GroupID)
	defer reader.Close()

	logger.Info("Listening for order tickets",
		zap.String("broker", cfg.KafkaBroker),
		zap.String("topic", cfg.OrderTopic),
		zap.String("group_id", cfg.GroupID))

	consumer := service.NewConsumer(reader, printer.NewLogPrinter(logger), logger)
	consumer.Start(ctx)
}
