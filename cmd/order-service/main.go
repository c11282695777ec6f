package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"ordering-service/internal/common/logger"
	"ordering-service/internal/config"
	"ordering-service/internal/connections/database"
	"ordering-service/internal/connections/rabbitmq"
	"ordering-service/internal/microservices/order"
)

func main() {
	port := flag.Int("port", 0, "http port (overrides HTTP_PORT)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	if *port != 0 {
		cfg.HTTPPort = *port
	}

	lg, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		lg.Fatal("db connect error", zap.Error(err))
	}
	defer pool.Close()
	lg.Info("postgres connected",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("database", cfg.Database.Database))

	rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		lg.Fatal("rabbitmq connect error", zap.Error(err))
	}
	defer rmq.Close()
	lg.Info("rabbitmq connected",
		zap.String("host", cfg.RabbitMQ.Host),
		zap.Int("port", cfg.RabbitMQ.Port))

	if err := order.Run(ctx, cfg.HTTPPort, pool, rmq, lg); err != nil {
		lg.Error("order service stopped", zap.Error(err))
		os.Exit(1)
	}
}
