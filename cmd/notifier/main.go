package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"wanderbook/internal/notifications"
	"wanderbook/pkg/config"
	"wanderbook/pkg/kafka"
	kafka_config "wanderbook/pkg/kafka/config"
	kafka_middleware "wanderbook/pkg/kafka/middleware"

	"github.com/hibiken/asynq"
)

const ServiceName = "custom-packages-notifier"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.ValidateMailer(); err != nil {
		cfg.Log.Fatal("Invalid mailer configuration", "error", err)
	}

	mailer, err := notifications.NewMailer(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to create mailer", "error", err)
	}
	defer mailer.Close()

	worker := notifications.NewWorker(mailer, cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.NotifierBackend {
	case config.NotifierKafka:
		runKafka(ctx, cfg, worker)
	case config.NotifierAsynq:
		runAsynq(ctx, cfg, worker)
	default:
		cfg.Log.Fatal("Notifier worker needs a queued backend", "backend", cfg.NotifierBackend)
	}

	cfg.Log.Info("Notifier stopped")
}

func runKafka(ctx context.Context, cfg *config.Config, worker *notifications.Worker) {
	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	consumer, err := kafka.NewConsumer(kafkaCfg, cfg.NotificationTopic, cfg.NotificationDLQ, worker.HandleMessage, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create kafka consumer", "error", err)
	}
	metrics := kafka_middleware.NewMetrics()
	consumer.Use(kafka_middleware.LoggingConsumerMiddleware(cfg.Log))
	consumer.Use(metrics.ConsumerMiddleware())

	cfg.Log.Info("Consuming booking notifications", "topic", cfg.NotificationTopic, "group", kafkaCfg.ConsumerGroupID)
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Kafka consumer stopped", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close kafka consumer", "error", err)
	}
	cfg.Log.Info("Kafka consumer metrics", metrics.Snapshot().Fields()...)
}

func runAsynq(ctx context.Context, cfg *config.Config, worker *notifications.Worker) {
	srv := asynq.NewServer(notifications.RedisQueueOpt(cfg), asynq.Config{
		Concurrency: 4,
		Queues:      map[string]int{notifications.QueueNotifications: 1},
		Logger:      cfg.Log.SugaredLogger,
	})

	if err := srv.Start(worker.ServeMux()); err != nil {
		cfg.Log.Fatal("Failed to start asynq server", "error", err)
	}
	cfg.Log.Info("Processing booking confirmation tasks", "queue", notifications.QueueNotifications)

	<-ctx.Done()
	srv.Shutdown()
}
