package notifications

import (
	"fmt"

	"wanderbook/pkg/config"
	"wanderbook/pkg/kafka"
	kafka_config "wanderbook/pkg/kafka/config"
	kafka_middleware "wanderbook/pkg/kafka/middleware"

	"github.com/hibiken/asynq"
)

// New builds the notifier selected by NOTIFIER_BACKEND.
func New(cfg *config.Config) (Notifier, error) {
	switch cfg.NotifierBackend {
	case config.NotifierLog:
		return NewLogNotifier(cfg.Log), nil

	case config.NotifierSMTP:
		return NewMailer(cfg)

	case config.NotifierKafka:
		kafkaCfg, err := kafka_config.Load()
		if err != nil {
			return nil, err
		}
		kafkaCfg.LogConfiguration(cfg.Log.Info)

		producer, err := kafka.NewProducer(kafkaCfg, cfg.NotificationTopic, cfg.NotificationDLQ, cfg.Log)
		if err != nil {
			return nil, fmt.Errorf("failed to create kafka producer: %w", err)
		}
		metrics := kafka_middleware.NewMetrics()
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
		producer.Use(metrics.ProducerMiddleware())
		return NewKafkaNotifier(producer, metrics, cfg.Log), nil

	case config.NotifierAsynq:
		client := asynq.NewClient(RedisQueueOpt(cfg))
		return NewAsynqNotifier(client, cfg.Log), nil
	}

	return nil, fmt.Errorf("unknown notifier backend %q", cfg.NotifierBackend)
}

func RedisQueueOpt(cfg *config.Config) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisQueueDB,
	}
}
