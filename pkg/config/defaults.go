package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "wanderbook"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultEnv       = "development"
	DefaultPort      = "8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultAllowedOrigins = "http://localhost:3000"

	DefaultRateLimitRequests = 120
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultRedisCacheDB = 0
	DefaultRedisQueueDB = 1

	DefaultAvailableItemsCacheTTL = 30 * time.Second

	DefaultPhoneRegion = ""

	DefaultNotifierBackend     = NotifierLog
	DefaultNotificationTimeout = 15 * time.Second
	DefaultNotificationTopic   = "custom-package-bookings"
	DefaultNotificationDLQ     = "dlq-custom-package-bookings"

	DefaultSMTPPort = 587
)

const (
	Production = "production"

	NotifierLog   = "log"
	NotifierSMTP  = "smtp"
	NotifierKafka = "kafka"
	NotifierAsynq = "asynq"
)
