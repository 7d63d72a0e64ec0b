package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvEnv       = "ENV"
	EnvPort      = "PORT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	EnvAllowedOrigins = "ALLOWED_ORIGINS"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvRedisCacheDB  = "REDIS_CACHE_DB"
	EnvRedisQueueDB  = "REDIS_QUEUE_DB"

	EnvAvailableItemsCacheTTL = "AVAILABLE_ITEMS_CACHE_TTL"

	EnvDefaultPhoneRegion = "DEFAULT_PHONE_REGION"

	EnvNotifierBackend     = "NOTIFIER_BACKEND"
	EnvNotificationTimeout = "NOTIFICATION_TIMEOUT"
	EnvNotificationTopic   = "NOTIFICATION_TOPIC"
	EnvNotificationDLQ     = "NOTIFICATION_DLQ_TOPIC"

	EnvSMTPHost     = "SMTP_HOST"
	EnvSMTPPort     = "SMTP_PORT"
	EnvSMTPUsername = "SMTP_USERNAME"
	EnvSMTPPassword = "SMTP_PASSWORD"
	EnvSMTPFrom     = "SMTP_FROM"
)
