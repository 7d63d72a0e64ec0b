package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"wanderbook/pkg/client"
	"wanderbook/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	Env  string
	Port string

	AllowedOrigins []string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisCacheDB  int
	RedisQueueDB  int

	AvailableItemsCacheTTL time.Duration

	DefaultPhoneRegion string

	NotifierBackend     string
	NotificationTimeout time.Duration
	NotificationTopic   string
	NotificationDLQ     string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	Log    *logger.Logger
	Client *client.Client
}

func Load(serviceName string) *Config {
	// .env is a local convenience; real deployments set the environment.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		MongoURI:          v.GetString(EnvMongoURI),
		MongoDatabaseName: v.GetString(EnvMongoDatabaseName),
		MongoConnTimeout:  v.GetDuration(EnvMongoConnTimeout),

		Env:  v.GetString(EnvEnv),
		Port: v.GetString(EnvPort),

		AllowedOrigins: splitList(v.GetString(EnvAllowedOrigins)),

		RateLimitRequests: v.GetInt(EnvRateLimitRequests),
		RateLimitWindow:   v.GetDuration(EnvRateLimitWindow),

		RequestTimeout: v.GetDuration(EnvRequestTimeout),
		IdempotencyTTL: v.GetDuration(EnvIdempotencyTTL),
		MaxRequestSize: v.GetInt(EnvMaxRequestSize),

		ReadTimeout:     v.GetDuration(EnvReadTimeout),
		WriteTimeout:    v.GetDuration(EnvWriteTimeout),
		IdleTimeout:     v.GetDuration(EnvIdleTimeout),
		ShutdownTimeout: v.GetDuration(EnvShutdownTimeout),

		RedisAddr:     v.GetString(EnvRedisAddr),
		RedisPassword: v.GetString(EnvRedisPassword),
		RedisCacheDB:  v.GetInt(EnvRedisCacheDB),
		RedisQueueDB:  v.GetInt(EnvRedisQueueDB),

		AvailableItemsCacheTTL: v.GetDuration(EnvAvailableItemsCacheTTL),

		DefaultPhoneRegion: strings.ToUpper(v.GetString(EnvDefaultPhoneRegion)),

		NotifierBackend:     strings.ToLower(v.GetString(EnvNotifierBackend)),
		NotificationTimeout: v.GetDuration(EnvNotificationTimeout),
		NotificationTopic:   v.GetString(EnvNotificationTopic),
		NotificationDLQ:     v.GetString(EnvNotificationDLQ),

		SMTPHost:     v.GetString(EnvSMTPHost),
		SMTPPort:     v.GetInt(EnvSMTPPort),
		SMTPUsername: v.GetString(EnvSMTPUsername),
		SMTPPassword: v.GetString(EnvSMTPPassword),
		SMTPFrom:     v.GetString(EnvSMTPFrom),

		Client: client.NewClient(),
	}

	logFormat := v.GetString(EnvLogFormat)
	if cfg.IsProduction() {
		logFormat = logger.JSON
	}
	cfg.Log = logger.New(logger.Config{
		Level:     v.GetString(EnvLogLevel),
		Format:    logFormat,
		AddSource: true,
		Service:   serviceName,
	})

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(EnvMongoURI, DefaultMongoURI)
	v.SetDefault(EnvMongoDatabaseName, DefaultMongoDatabaseName)
	v.SetDefault(EnvMongoConnTimeout, DefaultMongoConnTimeout)

	v.SetDefault(EnvEnv, DefaultEnv)
	v.SetDefault(EnvPort, DefaultPort)
	v.SetDefault(EnvLogLevel, DefaultLogLevel)
	v.SetDefault(EnvLogFormat, DefaultLogFormat)

	v.SetDefault(EnvAllowedOrigins, DefaultAllowedOrigins)

	v.SetDefault(EnvRateLimitRequests, DefaultRateLimitRequests)
	v.SetDefault(EnvRateLimitWindow, DefaultRateLimitWindow)

	v.SetDefault(EnvRequestTimeout, DefaultRequestTimeout)
	v.SetDefault(EnvIdempotencyTTL, DefaultIdempotencyTTL)
	v.SetDefault(EnvMaxRequestSize, DefaultMaxRequestSize)

	v.SetDefault(EnvReadTimeout, DefaultReadTimeout)
	v.SetDefault(EnvWriteTimeout, DefaultWriteTimeout)
	v.SetDefault(EnvIdleTimeout, DefaultIdleTimeout)
	v.SetDefault(EnvShutdownTimeout, DefaultShutdownTimeout)

	v.SetDefault(EnvRedisAddr, "")
	v.SetDefault(EnvRedisPassword, "")
	v.SetDefault(EnvRedisCacheDB, DefaultRedisCacheDB)
	v.SetDefault(EnvRedisQueueDB, DefaultRedisQueueDB)

	v.SetDefault(EnvAvailableItemsCacheTTL, DefaultAvailableItemsCacheTTL)

	v.SetDefault(EnvDefaultPhoneRegion, DefaultPhoneRegion)

	v.SetDefault(EnvNotifierBackend, DefaultNotifierBackend)
	v.SetDefault(EnvNotificationTimeout, DefaultNotificationTimeout)
	v.SetDefault(EnvNotificationTopic, DefaultNotificationTopic)
	v.SetDefault(EnvNotificationDLQ, DefaultNotificationDLQ)

	v.SetDefault(EnvSMTPHost, "")
	v.SetDefault(EnvSMTPPort, DefaultSMTPPort)
	v.SetDefault(EnvSMTPUsername, "")
	v.SetDefault(EnvSMTPPassword, "")
	v.SetDefault(EnvSMTPFrom, "")
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

// SetRedis connects the cache client. It is a no-op when REDIS_ADDR is unset.
func (cfg *Config) SetRedis() {
	if cfg.RedisAddr == "" {
		cfg.Log.Info("Redis address not configured, cache disabled")
		return
	}
	cfg.Client.SetRedis(cfg.Log, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
}

func (cfg *Config) IsProduction() bool {
	return cfg.Env == Production
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI == "" {
		errors = append(errors, "MongoURI cannot be empty")
	} else if len(cfg.MongoURI) < 10 || !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
		errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI)))
	}

	if cfg.MongoDatabaseName == "" {
		errors = append(errors, "MongoDatabaseName cannot be empty")
	}

	if cfg.MongoConnTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
	}
	if cfg.RateLimitWindow <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.IdempotencyTTL <= 0 {
		errors = append(errors, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}
	if cfg.NotificationTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("NotificationTimeout must be positive, got: %s", cfg.NotificationTimeout))
	}
	if cfg.AvailableItemsCacheTTL < 0 {
		errors = append(errors, fmt.Sprintf("AvailableItemsCacheTTL cannot be negative, got: %s", cfg.AvailableItemsCacheTTL))
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if region := cfg.DefaultPhoneRegion; region != "" && len(region) != 2 {
		errors = append(errors, fmt.Sprintf("DefaultPhoneRegion must be empty or a two-letter region code, got: %s", region))
	}

	switch cfg.NotifierBackend {
	case NotifierLog, NotifierKafka:
	case NotifierSMTP:
		errors = append(errors, cfg.validateSMTP()...)
	case NotifierAsynq:
		if cfg.RedisAddr == "" {
			errors = append(errors, "RedisAddr is required when NotifierBackend is asynq")
		}
	default:
		errors = append(errors, fmt.Sprintf("NotifierBackend must be one of [log, smtp, kafka, asynq], got: %s", cfg.NotifierBackend))
	}

	if (cfg.NotifierBackend == NotifierKafka) && cfg.NotificationTopic == "" {
		errors = append(errors, "NotificationTopic cannot be empty when NotifierBackend is kafka")
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

// ValidateMailer is used by the notifier worker, which always needs SMTP
// regardless of the API's dispatch backend.
func (cfg *Config) ValidateMailer() error {
	if errs := cfg.validateSMTP(); len(errs) > 0 {
		return fmt.Errorf("mailer configuration invalid: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (cfg *Config) validateSMTP() []string {
	var errors []string
	if cfg.SMTPHost == "" {
		errors = append(errors, "SMTPHost is required for email delivery")
	}
	if cfg.SMTPPort < 1 || cfg.SMTPPort > 65535 {
		errors = append(errors, fmt.Sprintf("SMTPPort must be between 1 and 65535, got: %d", cfg.SMTPPort))
	}
	if cfg.SMTPFrom == "" {
		errors = append(errors, "SMTPFrom is required for email delivery")
	}
	return errors
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"env", cfg.Env,
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"port", cfg.Port,
		"allowed_origins", cfg.AllowedOrigins,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"redis_addr", cfg.RedisAddr,
		"redis_password_set", cfg.RedisPassword != "",
		"available_items_cache_ttl", cfg.AvailableItemsCacheTTL,
		"default_phone_region", cfg.DefaultPhoneRegion,
		"notifier_backend", cfg.NotifierBackend,
		"notification_timeout", cfg.NotificationTimeout,
		"notification_topic", cfg.NotificationTopic,
		"smtp_host", cfg.SMTPHost,
		"smtp_port", cfg.SMTPPort,
		"smtp_password_set", cfg.SMTPPassword != "",
	)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log)
}
