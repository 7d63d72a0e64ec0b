package kafka_config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Brokers []string

	ProducerMaxAttempts  int
	ProducerBatchTimeout time.Duration
	ProducerRequireAcks  int    // -1 = all, 0 = none, 1 = leader only
	ProducerCompression  string // "none", "gzip", "snappy", "lz4", "zstd"

	ConsumerGroupID           string
	ConsumerStartOffset       int64 // -1 = newest, -2 = oldest
	ConsumerMinBytes          int
	ConsumerMaxBytes          int
	ConsumerMaxWait           time.Duration
	ConsumerCommitInterval    time.Duration
	ConsumerHeartbeatInterval time.Duration
	ConsumerSessionTimeout    time.Duration
	ConsumerMaxRetries        int
	ConsumerRetryBackoff      time.Duration
}

// Load reads the Kafka settings from the environment. It returns an error
// instead of exiting so that binaries for which Kafka is optional can decide.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Brokers: splitBrokers(v.GetString(EnvKafkaBrokers)),

		ProducerMaxAttempts:  v.GetInt(EnvKafkaProducerMaxAttempts),
		ProducerBatchTimeout: v.GetDuration(EnvKafkaProducerBatchTimeout),
		ProducerRequireAcks:  v.GetInt(EnvKafkaProducerRequireAcks),
		ProducerCompression:  strings.ToLower(v.GetString(EnvKafkaProducerCompression)),

		ConsumerGroupID:           v.GetString(EnvKafkaConsumerGroupID),
		ConsumerStartOffset:       v.GetInt64(EnvKafkaConsumerStartOffset),
		ConsumerMinBytes:          v.GetInt(EnvKafkaConsumerMinBytes),
		ConsumerMaxBytes:          v.GetInt(EnvKafkaConsumerMaxBytes),
		ConsumerMaxWait:           v.GetDuration(EnvKafkaConsumerMaxWait),
		ConsumerCommitInterval:    v.GetDuration(EnvKafkaConsumerCommitInterval),
		ConsumerHeartbeatInterval: v.GetDuration(EnvKafkaConsumerHeartbeatInterval),
		ConsumerSessionTimeout:    v.GetDuration(EnvKafkaConsumerSessionTimeout),
		ConsumerMaxRetries:        v.GetInt(EnvKafkaConsumerMaxRetries),
		ConsumerRetryBackoff:      v.GetDuration(EnvKafkaConsumerRetryBackoff),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(EnvKafkaBrokers, DefaultKafkaBrokers)

	v.SetDefault(EnvKafkaProducerMaxAttempts, DefaultProducerMaxAttempts)
	v.SetDefault(EnvKafkaProducerBatchTimeout, DefaultProducerBatchTimeout)
	v.SetDefault(EnvKafkaProducerRequireAcks, DefaultProducerRequireAcks)
	v.SetDefault(EnvKafkaProducerCompression, DefaultProducerCompression)

	v.SetDefault(EnvKafkaConsumerGroupID, DefaultConsumerGroupID)
	v.SetDefault(EnvKafkaConsumerStartOffset, DefaultConsumerStartOffset)
	v.SetDefault(EnvKafkaConsumerMinBytes, DefaultConsumerMinBytes)
	v.SetDefault(EnvKafkaConsumerMaxBytes, DefaultConsumerMaxBytes)
	v.SetDefault(EnvKafkaConsumerMaxWait, DefaultConsumerMaxWait)
	v.SetDefault(EnvKafkaConsumerCommitInterval, DefaultConsumerCommitInterval)
	v.SetDefault(EnvKafkaConsumerHeartbeatInterval, DefaultConsumerHeartbeatInterval)
	v.SetDefault(EnvKafkaConsumerSessionTimeout, DefaultConsumerSessionTimeout)
	v.SetDefault(EnvKafkaConsumerMaxRetries, DefaultConsumerMaxRetries)
	v.SetDefault(EnvKafkaConsumerRetryBackoff, DefaultConsumerRetryBackoff)
}

func splitBrokers(raw string) []string {
	brokers := []string{}
	for _, broker := range strings.Split(raw, ",") {
		if b := strings.TrimSpace(broker); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (cfg *Config) Validate() error {
	var errors []string

	if len(cfg.Brokers) == 0 {
		errors = append(errors, "At least one Kafka broker is required")
	}

	if cfg.ProducerMaxAttempts <= 0 {
		errors = append(errors, fmt.Sprintf("ProducerMaxAttempts must be positive, got: %d", cfg.ProducerMaxAttempts))
	}

	if cfg.ProducerBatchTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ProducerBatchTimeout must be positive, got: %s", cfg.ProducerBatchTimeout))
	}

	validCompressions := map[string]bool{
		"none": true, "gzip": true, "snappy": true, "lz4": true, "zstd": true,
	}
	if !validCompressions[cfg.ProducerCompression] {
		errors = append(errors, fmt.Sprintf("ProducerCompression must be one of [none, gzip, snappy, lz4, zstd], got: %s", cfg.ProducerCompression))
	}

	validAcks := map[int]bool{-1: true, 0: true, 1: true}
	if !validAcks[cfg.ProducerRequireAcks] {
		errors = append(errors, fmt.Sprintf("ProducerRequireAcks must be -1, 0, or 1, got: %d", cfg.ProducerRequireAcks))
	}

	if cfg.ConsumerGroupID == "" {
		errors = append(errors, "ConsumerGroupID cannot be empty")
	}

	if cfg.ConsumerStartOffset != -1 && cfg.ConsumerStartOffset != -2 {
		errors = append(errors, fmt.Sprintf("ConsumerStartOffset must be -1 (newest) or -2 (oldest), got: %d", cfg.ConsumerStartOffset))
	}

	if cfg.ConsumerMinBytes <= 0 || cfg.ConsumerMaxBytes < cfg.ConsumerMinBytes {
		errors = append(errors, fmt.Sprintf("ConsumerMinBytes/ConsumerMaxBytes invalid, got: %d/%d", cfg.ConsumerMinBytes, cfg.ConsumerMaxBytes))
	}

	if cfg.ConsumerMaxWait <= 0 {
		errors = append(errors, fmt.Sprintf("ConsumerMaxWait must be positive, got: %s", cfg.ConsumerMaxWait))
	}

	if cfg.ConsumerCommitInterval < 0 {
		errors = append(errors, fmt.Sprintf("ConsumerCommitInterval cannot be negative, got: %s", cfg.ConsumerCommitInterval))
	}

	if cfg.ConsumerHeartbeatInterval <= 0 || cfg.ConsumerSessionTimeout <= cfg.ConsumerHeartbeatInterval {
		errors = append(errors, fmt.Sprintf("ConsumerSessionTimeout (%s) must exceed ConsumerHeartbeatInterval (%s)", cfg.ConsumerSessionTimeout, cfg.ConsumerHeartbeatInterval))
	}

	if cfg.ConsumerMaxRetries < 0 {
		errors = append(errors, fmt.Sprintf("ConsumerMaxRetries cannot be negative, got: %d", cfg.ConsumerMaxRetries))
	}

	if cfg.ConsumerRetryBackoff < 0 {
		errors = append(errors, fmt.Sprintf("ConsumerRetryBackoff cannot be negative, got: %s", cfg.ConsumerRetryBackoff))
	}

	if len(errors) > 0 {
		errMsg := "Kafka configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration(logFunc func(msg string, keysAndValues ...any)) {
	if logFunc == nil {
		return
	}

	logFunc("Kafka configuration loaded successfully",
		"brokers", cfg.Brokers,
		"producer_max_attempts", cfg.ProducerMaxAttempts,
		"producer_require_acks", cfg.ProducerRequireAcks,
		"producer_compression", cfg.ProducerCompression,
		"consumer_group_id", cfg.ConsumerGroupID,
		"consumer_start_offset", cfg.ConsumerStartOffset,
		"consumer_max_retries", cfg.ConsumerMaxRetries,
		"consumer_retry_backoff", cfg.ConsumerRetryBackoff,
	)
}
