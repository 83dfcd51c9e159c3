package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"

	PublisherNone  = "none"
	PublisherRedis = "redis"
	PublisherKafka = "kafka"
)

const defaultDirective = "You are Agent Krimini, a high-intelligence campus safety coordinator for the University of Houston. Be tactical, concise, and prioritize human life."

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Storage Config
	StorageBackend string        `env:"STORAGE_BACKEND" envDefault:"memory"`
	StoreLatency   time.Duration `env:"STORE_LATENCY" envDefault:"100ms"`
	DatabaseURL    string        `env:"DATABASE_URL"`

	// Redis Config
	RedisAddr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass      string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	RedisKeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"krimini_"`

	// Oracle Config
	GeminiAPIKey       string        `env:"GEMINI_API_KEY"`
	SummaryModel       string        `env:"SUMMARY_MODEL" envDefault:"gemini-3-pro-preview"`
	DraftModel         string        `env:"DRAFT_MODEL" envDefault:"gemini-3-flash-preview"`
	ChatModel          string        `env:"CHAT_MODEL" envDefault:"gemini-2.5-flash"`
	ClassifyModel      string        `env:"CLASSIFY_MODEL" envDefault:"gemini-3-flash-preview"`
	OracleRetries      int           `env:"ORACLE_RETRIES" envDefault:"3"`
	OracleInitialDelay time.Duration `env:"ORACLE_INITIAL_DELAY" envDefault:"1s"`

	// Dashboard Config
	FilterHours    int    `env:"FILTER_HOURS" envDefault:"24"`
	AgentDirective string `env:"AGENT_DIRECTIVE"`

	// SOS broadcast Config
	SOSPublisher string   `env:"SOS_PUBLISHER" envDefault:"none"`
	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"sos_transmissions"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "json"),
		StorageBackend:     strings.ToLower(getEnv("STORAGE_BACKEND", BackendMemory)),
		StoreLatency:       getEnvAsDuration("STORE_LATENCY", 100*time.Millisecond),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		RedisKeyPrefix:     getEnv("REDIS_KEY_PREFIX", "krimini_"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		SummaryModel:       getEnv("SUMMARY_MODEL", "gemini-3-pro-preview"),
		DraftModel:         getEnv("DRAFT_MODEL", "gemini-3-flash-preview"),
		ChatModel:          getEnv("CHAT_MODEL", "gemini-2.5-flash"),
		ClassifyModel:      getEnv("CLASSIFY_MODEL", "gemini-3-flash-preview"),
		OracleRetries:      getEnvAsInt("ORACLE_RETRIES", 3),
		OracleInitialDelay: getEnvAsDuration("ORACLE_INITIAL_DELAY", time.Second),
		FilterHours:        getEnvAsInt("FILTER_HOURS", 24),
		AgentDirective:     getEnv("AGENT_DIRECTIVE", defaultDirective),
		SOSPublisher:       strings.ToLower(getEnv("SOS_PUBLISHER", PublisherNone)),
		KafkaBrokers:       getEnvAsList("KAFKA_BROKERS"),
		KafkaTopic:         getEnv("KAFKA_TOPIC", "sos_transmissions"),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:  getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:   getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory, BackendRedis:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	switch c.SOSPublisher {
	case PublisherNone, PublisherRedis:
	case PublisherKafka:
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("KAFKA_BROKERS environment variable is required for the kafka publisher")
		}
	default:
		return fmt.Errorf("unknown SOS_PUBLISHER %q", c.SOSPublisher)
	}

	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if c.OracleRetries < 0 {
		return fmt.Errorf("ORACLE_RETRIES must not be negative")
	}
	if c.FilterHours <= 0 {
		return fmt.Errorf("FILTER_HOURS must be positive")
	}
	return nil
}

// NeedsRedis сообщает, требуется ли подключение к Redis
func (c *Config) NeedsRedis() bool {
	return c.StorageBackend == BackendRedis || c.SOSPublisher == PublisherRedis
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, отбрасывая пустые элементы
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
