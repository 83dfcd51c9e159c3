package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Equal(t, 3, cfg.OracleRetries)
	assert.Equal(t, time.Second, cfg.OracleInitialDelay)
	assert.Equal(t, 24, cfg.FilterHours)
	assert.Equal(t, "krimini_", cfg.RedisKeyPrefix)
	assert.Equal(t, PublisherNone, cfg.SOSPublisher)
	assert.NotEmpty(t, cfg.AgentDirective)
	assert.False(t, cfg.NeedsRedis())
}

func TestLoadConfig_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.ErrorContains(t, err, "GEMINI_API_KEY")
}

func TestLoadConfig_PostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadConfig_KafkaBrokersList(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("SOS_PUBLISHER", "kafka")
	t.Setenv("KAFKA_BROKERS", " broker-1:9092, ,broker-2:9092 ")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
}

func TestValidate_UnknownBackend(t *testing.T) {
	cfg := &Config{StorageBackend: "sqlite", SOSPublisher: PublisherNone, GeminiAPIKey: "k", FilterHours: 24}

	err := cfg.Validate()

	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown STORAGE_BACKEND")
}

func TestNeedsRedis(t *testing.T) {
	assert.True(t, (&Config{StorageBackend: BackendRedis, SOSPublisher: PublisherNone}).NeedsRedis())
	assert.True(t, (&Config{StorageBackend: BackendMemory, SOSPublisher: PublisherRedis}).NeedsRedis())
	assert.False(t, (&Config{StorageBackend: BackendPostgres, SOSPublisher: PublisherKafka}).NeedsRedis())
}
