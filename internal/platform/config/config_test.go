package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_MemoryDefaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{"STORAGE_DRIVER": "memory"}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, 15*time.Minute, cfg.QuoteTTL)
	assert.Equal(t, 10*time.Second, cfg.RailTimeout)
	assert.Equal(t, 30*time.Second, cfg.BreakerOpenTimeout)
	assert.Equal(t, uint32(5), cfg.BreakerConsecutiveFailures)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, time.UTC, cfg.BusinessHoursTZ)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestFromViper_ParsesLists(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{
		"STORAGE_DRIVER": "memory",
		"KAFKA_BROKERS":  "kafka-1:9092, kafka-2:9092,",
		"LOG_LEVEL":      "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestFromViper_Errors(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		wantErr   string
	}{
		{"postgres without url", map[string]any{}, "PGSQL_URL is required"},
		{"unknown driver", map[string]any{"STORAGE_DRIVER": "mongo"}, "unsupported STORAGE_DRIVER"},
		{"bad ttl", map[string]any{"STORAGE_DRIVER": "memory", "QUOTE_TTL": "soon"}, "invalid QUOTE_TTL"},
		{"zero ttl", map[string]any{"STORAGE_DRIVER": "memory", "QUOTE_TTL": "0s"}, "QUOTE_TTL must be positive"},
		{"bad zone", map[string]any{"STORAGE_DRIVER": "memory", "BUSINESS_HOURS_TZ": "Mars/Olympus"}, "invalid BUSINESS_HOURS_TZ"},
		{"auth without secret", map[string]any{"STORAGE_DRIVER": "memory", "AUTH_ENABLED": true}, "JWT_SECRET is required"},
		{"bad log level", map[string]any{"STORAGE_DRIVER": "memory", "LOG_LEVEL": "loud"}, "invalid LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromViper(newTestViper(tt.overrides))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
