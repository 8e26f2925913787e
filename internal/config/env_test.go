package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("APP_ENCRYPTION_KEY", strings.Repeat("ab", 32))
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/diary")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")
	t.Setenv("ADAPTER_CHAT_API_URL", "https://api.example.com")
	t.Setenv("WORKERS_KEEPALIVE_INTERVAL", "10m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, strings.Repeat("ab", 32), cfg.App.EncryptionKey)
	assert.Equal(t, "postgres://localhost:5432/diary", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.ChatAPIURL)
	assert.Equal(t, 10*time.Minute, cfg.Workers.KeepAliveInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestValidate_AcceptsWellFormedConfig(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{EncryptionKey: strings.Repeat("0f", 32)},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/diary"}},
	}

	require.NoError(t, cfg.validate())
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress, "empty address should default")
}

func TestValidate_RejectsBadEncryptionKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "empty", key: ""},
		{name: "not hex", key: strings.Repeat("zz", 32)},
		{name: "too short", key: "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{
				App:     App{EncryptionKey: tt.key},
				Storage: Storage{DB: DB{DSN: "postgres://localhost/diary"}},
			}
			assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
		})
	}
}

func TestValidate_RejectsEmptyDSN(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{EncryptionKey: strings.Repeat("0f", 32)},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}
