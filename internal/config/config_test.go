package config_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-orchestrator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFrom("")
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.True(t, cfg.Orchestration.IsTest)
		assert.Equal(t, "https://api.basistheory.com/proxy", cfg.BasisTheory.ProxyURL)
		assert.Equal(t, 30*time.Second, cfg.Transport.Timeout)
		assert.Nil(t, cfg.Database)
	})

	t.Run("reads yaml file then environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gateway.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
orchestration:
  is_test: true
  tokenization_api_key: key_test_file
providers:
  adyen:
    api_key: adyen_file_key
    merchant_account: AcmeECOM
  checkout:
    private_key: sk_sbox_file
    processing_channel: pc_file
transport:
  timeout: 5s
`), 0o600))

		t.Setenv("GATEWAY_PROVIDERS__ADYEN__API_KEY", "adyen_env_key")
		t.Setenv("GATEWAY_ORCHESTRATION__IS_TEST", "false")
		t.Setenv("GATEWAY_PROVIDERS__ADYEN__PRODUCTION_PREFIX", "1797a841fbb37ca7-AdyenDemo")

		cfg, err := config.LoadConfigFrom(path)
		require.NoError(t, err)

		assert.False(t, cfg.Orchestration.IsTest)
		assert.Equal(t, "key_test_file", cfg.Orchestration.TokenizationAPIKey)
		require.NotNil(t, cfg.Providers.Adyen)
		assert.Equal(t, "adyen_env_key", cfg.Providers.Adyen.APIKey)
		assert.Equal(t, "AcmeECOM", cfg.Providers.Adyen.MerchantAccount)
		assert.Equal(t, "1797a841fbb37ca7-AdyenDemo", cfg.Providers.Adyen.ProductionPrefix)
		require.NotNil(t, cfg.Providers.Checkout)
		assert.Equal(t, "pc_file", cfg.Providers.Checkout.ProcessingChannel)
		assert.Equal(t, 5*time.Second, cfg.Transport.Timeout)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := config.LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("rejects invalid logger level", func(t *testing.T) {
		t.Setenv("GATEWAY_LOGGER__LEVEL", "verbose")

		_, err := config.LoadConfigFrom("")
		assert.Error(t, err)
	})

	t.Run("database section requires connection details", func(t *testing.T) {
		t.Setenv("GATEWAY_DATABASE__HOST", "localhost")

		_, err := config.LoadConfigFrom("")
		assert.Error(t, err)
	})

	t.Run("database dsn alone is enough", func(t *testing.T) {
		t.Setenv("GATEWAY_DATABASE__DSN", "postgres://gateway:secret@db:5432/gateway?sslmode=disable")
		t.Setenv("GATEWAY_DATABASE__AUTO_MIGRATE", "true")

		cfg, err := config.LoadConfigFrom("")
		require.NoError(t, err)
		require.NotNil(t, cfg.Database)
		assert.Equal(t, "postgres://gateway:secret@db:5432/gateway?sslmode=disable", cfg.Database.ConnString())
		assert.True(t, cfg.Database.AutoMigrate)
	})
}

func TestDatabaseConfig_PgxConfig(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:         "localhost",
		Port:         5432,
		User:         "gateway",
		Password:     "p@ss word",
		Name:         "journal",
		MaxOpenConns: 10,
		MaxIdleConns: 2,
	}

	pgxCfg, err := cfg.PgxConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "localhost", pgxCfg.ConnConfig.Host)
	assert.Equal(t, uint16(5432), pgxCfg.ConnConfig.Port)
	assert.Equal(t, "p@ss word", pgxCfg.ConnConfig.Password)
	assert.Equal(t, "journal", pgxCfg.ConnConfig.Database)
	assert.Equal(t, int32(10), pgxCfg.MaxConns)
	assert.Equal(t, int32(2), pgxCfg.MinConns)
}

func TestLoggerConfig(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := config.LoggerConfig{Level: "debug", Format: "json"}.NewLoggerTo(&buf)

		logger.Debug("stage", "stage", "VALIDATING")
		assert.Contains(t, buf.String(), `"stage":"VALIDATING"`)
	})

	t.Run("level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		logger := config.LoggerConfig{Level: "warn"}.NewLoggerTo(&buf)

		logger.Info("hidden")
		assert.Empty(t, buf.String())
		assert.Equal(t, slog.LevelWarn, config.LoggerConfig{Level: "WARN"}.SlogLevel())
	})
}
