package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

const envPrefix = "GATEWAY_"

type Config struct {
	Primary       Primary             `koanf:"primary"`
	Server        ServerConfig        `koanf:"server"`
	Logger        LoggerConfig        `koanf:"logger"`
	Orchestration OrchestrationConfig `koanf:"orchestration"`
	BasisTheory   BasisTheoryConfig   `koanf:"basis_theory"`
	Providers     ProvidersConfig     `koanf:"providers"`
	Transport     TransportConfig     `koanf:"transport"`
	Database      *DatabaseConfig     `koanf:"database"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

// OrchestrationConfig is the initialization object handed to the
// orchestrator. IsTest selects every provider's sandbox endpoint.
type OrchestrationConfig struct {
	IsTest             bool   `koanf:"is_test"`
	TokenizationAPIKey string `koanf:"tokenization_api_key"`
}

type BasisTheoryConfig struct {
	BaseURL  string        `koanf:"base_url" validate:"required,url"`
	ProxyURL string        `koanf:"proxy_url" validate:"required,url"`
	Timeout  time.Duration `koanf:"timeout" validate:"required"`
}

type ProvidersConfig struct {
	Adyen    *AdyenConfig    `koanf:"adyen"`
	Checkout *CheckoutConfig `koanf:"checkout"`
}

// AdyenConfig holds Adyen credentials. Credential problems are reported per
// transaction rather than at load time.
type AdyenConfig struct {
	APIKey           string `koanf:"api_key"`
	MerchantAccount  string `koanf:"merchant_account"`
	ProductionPrefix string `koanf:"production_prefix"`
	BaseURL          string `koanf:"base_url" validate:"omitempty,url"`
}

type CheckoutConfig struct {
	PrivateKey        string `koanf:"private_key"`
	ProcessingChannel string `koanf:"processing_channel"`
	BaseURL           string `koanf:"base_url" validate:"omitempty,url"`
}

type TransportConfig struct {
	Timeout time.Duration `koanf:"timeout" validate:"required"`
}

var defaults = map[string]interface{}{
	"primary.env":            "development",
	"server.port":            "8080",
	"server.read_timeout":    "15s",
	"server.write_timeout":   "35s",
	"server.idle_timeout":    "60s",
	"logger.level":           "info",
	"logger.format":          "text",
	"orchestration.is_test":  true,
	"basis_theory.base_url":  "https://api.basistheory.com",
	"basis_theory.proxy_url": "https://api.basistheory.com/proxy",
	"basis_theory.timeout":   "10s",
	"transport.timeout":      "30s",
}

// LoadConfig loads defaults, then the YAML file named by
// GATEWAY_CONFIG_FILE if set, then GATEWAY_ environment variables.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(os.Getenv(envPrefix + "CONFIG_FILE"))
}

func LoadConfigFrom(path string) (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load config defaults", "error", err)
		return nil, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
