package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"crashvault/internal/vault"
)

// Config holds all service configuration.
type Config struct {
	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// CrashVault specifics
	Vault     VaultConfig
	Ingest    IngestConfig
	Retention RetentionConfig
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type VaultConfig struct {
	Root string
}

type IngestConfig struct {
	MaxBodyBytes    int64
	RateLimitPerMin int
}

type RetentionConfig struct {
	Enabled    bool
	Schedule   string
	MaxAgeDays int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/crashvault/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/crashvault/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Server
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Vault location. Unset falls back to CRASHVAULT_HOME and then
	// ~/.crashvault so the server and the CLI tools agree on where
	// events live.
	cfg.Vault.Root = viper.GetString("vault.root")
	if cfg.Vault.Root == "" {
		cfg.Vault.Root = vault.DefaultRoot()
	}

	// Ingestion
	cfg.Ingest.MaxBodyBytes = viper.GetInt64("ingest.max_body_bytes")
	cfg.Ingest.RateLimitPerMin = viper.GetInt("ingest.rate_limit_per_min")

	// Retention
	cfg.Retention.Enabled = viper.GetBool("retention.enabled")
	cfg.Retention.Schedule = viper.GetString("retention.schedule")
	cfg.Retention.MaxAgeDays = viper.GetInt("retention.max_age_days")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("http_server.port", 5678)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("ingest.max_body_bytes", 1<<20)
	viper.SetDefault("ingest.rate_limit_per_min", 0)
	viper.SetDefault("retention.enabled", false)
	viper.SetDefault("retention.schedule", "0 3 * * *")
	viper.SetDefault("retention.max_age_days", 30)
}
