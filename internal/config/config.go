package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/inplat-tech/checkout-go/pkg/dispatch"
	"github.com/inplat-tech/checkout-go/pkg/receipts"
)

// Config holds the checkoutctl configuration loaded from the environment.
type Config struct {
	Signature       string `mapstructure:"checkout_signature"`
	TerminalID      string `mapstructure:"checkout_terminal_id"`
	BearerToken     string `mapstructure:"checkout_bearer_token"`
	Fingerprint     string `mapstructure:"checkout_fingerprint"`
	APIKey          string `mapstructure:"checkout_api_key"`
	ContentLanguage string `mapstructure:"checkout_content_language"`
	BaseURL         string `mapstructure:"checkout_base_url"`

	ReceiptFingerprint string `mapstructure:"receipt_fingerprint"`
	ReceiptBaseURL     string `mapstructure:"receipt_base_url"`

	LogLevel       string        `mapstructure:"log_level"`
	ExecutionMode  string        `mapstructure:"execution_mode"`
	TimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and an optional .env
// file.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("checkout_base_url", dispatch.DefaultBaseURL)
	v.SetDefault("checkout_content_language", dispatch.DefaultContentLanguage)
	v.SetDefault("receipt_base_url", receipts.DefaultBaseURL)
	v.SetDefault("log_level", "info")
	v.SetDefault("execution_mode", "blocking")
	v.SetDefault("request_timeout_seconds", 15)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid request_timeout_seconds (must be positive seconds)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	switch cfg.ExecutionMode {
	case "blocking", "suspending":
	default:
		return nil, fmt.Errorf("invalid execution_mode %q (must be blocking or suspending)", cfg.ExecutionMode)
	}

	return &cfg, nil
}

// Mode maps the configured execution mode onto the dispatch enumeration.
func (c *Config) Mode() dispatch.Mode {
	if c.ExecutionMode == "suspending" {
		return dispatch.ModeSuspending
	}
	return dispatch.ModeBlocking
}
