package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/i474232898/ims-api/internal/logger"
)

type AppConfig struct {
	Port string `validate:"required,numeric"`

	// IMSBaseURL is the upstream IMS site; override for testing or mirrors.
	IMSBaseURL string `validate:"required,url"`

	// HTTPTimeout bounds a single provider call.
	HTTPTimeout time.Duration `validate:"gt=0"`

	// DefaultLanguage is used when a request has no language query parameter.
	DefaultLanguage string `validate:"required"`

	LogLevel  string `validate:"required,oneof=trace debug info warn warning error fatal panic"`
	LogFormat string `validate:"required,oneof=json text"`

	CORSAllowOrigins string
}

var validate = validator.New()

// Load reads configuration from .env and the environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug(fmt.Sprintf("no .env file loaded: %v", err))
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8000")
	v.SetDefault("ims_base_url", "https://ims.gov.il")
	v.SetDefault("ims_http_timeout", "15s")
	v.SetDefault("default_language", "he")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("cors_allow_origins", "*")
	return v
}

// FromViper builds and validates an AppConfig from v.
func FromViper(v *viper.Viper) (*AppConfig, error) {
	timeout, err := time.ParseDuration(v.GetString("ims_http_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid IMS_HTTP_TIMEOUT: %w", err)
	}

	cfg := &AppConfig{
		Port:             v.GetString("port"),
		IMSBaseURL:       v.GetString("ims_base_url"),
		HTTPTimeout:      timeout,
		DefaultLanguage:  v.GetString("default_language"),
		LogLevel:         strings.ToLower(v.GetString("log_level")),
		LogFormat:        strings.ToLower(v.GetString("log_format")),
		CORSAllowOrigins: v.GetString("cors_allow_origins"),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
