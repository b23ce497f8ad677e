package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "IMS_BASE_URL", "IMS_HTTP_TIMEOUT", "DEFAULT_LANGUAGE", "LOG_LEVEL", "LOG_FORMAT", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "https://ims.gov.il", cfg.IMSBaseURL)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "he", cfg.DefaultLanguage)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IMS_BASE_URL", "http://localhost:8081")
	t.Setenv("IMS_HTTP_TIMEOUT", "3s")
	t.Setenv("DEFAULT_LANGUAGE", "en")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://localhost:8081", cfg.IMSBaseURL)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"bad timeout", "IMS_HTTP_TIMEOUT", "soon"},
		{"zero timeout", "IMS_HTTP_TIMEOUT", "0s"},
		{"bad port", "PORT", "http"},
		{"bad url", "IMS_BASE_URL", "not a url"},
		{"bad log level", "LOG_LEVEL", "loud"},
		{"bad log format", "LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
