package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("MAX_UPLOAD_BYTES", "2048")
	t.Setenv("MAX_BODY_BYTES", "")
	t.Setenv("ALLOWED_ORIGINS", "https://roast.example.com, http://localhost:*,")
	t.Setenv("GEMINI_MODEL", "")

	cfg := Load()

	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, DefaultModel, cfg.Gemini.Model)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
	assert.Equal(t, int64(4096), cfg.MaxBodyBytes)
	assert.Equal(t, []string{"https://roast.example.com", "http://localhost:*"}, cfg.AllowedOrigins)
	assert.Equal(t, "Roast My Resume API", cfg.ServiceName)
	assert.NoError(t, cfg.Validate())
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"MAX_UPLOAD_BYTES", "MAX_BODY_BYTES", "ALLOWED_ORIGINS", "PORT", "GEMINI_TIMEOUT_SEC"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, DefaultMaxUploadBytes, cfg.MaxUploadBytes)
	assert.Equal(t, 2*DefaultMaxUploadBytes, cfg.MaxBodyBytes)
	assert.Equal(t, []string{"http://localhost:*", "http://127.0.0.1:*"}, cfg.AllowedOrigins)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 60, cfg.Gemini.TimeoutSec)
}

func TestValidate(t *testing.T) {
	valid := func() *AppConfig {
		return &AppConfig{
			Port:           "8000",
			MaxUploadBytes: DefaultMaxUploadBytes,
			MaxBodyBytes:   DefaultMaxUploadBytes,
			Gemini:         GeminiConfig{APIKey: "k", Model: DefaultModel, TimeoutSec: 30},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *AppConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(c *AppConfig) {}},
		{name: "missing api key", mutate: func(c *AppConfig) { c.Gemini.APIKey = "" }, wantErr: "GEMINI_API_KEY must be set"},
		{name: "zero timeout", mutate: func(c *AppConfig) { c.Gemini.TimeoutSec = 0 }, wantErr: "GEMINI_TIMEOUT_SEC must be positive"},
		{name: "negative upload limit", mutate: func(c *AppConfig) { c.MaxUploadBytes = -1 }, wantErr: "MAX_UPLOAD_BYTES must be positive"},
		{name: "body limit below upload limit", mutate: func(c *AppConfig) { c.MaxBodyBytes = 10 }, wantErr: "MAX_BODY_BYTES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))
	assert.Equal(t, int64(123), getEnvInt64(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))
	assert.Equal(t, int64(10), getEnvInt64(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("TEST_LIST_VAR", " a ,, b,")
	assert.Equal(t, []string{"a", "b"}, getEnvList("TEST_LIST_VAR", "x"))

	t.Setenv("TEST_LIST_VAR", "")
	assert.Equal(t, []string{"x", "y"}, getEnvList("TEST_LIST_VAR", "x,y"))
}
