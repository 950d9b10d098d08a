package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultMaxUploadBytes is the 10 MiB resume size limit.
	DefaultMaxUploadBytes int64 = 10 << 20
	DefaultModel                = "gemini-2.0-flash-exp"
	DefaultAllowedOrigins       = "http://localhost:*,http://127.0.0.1:*"
)

// GeminiConfig holds settings for the generative-language backend.
type GeminiConfig struct {
	APIKey     string `validate:"required"`
	Model      string `validate:"required"`
	TimeoutSec int    `validate:"gt=0"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level string
	File  string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated once from environment variables at startup and never mutated afterwards.
type AppConfig struct {
	ServiceName    string
	Version        string
	Env            string
	Port           string `validate:"required"`
	AllowedOrigins []string
	MaxUploadBytes int64 `validate:"gt=0"`
	MaxBodyBytes   int64 `validate:"gtefield=MaxUploadBytes"`
	Gemini         GeminiConfig
	Log            LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence.
func Load() *AppConfig {
	maxUpload := getEnvInt64("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes)
	return &AppConfig{
		ServiceName:    "Roast My Resume API",
		Version:        "1.0.0",
		Env:            getEnv("APP_ENV", "production"),
		Port:           getEnv("PORT", "8000"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", DefaultAllowedOrigins),
		MaxUploadBytes: maxUpload,
		MaxBodyBytes:   getEnvInt64("MAX_BODY_BYTES", 2*maxUpload),
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			Model:      getEnv("GEMINI_MODEL", DefaultModel),
			TimeoutSec: getEnvInt("GEMINI_TIMEOUT_SEC", 60),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", "roast_my_resume.log"),
		},
	}
}

var validate = validator.New()

// Validate reports the first configuration problem that should stop the process.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config: %s", describe(verrs[0]))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func describe(e validator.FieldError) string {
	switch e.StructNamespace() {
	case "AppConfig.Gemini.APIKey":
		return "GEMINI_API_KEY must be set"
	case "AppConfig.Gemini.Model":
		return "GEMINI_MODEL must not be empty"
	case "AppConfig.Gemini.TimeoutSec":
		return "GEMINI_TIMEOUT_SEC must be positive"
	case "AppConfig.MaxUploadBytes":
		return "MAX_UPLOAD_BYTES must be positive"
	case "AppConfig.MaxBodyBytes":
		return "MAX_BODY_BYTES must not be smaller than MAX_UPLOAD_BYTES"
	default:
		return fmt.Sprintf("%s failed %q", e.StructNamespace(), e.Tag())
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvList splits a comma-separated value, dropping blanks.
func getEnvList(key, def string) []string {
	raw := getEnv(key, def)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
