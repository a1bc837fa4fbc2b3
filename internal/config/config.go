package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	CORS      CORSConfig
	Upload    UploadConfig
	Generator GeneratorConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds resume upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// ProviderConfig holds settings for a single text generation provider.
type ProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// GeneratorConfig holds LLM text generator settings with primary/secondary
// provider support. The secondary provider is optional and only used when the
// primary is rate limited or failing.
type GeneratorConfig struct {
	Primary   ProviderConfig `mapstructure:"primary"`
	Secondary ProviderConfig `mapstructure:"secondary"`
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (g *GeneratorConfig) SecondaryConfig() *ProviderConfig {
	if g.Secondary.Provider != "" {
		return &g.Secondary
	}
	return nil
}

// Load reads configuration from environment variables with the TAILOR_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TAILOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "180s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)

	// Generator defaults
	v.SetDefault("generator.primary.provider", "gemini")
	v.SetDefault("generator.primary.api_key", "")
	v.SetDefault("generator.primary.default_model", "gemini-1.5-flash")
	v.SetDefault("generator.primary.timeout_secs", 120)
	v.SetDefault("generator.secondary.provider", "")
	v.SetDefault("generator.secondary.api_key", "")
	v.SetDefault("generator.secondary.default_model", "")
	v.SetDefault("generator.secondary.timeout_secs", 120)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                       "TAILOR_SERVER_PORT",
		"server.read_timeout":               "TAILOR_SERVER_READ_TIMEOUT",
		"server.write_timeout":              "TAILOR_SERVER_WRITE_TIMEOUT",
		"server.environment":                "TAILOR_SERVER_ENVIRONMENT",
		"log.level":                         "TAILOR_LOG_LEVEL",
		"log.format":                        "TAILOR_LOG_FORMAT",
		"cors.allowed_origins":              "TAILOR_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb":           "TAILOR_UPLOAD_MAX_FILE_SIZE_MB",
		"generator.primary.provider":        "TAILOR_GENERATOR_PRIMARY_PROVIDER",
		"generator.primary.api_key":         "TAILOR_GENERATOR_PRIMARY_API_KEY",
		"generator.primary.default_model":   "TAILOR_GENERATOR_PRIMARY_DEFAULT_MODEL",
		"generator.primary.timeout_secs":    "TAILOR_GENERATOR_PRIMARY_TIMEOUT_SECS",
		"generator.secondary.provider":      "TAILOR_GENERATOR_SECONDARY_PROVIDER",
		"generator.secondary.api_key":       "TAILOR_GENERATOR_SECONDARY_API_KEY",
		"generator.secondary.default_model": "TAILOR_GENERATOR_SECONDARY_DEFAULT_MODEL",
		"generator.secondary.timeout_secs":  "TAILOR_GENERATOR_SECONDARY_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TAILOR_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TAILOR_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}

	cfg.Generator = GeneratorConfig{
		Primary: ProviderConfig{
			Provider:     v.GetString("generator.primary.provider"),
			APIKey:       v.GetString("generator.primary.api_key"),
			DefaultModel: v.GetString("generator.primary.default_model"),
			TimeoutSecs:  v.GetInt("generator.primary.timeout_secs"),
		},
		Secondary: ProviderConfig{
			Provider:     v.GetString("generator.secondary.provider"),
			APIKey:       v.GetString("generator.secondary.api_key"),
			DefaultModel: v.GetString("generator.secondary.default_model"),
			TimeoutSecs:  v.GetInt("generator.secondary.timeout_secs"),
		},
	}

	return cfg, nil
}
