package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration, assembled from defaults,
// an optional yaml file and SPECTRA_* environment variables.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Payment  PaymentConfig  `mapstructure:"payment"`
	Session  SessionConfig  `mapstructure:"session"`
	Log      LogConfig      `mapstructure:"log"`
}

// AppConfig identifies the application instance.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"` // development, staging, production
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port            string          `mapstructure:"port"`
	BaseURL         string          `mapstructure:"base_url"`
	TemplatesGlob   string          `mapstructure:"templates_glob"`
	ReadTimeout     time.Duration   `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration   `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout"`
	RateLimit       RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig configures request rate limiting.
type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Rate    float64 `mapstructure:"rate"`  // requests per second
	Burst   int     `mapstructure:"burst"` // burst capacity
}

// DatabaseConfig locates the on-disk SQLite store.
type DatabaseConfig struct {
	Path     string `mapstructure:"path"`
	LogLevel string `mapstructure:"log_level"`
}

// PaymentConfig carries the Stripe Checkout credentials. Payment is
// considered configured only when both the secret key and the price
// reference are present; otherwise submissions publish immediately.
type PaymentConfig struct {
	SecretKey  string        `mapstructure:"secret_key"`
	PriceID    string        `mapstructure:"price_id"`
	SuccessURL string        `mapstructure:"success_url"`
	CancelURL  string        `mapstructure:"cancel_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// Enabled reports whether the payment gateway is fully configured.
func (p *PaymentConfig) Enabled() bool {
	return p.SecretKey != "" && p.PriceID != ""
}

// SessionConfig signs the cookie session used for flash notices.
type SessionConfig struct {
	Secret string `mapstructure:"secret"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level    string `mapstructure:"level"`  // debug, info, warn, error
	Format   string `mapstructure:"format"` // json, console
	Output   string `mapstructure:"output"` // stdout, file
	FilePath string `mapstructure:"file_path"`
}

// IsDevelopment reports whether this is a development environment.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction reports whether this is a production environment.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Load reads the configuration from defaults, the optional config file
// and the environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("SPECTRA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine, defaults plus env cover everything.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "spectra-directory")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.env", "development")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.templates_glob", "templates/*.html")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.rate_limit.enabled", false)
	v.SetDefault("server.rate_limit.rate", 50.0)
	v.SetDefault("server.rate_limit.burst", 100)

	v.SetDefault("database.path", "spectra_directory.db")
	v.SetDefault("database.log_level", "warn")

	v.SetDefault("payment.secret_key", "")
	v.SetDefault("payment.price_id", "")
	v.SetDefault("payment.success_url", "http://localhost:8080/checkout/success")
	v.SetDefault("payment.cancel_url", "http://localhost:8080/checkout/cancel")
	v.SetDefault("payment.timeout", 10*time.Second)

	v.SetDefault("session.secret", "dev-secret-change-me")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.file_path", "logs/app.log")
}
