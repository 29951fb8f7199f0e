// Package config provides application configuration management with
// multi-source priority.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (runtime override)
//  2. Config file (~/.agrimitra/config.yaml)
//  3. Default values (sensible defaults for quick start)
//
// Secrets (API keys) are read from the environment only and never written
// to the config file. Validation is fail-fast with sentinel errors for
// Go-idiomatic checking with errors.Is().
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var (
	// ErrInvalidAddr indicates the listen address is malformed.
	ErrInvalidAddr = errors.New("invalid listen address")

	// ErrInvalidModelName indicates the model name is invalid.
	ErrInvalidModelName = errors.New("invalid model name")

	// ErrInvalidRateBurst indicates the rate limiter burst is out of range.
	ErrInvalidRateBurst = errors.New("invalid rate burst")

	// ErrInvalidBaseURL indicates a provider base URL is malformed.
	ErrInvalidBaseURL = errors.New("invalid base URL")
)

// Defaults for provider endpoints. Overridable for tests and self-hosted
// mirrors via config file or environment.
const (
	DefaultGeoBaseURL     = "http://ip-api.com/json/"
	DefaultWeatherBaseURL = "https://api.weatherapi.com/v1"
	DefaultModelName      = "gemini-2.5-flash"
	DefaultAddr           = "127.0.0.1:3001"
)

// Config stores application configuration.
type Config struct {
	// HTTP server
	Addr        string   `mapstructure:"addr" json:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins" json:"cors_origins"`
	TrustProxy  bool     `mapstructure:"trust_proxy" json:"trust_proxy"`
	RateBurst   int      `mapstructure:"rate_burst" json:"rate_burst"`

	// LLM provider. GeminiAPIKey empty means the advisor runs in
	// fallback-only mode.
	ModelName    string `mapstructure:"model_name" json:"model_name"`
	GeminiAPIKey string `mapstructure:"gemini_api_key" json:"-"`

	// External providers
	GeoBaseURL     string `mapstructure:"geo_base_url" json:"geo_base_url"`
	WeatherBaseURL string `mapstructure:"weather_base_url" json:"weather_base_url"`
	WeatherAPIKey  string `mapstructure:"weather_api_key" json:"-"`

	// Chat client
	APIBaseURL string `mapstructure:"api_base_url" json:"api_base_url"`
	Language   string `mapstructure:"language" json:"language"`
}

// Load loads configuration.
// Priority: environment variables > configuration file > default values.
func Load() (*Config, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}
	configDir := filepath.Join(home, ".agrimitra")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	setDefaults(v)
	bindEnvVariables(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is not an error; defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("configuration file not found, using defaults",
			"search_paths", []string{configDir, "."})
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("cors_origins", []string{"http://localhost:5173"})
	v.SetDefault("trust_proxy", false)
	v.SetDefault("rate_burst", 0) // 0 = server default

	v.SetDefault("model_name", DefaultModelName)

	v.SetDefault("geo_base_url", DefaultGeoBaseURL)
	v.SetDefault("weather_base_url", DefaultWeatherBaseURL)

	v.SetDefault("api_base_url", "http://localhost:3001/api")
	v.SetDefault("language", "en")
}

// bindEnvVariables binds environment variables explicitly.
// Secrets come only from the environment, never from the config file.
func bindEnvVariables(v *viper.Viper) {
	// Hardcoded keys cannot fail to bind; a panic here is a bug.
	mustBind := func(key, envVar string) {
		if err := v.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q to %q: %v", key, envVar, err))
		}
	}

	mustBind("gemini_api_key", "GEMINI_API_KEY")
	mustBind("weather_api_key", "WEATHER_API_KEY")
	mustBind("addr", "AGRIMITRA_ADDR")
	mustBind("model_name", "AGRIMITRA_MODEL_NAME")
	mustBind("cors_origins", "AGRIMITRA_CORS_ORIGINS")
	mustBind("trust_proxy", "AGRIMITRA_TRUST_PROXY")
	mustBind("rate_burst", "AGRIMITRA_RATE_BURST")
	mustBind("api_base_url", "AGRIMITRA_API_BASE_URL")
	mustBind("language", "AGRIMITRA_LANG")
}

// Validate checks the configuration for obvious misconfiguration.
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAddr, c.Addr)
	}
	if strings.TrimSpace(c.ModelName) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidModelName)
	}
	if c.RateBurst < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRateBurst, c.RateBurst)
	}
	for _, u := range []string{c.GeoBaseURL, c.WeatherBaseURL, c.APIBaseURL} {
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			return fmt.Errorf("%w: %q", ErrInvalidBaseURL, u)
		}
	}
	return nil
}

// String implements Stringer without leaking secrets.
func (c Config) String() string {
	return fmt.Sprintf("Config{addr:%s model:%s gemini_key_set:%t weather_key_set:%t}",
		c.Addr, c.ModelName, c.GeminiAPIKey != "", c.WeatherAPIKey != "")
}
