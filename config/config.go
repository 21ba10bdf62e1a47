package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	FakeStore FakeStoreConfig
	Store     StoreConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// FakeStoreConfig holds remote catalog configuration
type FakeStoreConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// StoreConfig holds local product store configuration
type StoreConfig struct {
	// IDBase is the first id handed out for locally created products. It must
	// sit above the id range the remote catalog uses.
	IDBase int `mapstructure:"id_base"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP    int     `mapstructure:"per_ip"`
	Upstream float64 `mapstructure:"upstream"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/geerin/")

	// Environment variable settings
	v.SetEnvPrefix("GEERIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Remote catalog defaults
	v.SetDefault("fakestore.base_url", "https://fakestoreapi.com")
	v.SetDefault("fakestore.timeout", "30s")

	// Local store defaults
	v.SetDefault("store.id_base", 10000)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.upstream", 5)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.FakeStore.BaseURL == "" {
		return fmt.Errorf("fake store base URL is required (set GEERIN_FAKESTORE_BASE_URL)")
	}

	if config.Store.IDBase <= 0 {
		return fmt.Errorf("store id base must be positive, got: %d", config.Store.IDBase)
	}

	if config.RateLimit.Upstream <= 0 {
		return fmt.Errorf("upstream rate limit must be positive, got: %v", config.RateLimit.Upstream)
	}

	return nil
}
