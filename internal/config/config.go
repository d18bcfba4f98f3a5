package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	Gazetteer GazetteerConfig
	IPGeo     IPGeoConfig
	Cache     CacheConfig
	Store     StoreConfig
	TripAPI   TripAPIConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	DefaultCountry string // applied when the detection cascade comes back empty
}

// GazetteerConfig holds the place-search upstream configuration
type GazetteerConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Limit   int // default result limit for autocomplete
}

// IPGeoConfig holds IP geolocation provider configuration
type IPGeoConfig struct {
	Timeout time.Duration // per provider, each provider gets its own budget
}

// CacheConfig holds TTLs and bounds for the two cache namespaces
type CacheConfig struct {
	DetectionTTL time.Duration
	SearchTTL    time.Duration
	SearchSize   int
}

// StoreConfig holds the persistent cache store configuration
type StoreConfig struct {
	Path string
}

// TripAPIConfig holds the trip-planning backend configuration
type TripAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.haulplan")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("app.defaultCountry", "us")
	viper.SetDefault("gazetteer.baseURL", "https://us1.locationiq.com/v1")
	viper.SetDefault("gazetteer.apiKey", "")
	viper.SetDefault("gazetteer.timeout", "10s")
	viper.SetDefault("gazetteer.limit", 5)
	viper.SetDefault("ipgeo.timeout", "5s")
	viper.SetDefault("cache.detectionTTL", "24h")
	viper.SetDefault("cache.searchTTL", "5m")
	viper.SetDefault("cache.searchSize", 100)
	viper.SetDefault("store.path", "haulplan.db")
	viper.SetDefault("tripapi.baseURL", "http://localhost:8000")
	viper.SetDefault("tripapi.timeout", "30s")

	// Read from environment variables
	viper.SetEnvPrefix("HAULPLAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
