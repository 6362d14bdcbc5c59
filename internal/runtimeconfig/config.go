// Package runtimeconfig holds the module-level configuration surface. The
// root package re-exports these types so hosts configure the newsroom without
// importing internal packages.
package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

var ErrStorageDriverUnknown = errors.New("newsroom config: storage driver is invalid")
var ErrCacheTTLInvalid = errors.New("newsroom config: cache TTL must be zero or positive")
var ErrGeocodingFeatureRequired = errors.New("newsroom config: geocoding feature must be enabled to configure geocoding")
var ErrGeocodingMaxResultsInvalid = errors.New("newsroom config: geocoding max results must be zero or positive")
var ErrLoggingProviderRequired = errors.New("newsroom config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("newsroom config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("newsroom config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("newsroom config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the newsroom
// module. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	Enabled   bool
	Storage   StorageConfig
	Cache     CacheConfig
	HTTP      HTTPConfig
	Routes    RoutesConfig
	Geocoding GeocodingConfig
	Features  Features
	Logging   LoggingConfig
}

// StorageConfig selects the persistence backend. Driver is one of "memory",
// "sqlite", or "postgres"; DSN applies to the sqlite driver (postgres hosts
// hand in an opened *bun.DB instead).
type StorageConfig struct {
	Driver string
	DSN    string
}

// CacheConfig captures read-through repository cache behaviour.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// HTTPConfig captures routing for the admin API surface.
type HTTPConfig struct {
	BasePath string
}

// RoutesConfig captures go-urlkit routing for canonical article URLs.
type RoutesConfig struct {
	RouteConfig *urlkit.Config
	URLKit      URLKitResolverConfig
}

// URLKitResolverConfig configures the go-urlkit backed article URL builder.
type URLKitResolverConfig struct {
	Group        string
	ArticleRoute string
	PreviewRoute string
	SlugParam    string
}

// GeocodingConfig tunes the address search client behind the map block.
type GeocodingConfig struct {
	BaseURL    string
	UserAgent  string
	MaxResults int
}

// Features toggles module functionality.
type Features struct {
	MediaLibrary bool
	Geocoding    bool
	Logger       bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults suited to embedded setups.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Storage: StorageConfig{
			Driver: "memory",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		HTTP: HTTPConfig{
			BasePath: "/admin/api",
		},
		Routes: RoutesConfig{},
		Features: Features{
			MediaLibrary: true,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	switch normalizeDriver(cfg.Storage.Driver) {
	case "memory", "sqlite", "postgres":
	default:
		return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
	}
	if cfg.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}
	if !cfg.Features.Geocoding {
		if strings.TrimSpace(cfg.Geocoding.BaseURL) != "" {
			return ErrGeocodingFeatureRequired
		}
	}
	if cfg.Geocoding.MaxResults < 0 {
		return ErrGeocodingMaxResultsInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalizeDriver(driver string) string {
	return strings.ToLower(strings.TrimSpace(driver))
}

// DriverName returns the normalized storage driver name.
func (cfg StorageConfig) DriverName() string {
	return normalizeDriver(cfg.Driver)
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "gologger", "noop":
		return true
	}
	return false
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	}
	return false
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	}
	return false
}
