package newsroom

import "github.com/goliatone/go-newsroom/internal/runtimeconfig"

var (
	ErrStorageDriverUnknown       = runtimeconfig.ErrStorageDriverUnknown
	ErrCacheTTLInvalid            = runtimeconfig.ErrCacheTTLInvalid
	ErrGeocodingFeatureRequired   = runtimeconfig.ErrGeocodingFeatureRequired
	ErrGeocodingMaxResultsInvalid = runtimeconfig.ErrGeocodingMaxResultsInvalid
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config               = runtimeconfig.Config
	StorageConfig        = runtimeconfig.StorageConfig
	CacheConfig          = runtimeconfig.CacheConfig
	HTTPConfig           = runtimeconfig.HTTPConfig
	RoutesConfig         = runtimeconfig.RoutesConfig
	URLKitResolverConfig = runtimeconfig.URLKitResolverConfig
	GeocodingConfig      = runtimeconfig.GeocodingConfig
	Features             = runtimeconfig.Features
	LoggingConfig        = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
