package pagecraft

import "github.com/pagecraft-cms/pagecraft/internal/runtimeconfig"

var (
	ErrLocalesRequired                   = runtimeconfig.ErrLocalesRequired
	ErrDefaultLocaleUnknown              = runtimeconfig.ErrDefaultLocaleUnknown
	ErrAdvancedCacheRequiresEnabledCache = runtimeconfig.ErrAdvancedCacheRequiresEnabledCache
	ErrMarkdownFeatureRequired           = runtimeconfig.ErrMarkdownFeatureRequired
	ErrMarkdownContentDirRequired        = runtimeconfig.ErrMarkdownContentDirRequired
	ErrLoggingProviderRequired           = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown            = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid               = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid              = runtimeconfig.ErrLoggingFormatInvalid
	ErrStorageDriverUnknown              = runtimeconfig.ErrStorageDriverUnknown
)

type (
	Config               = runtimeconfig.Config
	StorageConfig        = runtimeconfig.StorageConfig
	CacheConfig          = runtimeconfig.CacheConfig
	NavigationConfig     = runtimeconfig.NavigationConfig
	URLKitResolverConfig = runtimeconfig.URLKitResolverConfig
	MarkdownConfig       = runtimeconfig.MarkdownConfig
	Features             = runtimeconfig.Features
	LoggingConfig        = runtimeconfig.LoggingConfig
)

// DefaultConfig returns opinionated defaults for a bilingual deployment.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
