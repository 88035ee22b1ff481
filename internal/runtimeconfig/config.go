package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

// ErrDefaultLocaleUnknown indicates the default locale is missing from the locale list.
var ErrDefaultLocaleUnknown = errors.New("pagecraft config: default locale must appear in locales")

// ErrLocalesRequired indicates at least one locale must be configured.
var ErrLocalesRequired = errors.New("pagecraft config: at least one locale is required")

// ErrAdvancedCacheRequiresEnabledCache ensures the cached repositories only build when cache is enabled.
var ErrAdvancedCacheRequiresEnabledCache = errors.New("pagecraft config: advanced cache feature requires cache to be enabled")

var ErrMarkdownFeatureRequired = errors.New("pagecraft config: markdown feature must be enabled to configure markdown")
var ErrMarkdownContentDirRequired = errors.New("pagecraft config: markdown content directory is required when markdown is enabled")
var ErrLoggingProviderRequired = errors.New("pagecraft config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("pagecraft config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("pagecraft config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("pagecraft config: logging format is invalid")
var ErrStorageDriverUnknown = errors.New("pagecraft config: storage driver is invalid")

// Config aggregates feature flags and adapter bindings for the pagecraft module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled       bool
	DefaultLocale string
	Locales       []string
	Storage       StorageConfig
	Cache         CacheConfig
	Navigation    NavigationConfig
	Markdown      MarkdownConfig
	Features      Features
	Logging       LoggingConfig
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
	Driver   string
	DSN      string
}

// CacheConfig captures cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// NavigationConfig captures routing configuration for page URL resolution.
type NavigationConfig struct {
	RouteConfig *urlkit.Config
	URLKit      URLKitResolverConfig
}

// URLKitResolverConfig configures the go-urlkit based page URL builder.
type URLKitResolverConfig struct {
	DefaultGroup string
	LocaleGroups map[string]string
	DefaultRoute string
	SlugParam    string
	LocaleParam  string
}

// MarkdownConfig captures filesystem behaviour for collection item ingestion.
type MarkdownConfig struct {
	Enabled    bool
	ContentDir string
	Pattern    string
	Recursive  bool
	BodyField  string
}

// Features toggles module functionality.
type Features struct {
	AdvancedCache    bool
	Markdown         bool
	Logger           bool
	StrictValidation bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a bilingual deployment.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		DefaultLocale: "en",
		Locales:       []string{"en", "ar"},
		Storage: StorageConfig{
			Provider: "memory",
			Driver:   "sqlite3",
			DSN:      "file::memory:?cache=shared",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Navigation: NavigationConfig{},
		Markdown: MarkdownConfig{
			ContentDir: "content",
			Pattern:    "*.md",
			Recursive:  true,
			BodyField:  "body",
		},
		Features: Features{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if len(cfg.Locales) == 0 {
		return ErrLocalesRequired
	}
	if !containsLocale(cfg.Locales, cfg.DefaultLocale) {
		return ErrDefaultLocaleUnknown
	}
	if cfg.Features.AdvancedCache && !cfg.Cache.Enabled {
		return ErrAdvancedCacheRequiresEnabledCache
	}
	if cfg.Markdown.Enabled {
		if !cfg.Features.Markdown {
			return ErrMarkdownFeatureRequired
		}
		if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
			return ErrMarkdownContentDirRequired
		}
	}
	if provider := normalizeToken(cfg.Storage.Provider); provider != "" && !isSupportedStorageProvider(provider) {
		return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, provider)
	}
	if cfg.Features.Logger {
		provider := normalizeToken(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedLoggingProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func containsLocale(locales []string, code string) bool {
	needle := normalizeToken(code)
	for _, locale := range locales {
		if normalizeToken(locale) == needle {
			return true
		}
	}
	return false
}

func normalizeToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedStorageProvider(provider string) bool {
	switch provider {
	case "memory", "bun":
		return true
	default:
		return false
	}
}

func isSupportedLoggingProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
