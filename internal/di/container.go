package di

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/pagecraft-cms/pagecraft/blocks"
	"github.com/pagecraft-cms/pagecraft/content"
	"github.com/pagecraft-cms/pagecraft/documents"
	intcollections "github.com/pagecraft-cms/pagecraft/internal/collections"
	intdocuments "github.com/pagecraft-cms/pagecraft/internal/documents"
	"github.com/pagecraft-cms/pagecraft/internal/logging"
	"github.com/pagecraft-cms/pagecraft/internal/logging/console"
	"github.com/pagecraft-cms/pagecraft/internal/logging/gologger"
	"github.com/pagecraft-cms/pagecraft/internal/markdown"
	intpages "github.com/pagecraft-cms/pagecraft/internal/pages"
	"github.com/pagecraft-cms/pagecraft/internal/runtimeconfig"
	"github.com/pagecraft-cms/pagecraft/pages"
	"github.com/pagecraft-cms/pagecraft/pkg/interfaces"
)

// Container wires module dependencies: repositories, logging, navigation,
// and the locale-aware content services.
type Container struct {
	Config runtimeconfig.Config

	bunDB   *bun.DB
	ownedDB *sql.DB

	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	loggerProvider interfaces.LoggerProvider
	media          interfaces.MediaUploader

	registry     *blocks.Registry
	routeManager *urlkit.RouteManager
	urlResolver  *intpages.URLKitResolver
	renderer     *markdown.Renderer

	documentRepo   intdocuments.Repository
	pageRepo       intpages.Repository
	collectionRepo intcollections.Repository

	documentSvc   documents.Service
	pageSvc       pages.Service
	collectionSvc *intcollections.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB injects an existing bun database handle. When set, repositories
// are backed by SQL instead of memory.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the default repository cache service.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the configured logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithMediaUploader overrides the default no-op media uploader.
func WithMediaUploader(uploader interfaces.MediaUploader) Option {
	return func(c *Container) {
		if uploader != nil {
			c.media = uploader
		}
	}
}

// WithRegistry overrides the default block catalog.
func WithRegistry(registry *blocks.Registry) Option {
	return func(c *Container) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithMarkdownRenderer overrides the Markdown engine used for item imports.
func WithMarkdownRenderer(renderer *markdown.Renderer) Option {
	return func(c *Container) {
		c.renderer = renderer
	}
}

// WithDocumentService overrides the default block content service binding.
func WithDocumentService(svc documents.Service) Option {
	return func(c *Container) {
		c.documentSvc = svc
	}
}

// WithPageService overrides the default page service binding.
func WithPageService(svc pages.Service) Option {
	return func(c *Container) {
		c.pageSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:         cfg,
		cacheTTL:       cacheTTL,
		media:          interfaces.NoOpUploader{},
		registry:       blocks.DefaultRegistry(),
		renderer:       markdown.NewRenderer(markdown.RendererOptions{}),
		documentRepo:   intdocuments.NewMemoryRepository(),
		pageRepo:       intpages.NewMemoryRepository(),
		collectionRepo: intcollections.NewMemoryRepository(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	if err := c.configureStorage(); err != nil {
		return nil, err
	}
	c.configureNavigation()

	if c.documentSvc == nil {
		c.documentSvc = intdocuments.NewService(
			c.documentRepo,
			intdocuments.WithRegistry(c.registry),
			intdocuments.WithLogger(c.ModuleLogger("pagecraft.documents")),
			intdocuments.WithStrictValidation(cfg.Features.StrictValidation),
		)
	}

	if c.pageSvc == nil {
		pageOpts := []intpages.ServiceOption{
			intpages.WithLogger(c.ModuleLogger("pagecraft.pages")),
		}
		if c.urlResolver != nil {
			pageOpts = append(pageOpts, intpages.WithURLResolver(c.urlResolver))
		}
		c.pageSvc = intpages.NewService(c.pageRepo, pageOpts...)
	}

	if c.collectionSvc == nil {
		c.collectionSvc = intcollections.NewService(
			c.collectionRepo,
			intcollections.WithLogger(c.ModuleLogger("pagecraft.collections")),
		)
	}

	return c, nil
}

// DocumentService returns the block content service.
func (c *Container) DocumentService() documents.Service {
	return c.documentSvc
}

// PageService returns the page service.
func (c *Container) PageService() pages.Service {
	return c.pageSvc
}

// CollectionService returns the collection item service.
func (c *Container) CollectionService() *intcollections.Service {
	return c.collectionSvc
}

// MediaUploader returns the configured media uploader.
func (c *Container) MediaUploader() interfaces.MediaUploader {
	return c.media
}

// Registry returns the block catalog in use.
func (c *Container) Registry() *blocks.Registry {
	return c.registry
}

// RouteManager returns the urlkit route manager, when navigation is
// configured.
func (c *Container) RouteManager() *urlkit.RouteManager {
	return c.routeManager
}

// MarkdownRenderer returns the Markdown engine used for item imports.
func (c *Container) MarkdownRenderer() *markdown.Renderer {
	return c.renderer
}

// BunDB exposes the database handle when SQL storage is active.
func (c *Container) BunDB() *bun.DB {
	return c.bunDB
}

// ModuleLogger returns a named logger from the configured provider, or a
// no-op logger when logging is disabled.
func (c *Container) ModuleLogger(name string) interfaces.Logger {
	if c.loggerProvider == nil {
		return logging.NoOp()
	}
	return logging.ModuleLogger(c.loggerProvider, name)
}

// Close releases resources the container opened itself. Database handles
// injected via WithBunDB stay open.
func (c *Container) Close() error {
	if c.ownedDB == nil {
		return nil
	}
	err := c.ownedDB.Close()
	c.ownedDB = nil
	return err
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}

	logCfg := c.Config.Logging
	switch strings.ToLower(strings.TrimSpace(logCfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     logCfg.Level,
			Format:    logCfg.Format,
			AddSource: logCfg.AddSource,
			Focus:     logCfg.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		level := consoleLevel(logCfg.Level)
		c.loggerProvider = console.NewProvider(console.Options{
			Writer:   os.Stdout,
			MinLevel: &level,
		})
	}
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureStorage() error {
	provider := strings.ToLower(strings.TrimSpace(c.Config.Storage.Provider))
	if provider != "bun" && c.bunDB == nil {
		return nil
	}

	if c.bunDB == nil {
		driver := strings.ToLower(strings.TrimSpace(c.Config.Storage.Driver))
		if driver == "" {
			driver = "sqlite3"
		}
		dsn := c.Config.Storage.DSN
		if dsn == "" {
			dsn = "file::memory:?cache=shared"
		}
		sqldb, err := sql.Open(driver, dsn)
		if err != nil {
			return fmt.Errorf("open storage %q: %w", dsn, err)
		}
		c.ownedDB = sqldb
		switch driver {
		case "postgres", "pg", "pgx":
			c.bunDB = bun.NewDB(sqldb, pgdialect.New())
		default:
			c.bunDB = bun.NewDB(sqldb, sqlitedialect.New())
		}
	}

	c.documentRepo = intdocuments.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.pageRepo = intpages.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.collectionRepo = intcollections.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	return nil
}

func (c *Container) configureNavigation() {
	if c.urlResolver != nil {
		return
	}

	navCfg := c.Config.Navigation
	if navCfg.RouteConfig == nil {
		return
	}

	c.routeManager = urlkit.NewRouteManager(navCfg.RouteConfig)

	localeGroups := make(map[content.Locale]string, len(navCfg.URLKit.LocaleGroups))
	for locale, group := range navCfg.URLKit.LocaleGroups {
		localeGroups[content.Locale(strings.TrimSpace(locale))] = group
	}

	c.urlResolver = intpages.NewURLKitResolver(intpages.URLKitResolverOptions{
		Manager:      c.routeManager,
		DefaultGroup: strings.TrimSpace(navCfg.URLKit.DefaultGroup),
		LocaleGroups: localeGroups,
		Route:        strings.TrimSpace(navCfg.URLKit.DefaultRoute),
		SlugParam:    strings.TrimSpace(navCfg.URLKit.SlugParam),
		LocaleParam:  strings.TrimSpace(navCfg.URLKit.LocaleParam),
	})
}

func consoleLevel(level string) console.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return console.LevelTrace
	case "debug":
		return console.LevelDebug
	case "warn", "warning":
		return console.LevelWarn
	case "error":
		return console.LevelError
	case "fatal":
		return console.LevelFatal
	default:
		return console.LevelInfo
	}
}
