// Package newsroom wires the article editing runtime: block registry, document
// engine, persistence, taxonomy, media library, and the admin HTTP surface.
// Hosts construct a Module from a Config and mount it on their own mux.
package newsroom

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"

	"github.com/goliatone/go-newsroom/internal/adapters/memblob"
	"github.com/goliatone/go-newsroom/internal/articles"
	"github.com/goliatone/go-newsroom/internal/blocks"
	documentcmd "github.com/goliatone/go-newsroom/internal/commands/document"
	"github.com/goliatone/go-newsroom/internal/document"
	"github.com/goliatone/go-newsroom/internal/editor"
	"github.com/goliatone/go-newsroom/internal/geocode"
	nhttp "github.com/goliatone/go-newsroom/internal/http"
	"github.com/goliatone/go-newsroom/internal/logging"
	"github.com/goliatone/go-newsroom/internal/logging/gologger"
	"github.com/goliatone/go-newsroom/internal/markdown"
	"github.com/goliatone/go-newsroom/internal/media"
	"github.com/goliatone/go-newsroom/internal/render"
	"github.com/goliatone/go-newsroom/internal/taxonomy"
	"github.com/goliatone/go-newsroom/pkg/interfaces"

	"github.com/goliatone/go-repository-cache/cache"
)

// ErrDatabaseRequired signals a storage driver that needs a host-opened *bun.DB.
var ErrDatabaseRequired = errors.New("newsroom: postgres storage requires a database, use WithDB")

// Exported service surfaces. These alias the internal packages so hosts can
// hold the values without importing internal paths.
type (
	ArticleService  = articles.Service
	TaxonomyService = taxonomy.Service
	MediaService    = media.Service
	Article         = articles.Article
	UpsertInput     = articles.UpsertInput
	Block           = blocks.Block
	Media           = media.Media
	Category        = taxonomy.Category
	Tag             = taxonomy.Tag
	Session         = editor.Session
	SessionHooks    = editor.Hooks
	SaveOptions     = editor.SaveOptions
	DocumentHandler = documentcmd.Handlers
	ImportResult    = markdown.ImportResult
)

// Module is the composed newsroom runtime.
type Module struct {
	config Config

	db             *bun.DB
	loggerProvider interfaces.LoggerProvider
	blobStore      interfaces.BlobStore
	authProvider   interfaces.AuthProvider
	cacheService   cache.CacheService
	keySerializer  cache.KeySerializer

	registry *blocks.Registry
	engine   *document.Engine
	renderer *render.HTMLRenderer

	articleRepo articles.Repository
	blockRepo   blocks.Repository

	articleSvc  articles.Service
	taxonomySvc taxonomy.Service
	mediaSvc    media.Service
	geocoder    interfaces.Geocoder
	importer    *markdown.Importer

	routeManager *urlkit.RouteManager
	urls         *articles.URLBuilder

	admin *nhttp.AdminAPI
}

// Option overrides a Module collaborator before construction.
type Option func(*Module)

// WithDB supplies an opened bun database. Required for the postgres driver;
// the sqlite driver opens its own connection from Storage.DSN when absent.
func WithDB(db *bun.DB) Option {
	return func(m *Module) { m.db = db }
}

// WithLoggerProvider overrides the logger provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) { m.loggerProvider = provider }
}

// WithBlobStore supplies the media blob backend. Defaults to the in-memory
// store, which suits tests and previews but not production.
func WithBlobStore(store interfaces.BlobStore) Option {
	return func(m *Module) { m.blobStore = store }
}

// WithAuthProvider wires the host session store used for role checks.
func WithAuthProvider(auth interfaces.AuthProvider) Option {
	return func(m *Module) { m.authProvider = auth }
}

// WithCache overrides the repository cache service and key serializer.
func WithCache(service cache.CacheService, serializer cache.KeySerializer) Option {
	return func(m *Module) {
		m.cacheService = service
		m.keySerializer = serializer
	}
}

// WithGeocoder overrides the geocoding client built from Config.Geocoding.
func WithGeocoder(geocoder interfaces.Geocoder) Option {
	return func(m *Module) { m.geocoder = geocoder }
}

// New validates the configuration and assembles the runtime.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	if err := m.configureLogging(); err != nil {
		return nil, err
	}
	if err := m.configureStorage(); err != nil {
		return nil, err
	}

	m.registry = blocks.NewRegistry()
	m.engine = document.NewEngine(m.registry)
	m.renderer = render.NewHTMLRenderer(m.registry)

	m.articleSvc = articles.NewService(
		m.articleRepo,
		articles.WithLogger(logging.ArticlesLogger(m.loggerProvider)),
	)
	m.taxonomySvc = taxonomy.NewService(
		m.taxonomyRepoOrMemory(),
		taxonomy.WithLogger(logging.TaxonomyLogger(m.loggerProvider)),
	)

	if cfg.Features.MediaLibrary {
		if m.blobStore == nil {
			m.blobStore = memblob.New()
		}
		m.mediaSvc = media.NewService(
			m.mediaRepoOrMemory(),
			m.blobStore,
			media.WithLogger(logging.MediaLogger(m.loggerProvider)),
		)
	}

	if cfg.Features.Geocoding && m.geocoder == nil {
		m.geocoder = m.buildGeocoder()
	}

	m.configureRoutes()

	m.importer = markdown.NewImporter(markdown.ImporterConfig{
		Articles: m.articleSvc,
		Taxonomy: m.taxonomySvc,
		Blocks:   m.blockRepo,
		Logger:   logging.ImporterLogger(m.loggerProvider),
	})

	adminOpts := []nhttp.AdminOption{
		nhttp.WithBasePath(cfg.HTTP.BasePath),
		nhttp.WithArticleService(m.articleSvc),
		nhttp.WithBlockRepository(m.blockRepo),
		nhttp.WithTaxonomyService(m.taxonomySvc),
		nhttp.WithRenderer(m.renderer),
		nhttp.WithLogger(logging.HTTPLogger(m.loggerProvider)),
	}
	if m.mediaSvc != nil {
		adminOpts = append(adminOpts, nhttp.WithMediaService(m.mediaSvc))
	}
	if m.geocoder != nil {
		adminOpts = append(adminOpts, nhttp.WithGeocoder(m.geocoder))
	}
	if m.authProvider != nil {
		adminOpts = append(adminOpts, nhttp.WithAuthProvider(m.authProvider))
	}
	m.admin = nhttp.NewAdminAPI(adminOpts...)

	return m, nil
}

func (m *Module) configureLogging() error {
	if m.loggerProvider != nil {
		return nil
	}
	switch m.config.Logging.Provider {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     m.config.Logging.Level,
			Format:    m.config.Logging.Format,
			AddSource: m.config.Logging.AddSource,
			Focus:     m.config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		m.loggerProvider = provider
	default:
		// Leave the provider nil; module loggers fall back to no-ops.
	}
	return nil
}

func (m *Module) configureStorage() error {
	driver := m.config.Storage.DriverName()

	switch driver {
	case "memory":
		m.articleRepo = articles.NewMemoryRepository()
		m.blockRepo = blocks.NewMemoryRepository()
		return nil
	case "sqlite":
		if m.db == nil {
			dsn := m.config.Storage.DSN
			if dsn == "" {
				dsn = "file::memory:?cache=shared"
			}
			sqldb, err := sql.Open("sqlite3", dsn)
			if err != nil {
				return fmt.Errorf("newsroom: open sqlite: %w", err)
			}
			m.db = bun.NewDB(sqldb, sqlitedialect.New())
		}
	case "postgres":
		if m.db == nil {
			return ErrDatabaseRequired
		}
	}

	m.configureCacheDefaults()
	m.articleRepo = articles.NewBunRepositoryWithCache(m.db, m.cacheService, m.keySerializer)
	m.blockRepo = blocks.NewBunRepository(m.db)
	return nil
}

func (m *Module) configureCacheDefaults() {
	if !m.config.Cache.Enabled {
		return
	}
	if m.cacheService == nil {
		cfg := cache.DefaultConfig()
		if m.config.Cache.DefaultTTL > 0 {
			cfg.TTL = m.config.Cache.DefaultTTL
		}
		service, err := cache.NewCacheService(cfg)
		if err == nil {
			m.cacheService = service
		}
	}
	if m.cacheService != nil && m.keySerializer == nil {
		m.keySerializer = cache.NewDefaultKeySerializer()
	}
}

func (m *Module) taxonomyRepoOrMemory() taxonomy.Repository {
	if m.db != nil {
		return taxonomy.NewBunRepositoryWithCache(m.db, m.cacheService, m.keySerializer)
	}
	return taxonomy.NewMemoryRepository()
}

func (m *Module) mediaRepoOrMemory() media.Repository {
	if m.db != nil {
		return media.NewBunRepository(m.db)
	}
	return media.NewMemoryRepository()
}

func (m *Module) buildGeocoder() interfaces.Geocoder {
	opts := []geocode.Option{
		geocode.WithLogger(logging.ModuleLogger(m.loggerProvider, "geocode")),
	}
	if m.config.Geocoding.BaseURL != "" {
		opts = append(opts, geocode.WithBaseURL(m.config.Geocoding.BaseURL))
	}
	if m.config.Geocoding.UserAgent != "" {
		opts = append(opts, geocode.WithUserAgent(m.config.Geocoding.UserAgent))
	}
	if m.config.Geocoding.MaxResults > 0 {
		opts = append(opts, geocode.WithMaxResults(m.config.Geocoding.MaxResults))
	}
	return geocode.NewClient(opts...)
}

func (m *Module) configureRoutes() {
	routeCfg := m.config.Routes.RouteConfig
	if routeCfg == nil {
		return
	}
	m.routeManager = urlkit.NewRouteManager(routeCfg)
	m.urls = articles.NewURLBuilder(articles.URLBuilderOptions{
		Manager:      m.routeManager,
		Group:        m.config.Routes.URLKit.Group,
		ArticleRoute: m.config.Routes.URLKit.ArticleRoute,
		PreviewRoute: m.config.Routes.URLKit.PreviewRoute,
		SlugParam:    m.config.Routes.URLKit.SlugParam,
	})
}

// NewPostgresDB wraps a host-opened *sql.DB with the postgres dialect.
func NewPostgresDB(sqldb *sql.DB) *bun.DB {
	return bun.NewDB(sqldb, pgdialect.New())
}

// Articles exposes the article service.
func (m *Module) Articles() ArticleService { return m.articleSvc }

// Taxonomy exposes the category and tag service.
func (m *Module) Taxonomy() TaxonomyService { return m.taxonomySvc }

// Media exposes the media library service. Nil when the feature is disabled.
func (m *Module) Media() MediaService { return m.mediaSvc }

// Blocks exposes block persistence for hosts that bypass the editor session.
func (m *Module) Blocks() blocks.Repository { return m.blockRepo }

// Registry exposes the block type registry.
func (m *Module) Registry() *blocks.Registry { return m.registry }

// Engine exposes the document mutation engine.
func (m *Module) Engine() *document.Engine { return m.engine }

// Renderer exposes the block HTML renderer.
func (m *Module) Renderer() *render.HTMLRenderer { return m.renderer }

// Importer exposes the Markdown document importer.
func (m *Module) Importer() *markdown.Importer { return m.importer }

// Geocoder exposes address search. Nil when the feature is disabled.
func (m *Module) Geocoder() interfaces.Geocoder { return m.geocoder }

// URLs exposes the canonical URL builder. Nil without route configuration.
func (m *Module) URLs() *articles.URLBuilder { return m.urls }

// DB exposes the underlying database. Nil for the memory driver.
func (m *Module) DB() *bun.DB { return m.db }

// RegisterRoutes mounts the admin API on the provided mux.
func (m *Module) RegisterRoutes(mux *http.ServeMux) error {
	return m.admin.Register(mux)
}

// NewSession opens an editing session bound to the module services.
func (m *Module) NewSession(hooks SessionHooks) *Session {
	return editor.NewSession(editor.SessionConfig{
		Articles: m.articleSvc,
		Blocks:   m.blockRepo,
		Taxonomy: m.taxonomySvc,
		Engine:   m.engine,
		Hooks:    hooks,
		Logger:   logging.EditorLogger(m.loggerProvider),
	})
}

// DocumentHandlers builds the validated command handlers around a session.
func (m *Module) DocumentHandlers(session *Session) *DocumentHandler {
	return documentcmd.NewHandlers(session, logging.ModuleLogger(m.loggerProvider, "commands"))
}
