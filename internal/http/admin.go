package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-newsroom/internal/articles"
	"github.com/goliatone/go-newsroom/internal/blocks"
	"github.com/goliatone/go-newsroom/internal/logging"
	"github.com/goliatone/go-newsroom/internal/media"
	"github.com/goliatone/go-newsroom/internal/render"
	"github.com/goliatone/go-newsroom/internal/taxonomy"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
)

// Roles accepted by the admin API. Editors write; admins additionally delete.
const (
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// AdminAPI registers the newsroom admin endpoints on a ServeMux.
type AdminAPI struct {
	basePath string
	articles articles.Service
	blocks   blocks.Repository
	taxonomy taxonomy.Service
	media    media.Service
	geocoder interfaces.Geocoder
	renderer *render.HTMLRenderer
	auth     interfaces.AuthProvider
	logger   interfaces.Logger
}

// AdminOption mutates the AdminAPI configuration.
type AdminOption func(*AdminAPI)

// NewAdminAPI constructs an AdminAPI instance.
func NewAdminAPI(opts ...AdminOption) *AdminAPI {
	api := &AdminAPI{
		basePath: "/admin/api",
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/admin/api").
func WithBasePath(path string) AdminOption {
	return func(api *AdminAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithArticleService wires the article service.
func WithArticleService(service articles.Service) AdminOption {
	return func(api *AdminAPI) { api.articles = service }
}

// WithBlockRepository wires block persistence.
func WithBlockRepository(repo blocks.Repository) AdminOption {
	return func(api *AdminAPI) { api.blocks = repo }
}

// WithTaxonomyService wires categories and tags.
func WithTaxonomyService(service taxonomy.Service) AdminOption {
	return func(api *AdminAPI) { api.taxonomy = service }
}

// WithMediaService wires the media library.
func WithMediaService(service media.Service) AdminOption {
	return func(api *AdminAPI) { api.media = service }
}

// WithGeocoder wires address search for the map block editor.
func WithGeocoder(geocoder interfaces.Geocoder) AdminOption {
	return func(api *AdminAPI) { api.geocoder = geocoder }
}

// WithRenderer wires the HTML renderer used by the preview endpoint.
func WithRenderer(renderer *render.HTMLRenderer) AdminOption {
	return func(api *AdminAPI) { api.renderer = renderer }
}

// WithAuthProvider wires the host's session store. Without one every request
// is treated as an editor, which suits embedded and test setups.
func WithAuthProvider(auth interfaces.AuthProvider) AdminOption {
	return func(api *AdminAPI) { api.auth = auth }
}

// WithLogger wires the request logger.
func WithLogger(logger interfaces.Logger) AdminOption {
	return func(api *AdminAPI) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// Register attaches the admin endpoints to the provided mux.
func (api *AdminAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}

	base := joinPath(api.basePath, "")

	api.registerArticleRoutes(mux, base)
	api.registerTaxonomyRoutes(mux, base)
	api.registerMediaRoutes(mux, base)
	api.registerGeocodeRoutes(mux, base)

	return nil
}

// requireRole enforces the minimum role for a request. The role hierarchy is
// admin > editor; any unknown role is denied.
func (api *AdminAPI) requireRole(w http.ResponseWriter, r *http.Request, minimum string) bool {
	if api.auth == nil {
		return true
	}

	role, err := api.auth.CurrentRole(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: err.Error()})
		return false
	}

	switch minimum {
	case RoleEditor:
		if role == RoleEditor || role == RoleAdmin {
			return true
		}
	case RoleAdmin:
		if role == RoleAdmin {
			return true
		}
	}

	writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden", Message: "insufficient role"})
	return false
}
