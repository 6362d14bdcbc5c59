package http

import (
	"net/http"
	"strings"
)

func (api *AdminAPI) registerGeocodeRoutes(mux *http.ServeMux, base string) {
	mux.HandleFunc("GET "+joinPath(base, "geocode"), api.handleGeocodeSearch)
}

func (api *AdminAPI) handleGeocodeSearch(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleEditor) {
		return
	}
	if api.geocoder == nil {
		writeJSON(w, http.StatusNotImplemented, errorResponse{Error: "not_implemented", Message: "geocoder not configured"})
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeBadRequest(w, "query parameter q is required")
		return
	}

	results, err := api.geocoder.Search(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}
