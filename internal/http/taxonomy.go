package http

import "net/http"

func (api *AdminAPI) registerTaxonomyRoutes(mux *http.ServeMux, base string) {
	mux.HandleFunc("GET "+joinPath(base, "categories"), api.handleCategoryList)
	mux.HandleFunc("POST "+joinPath(base, "categories"), api.handleCategoryEnsure)
	mux.HandleFunc("GET "+joinPath(base, "tags"), api.handleTagList)
	mux.HandleFunc("POST "+joinPath(base, "tags"), api.handleTagEnsure)
}

func (api *AdminAPI) handleCategoryList(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleEditor) {
		return
	}
	records, err := api.taxonomy.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": records})
}

func (api *AdminAPI) handleCategoryEnsure(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleEditor) {
		return
	}
	var payload struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	record, err := api.taxonomy.EnsureCategory(r.Context(), payload.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleTagList(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleEditor) {
		return
	}
	records, err := api.taxonomy.ListTags(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tags": records})
}

func (api *AdminAPI) handleTagEnsure(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleEditor) {
		return
	}
	var payload struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	record, err := api.taxonomy.EnsureTag(r.Context(), payload.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}
