package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/goliatone/go-newsroom/internal/articles"
	"github.com/goliatone/go-newsroom/internal/blocks"
	"github.com/goliatone/go-newsroom/internal/domain"
)

type articlePayload struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug,omitempty"`
	Description   string   `json:"description,omitempty"`
	Status        string   `json:"status,omitempty"`
	FeaturedImage *string  `json:"featured_image,omitempty"`
	AuthorID      string   `json:"author_id"`
	Keywords      []string `json:"keywords,omitempty"`
}

func (api *AdminAPI) registerArticleRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "articles")

	mux.HandleFunc("GET "+root, api.handleArticleList)
	mux.HandleFunc("POST "+root, api.handleArticleCreate)
	mux.HandleFunc("GET "+root+"/{key}", api.handleArticleGet)
	mux.HandleFunc("PUT "+root+"/{id}", api.handleArticleUpdate)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handleArticleDelete)
	mux.HandleFunc("GET "+root+"/{id}/blocks", api.handleBlocksGet)
	mux.HandleFunc("PUT "+root+"/{id}/blocks", api.handleBlocksReplace)
	mux.HandleFunc("GET "+root+"/{id}/render", api.handleArticleRender)
	mux.HandleFunc("PUT "+root+"/{id}/categories", api.handleArticleCategories)
	mux.HandleFunc("PUT "+root+"/{id}/tags", api.handleArticleTags)
}

func (api *AdminAPI) handleArticleList(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleEditor) {
		return
	}
	records, err := api.articles.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"articles": records})
}

func (api *AdminAPI) handleArticleCreate(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleEditor) {
		return
	}

	var payload articlePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	input, err := payload.toInput(nil)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	record, err := api.articles.Upsert(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (api *AdminAPI) handleArticleGet(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleEditor) {
		return
	}
	record, err := api.articles.Get(r.Context(), r.PathValue("key"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleArticleUpdate(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleEditor) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeBadRequest(w, "invalid article id")
		return
	}

	var payload articlePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	input, err := payload.toInput(&id)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	record, err := api.articles.Upsert(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleArticleDelete(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleAdmin) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeBadRequest(w, "invalid article id")
		return
	}

	if api.blocks != nil {
		if err := api.blocks.DeleteForArticle(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
	}
	if err := api.articles.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (api *AdminAPI) handleBlocksGet(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleEditor) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeBadRequest(w, "invalid article id")
		return
	}
	list, err := api.blocks.ListForArticle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"blocks": list})
}

// handleBlocksReplace is the replace-all persistence endpoint: the payload is
// the full block list and the previous rows are superseded wholesale.
func (api *AdminAPI) handleBlocksReplace(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleEditor) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeBadRequest(w, "invalid article id")
		return
	}

	var payload struct {
		Blocks []blocks.Block `json:"blocks"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	saved, err := api.blocks.ReplaceForArticle(r.Context(), id, payload.Blocks)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"blocks": saved})
}

func (api *AdminAPI) handleArticleRender(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleEditor) {
		return
	}
	if api.renderer == nil {
		writeJSON(w, http.StatusNotImplemented, errorResponse{Error: "not_implemented", Message: "renderer not configured"})
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeBadRequest(w, "invalid article id")
		return
	}

	list, err := api.blocks.ListForArticle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	html, err := api.renderer.RenderToString(list)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"html": html})
}

func (api *AdminAPI) handleArticleCategories(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleEditor) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeBadRequest(w, "invalid article id")
		return
	}

	var payload struct {
		Categories []string `json:"categories"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	linked, err := api.taxonomy.SetArticleCategories(r.Context(), id, payload.Categories)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": linked})
}

func (api *AdminAPI) handleArticleTags(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleEditor) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeBadRequest(w, "invalid article id")
		return
	}

	var payload struct {
		Tags []string `json:"tags"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	linked, err := api.taxonomy.SetArticleTags(r.Context(), id, payload.Tags)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tags": linked})
}

func (p articlePayload) toInput(id *uuid.UUID) (articles.UpsertInput, error) {
	authorID := uuid.Nil
	if p.AuthorID != "" {
		parsed, err := uuid.Parse(p.AuthorID)
		if err != nil {
			return articles.UpsertInput{}, err
		}
		authorID = parsed
	}
	return articles.UpsertInput{
		ID:            id,
		Title:         p.Title,
		Slug:          p.Slug,
		Description:   p.Description,
		Status:        domain.Status(p.Status),
		FeaturedImage: p.FeaturedImage,
		AuthorID:      authorID,
		Keywords:      p.Keywords,
	}, nil
}
