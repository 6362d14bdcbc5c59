package http

import (
	"encoding/base64"
	"net/http"

	"github.com/goliatone/go-newsroom/internal/media"
	"github.com/google/uuid"
)

func (api *AdminAPI) registerMediaRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "media")

	mux.HandleFunc("GET "+root, api.handleMediaList)
	mux.HandleFunc("POST "+root, api.handleMediaUpload)
	mux.HandleFunc("GET "+root+"/{id}", api.handleMediaGet)
	mux.HandleFunc("DELETE "+root+"/{id}", api.handleMediaDelete)
}

func (api *AdminAPI) requireMediaService(w http.ResponseWriter) bool {
	if api.media == nil {
		writeJSON(w, http.StatusNotImplemented, errorResponse{Error: "not_implemented", Message: "media library not configured"})
		return false
	}
	return true
}

func (api *AdminAPI) handleMediaList(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleEditor) {
		return
	}
	if !api.requireMediaService(w) {
		return
	}
	records, err := api.media.List(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"media": records})
}

func (api *AdminAPI) handleMediaUpload(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleEditor) {
		return
	}
	if !api.requireMediaService(w) {
		return
	}

	var payload struct {
		FileName string  `json:"file_name"`
		MimeType string  `json:"mime_type"`
		Data     string  `json:"data"`
		AltText  *string `json:"alt_text"`
		Caption  *string `json:"caption"`
		UserID   string  `json:"user_id"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	data, err := base64.StdEncoding.DecodeString(payload.Data)
	if err != nil {
		writeBadRequest(w, "data must be base64 encoded")
		return
	}
	var userID uuid.UUID
	if payload.UserID != "" {
		userID, err = parseUUID(payload.UserID)
		if err != nil {
			writeBadRequest(w, "invalid user id")
			return
		}
	}

	record, err := api.media.Upload(r.Context(), media.UploadInput{
		FileName: payload.FileName,
		MimeType: payload.MimeType,
		Data:     data,
		AltText:  payload.AltText,
		Caption:  payload.Caption,
		UserID:   userID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (api *AdminAPI) handleMediaGet(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleEditor) {
		return
	}
	if !api.requireMediaService(w) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeBadRequest(w, "invalid media id")
		return
	}
	record, err := api.media.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (api *AdminAPI) handleMediaDelete(w http.ResponseWriter, r *http.Request) {
	if !api.requireRole(w, r, RoleAdmin) {
		return
	}
	if !api.requireMediaService(w) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeBadRequest(w, "invalid media id")
		return
	}
	if err := api.media.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
