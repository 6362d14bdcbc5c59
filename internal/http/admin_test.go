package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-newsroom/internal/articles"
	"github.com/goliatone/go-newsroom/internal/blocks"
	"github.com/goliatone/go-newsroom/internal/media"
	"github.com/goliatone/go-newsroom/internal/render"
	"github.com/goliatone/go-newsroom/internal/taxonomy"
	"github.com/goliatone/go-newsroom/pkg/interfaces"

	"github.com/goliatone/go-newsroom/internal/adapters/memblob"
)

type staticAuth struct {
	role string
}

func (a *staticAuth) CurrentSession(context.Context) (*interfaces.Session, error) {
	return &interfaces.Session{UserID: "u1", Role: a.role}, nil
}

func (a *staticAuth) CurrentRole(context.Context) (string, error) {
	return a.role, nil
}

type testEnv struct {
	mux      *http.ServeMux
	articles articles.Service
	blocks   blocks.Repository
	auth     *staticAuth
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	articleSvc := articles.NewService(articles.NewMemoryRepository())
	blockRepo := blocks.NewMemoryRepository()
	taxSvc := taxonomy.NewService(taxonomy.NewMemoryRepository())
	mediaSvc := media.NewService(media.NewMemoryRepository(), memblob.New())
	auth := &staticAuth{role: RoleEditor}

	api := NewAdminAPI(
		WithArticleService(articleSvc),
		WithBlockRepository(blockRepo),
		WithTaxonomyService(taxSvc),
		WithMediaService(mediaSvc),
		WithRenderer(render.NewHTMLRenderer(blocks.NewRegistry())),
		WithAuthProvider(auth),
	)

	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		t.Fatalf("register admin api: %v", err)
	}
	return &testEnv{mux: mux, articles: articleSvc, blocks: blockRepo, auth: auth}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) seedArticle(t *testing.T) *articles.Article {
	t.Helper()
	record, err := e.articles.Upsert(context.Background(), articles.UpsertInput{
		Title:    "Seeded Article",
		AuthorID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("seed article: %v", err)
	}
	return record
}

func TestArticleCreateAndGet(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/admin/api/articles", map[string]any{
		"title":     "Hello, World! 2024",
		"author_id": uuid.New().String(),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status %d: %s", rec.Code, rec.Body.String())
	}

	var created articles.Article
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.Slug != "hello-world-2024" {
		t.Fatalf("expected derived slug, got %q", created.Slug)
	}

	rec = env.do(t, http.MethodGet, "/admin/api/articles/hello-world-2024", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status %d", rec.Code)
	}
}

func TestArticleCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/admin/api/articles", map[string]any{
		"author_id": uuid.New().String(),
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing title, got %d", rec.Code)
	}
}

func TestArticleGetNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/admin/api/articles/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBlocksReplaceRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	article := env.seedArticle(t)

	payload := map[string]any{
		"blocks": []map[string]any{
			{"id": "temp-1", "type": "heading", "order": 0, "data": map[string]any{"content": "Title", "level": 2}},
			{"id": "temp-2", "type": "paragraph", "order": 1, "data": map[string]any{"content": "Body"}},
		},
	}
	rec := env.do(t, http.MethodPut, "/admin/api/articles/"+article.ID.String()+"/blocks", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("replace status %d: %s", rec.Code, rec.Body.String())
	}

	var response struct {
		Blocks []blocks.Block `json:"blocks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode blocks: %v", err)
	}
	if len(response.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(response.Blocks))
	}
	for i, block := range response.Blocks {
		if blocks.IsTempID(block.ID) {
			t.Fatalf("block %d kept temp id", i)
		}
	}

	heading, ok := response.Blocks[0].Data.(blocks.HeadingData)
	if !ok || heading.Content != "Title" {
		t.Fatalf("heading payload not decoded: %+v", response.Blocks[0].Data)
	}

	// Replacing with a shorter list drops the extra rows.
	rec = env.do(t, http.MethodPut, "/admin/api/articles/"+article.ID.String()+"/blocks", map[string]any{
		"blocks": []map[string]any{
			{"id": response.Blocks[0].ID, "type": "heading", "order": 0, "data": map[string]any{"content": "Only", "level": 2}},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("second replace status %d", rec.Code)
	}
	persisted, err := env.blocks.ListForArticle(context.Background(), article.ID)
	if err != nil {
		t.Fatalf("list persisted: %v", err)
	}
	if len(persisted) != 1 {
		t.Fatalf("replace-all should leave 1 row, got %d", len(persisted))
	}
}

func TestArticleRender(t *testing.T) {
	env := newTestEnv(t)
	article := env.seedArticle(t)

	if _, err := env.blocks.ReplaceForArticle(context.Background(), article.ID, []blocks.Block{
		{ID: "temp-1", Type: blocks.TypeHeading, Data: blocks.HeadingData{Content: "Headline", Level: 2}},
	}); err != nil {
		t.Fatalf("seed blocks: %v", err)
	}

	rec := env.do(t, http.MethodGet, "/admin/api/articles/"+article.ID.String()+"/render", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("render status %d", rec.Code)
	}
	var response struct {
		HTML string `json:"html"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode render: %v", err)
	}
	if response.HTML != "<h2>Headline</h2>" {
		t.Fatalf("unexpected html %q", response.HTML)
	}
}

func TestTaxonomyLinksEndpoint(t *testing.T) {
	env := newTestEnv(t)
	article := env.seedArticle(t)

	rec := env.do(t, http.MethodPut, "/admin/api/articles/"+article.ID.String()+"/tags", map[string]any{
		"tags": []string{"go", "news"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("tags status %d: %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/admin/api/tags", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list tags status %d", rec.Code)
	}
	var response struct {
		Tags []taxonomy.Tag `json:"tags"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode tags: %v", err)
	}
	if len(response.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(response.Tags))
	}
}

func TestMediaUploadAndDelete(t *testing.T) {
	env := newTestEnv(t)

	userID := uuid.New()
	rec := env.do(t, http.MethodPost, "/admin/api/media", map[string]any{
		"file_name": "photo.png",
		"mime_type": "image/png",
		"data":      "AQID",
		"alt_text":  "A newsroom at dusk",
		"caption":   "Night shift",
		"user_id":   userID.String(),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload status %d: %s", rec.Code, rec.Body.String())
	}
	var record media.Media
	if err := json.Unmarshal(rec.Body.Bytes(), &record); err != nil {
		t.Fatalf("decode media: %v", err)
	}
	if record.Size != 3 {
		t.Fatalf("expected size 3, got %d", record.Size)
	}
	if record.AltText == nil || *record.AltText != "A newsroom at dusk" {
		t.Fatalf("alt text not persisted: %+v", record.AltText)
	}
	if record.Caption == nil || *record.Caption != "Night shift" {
		t.Fatalf("caption not persisted: %+v", record.Caption)
	}
	if record.UserID != userID {
		t.Fatalf("user id not persisted: %s", record.UserID)
	}
	if record.UpdatedAt.IsZero() {
		t.Fatal("updated_at must be stamped on upload")
	}

	// Deleting requires the admin role.
	rec = env.do(t, http.MethodDelete, "/admin/api/media/"+record.ID.String(), nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("editor delete should be forbidden, got %d", rec.Code)
	}

	env.auth.role = RoleAdmin
	rec = env.do(t, http.MethodDelete, "/admin/api/media/"+record.ID.String(), nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("admin delete status %d", rec.Code)
	}
}

func TestRoleEnforcement(t *testing.T) {
	env := newTestEnv(t)
	env.auth.role = "viewer"

	rec := env.do(t, http.MethodGet, "/admin/api/articles", nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("viewer must be forbidden, got %d", rec.Code)
	}
}

func TestGeocodeNotConfigured(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/admin/api/geocode?q=Berlin", nil)
	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501 without geocoder, got %d", rec.Code)
	}
}

func TestMediaRoutesNotConfigured(t *testing.T) {
	api := NewAdminAPI(
		WithArticleService(articles.NewService(articles.NewMemoryRepository())),
		WithBlockRepository(blocks.NewMemoryRepository()),
		WithTaxonomyService(taxonomy.NewService(taxonomy.NewMemoryRepository())),
		WithRenderer(render.NewHTMLRenderer(blocks.NewRegistry())),
		WithAuthProvider(&staticAuth{role: RoleAdmin}),
	)
	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		t.Fatalf("register admin api: %v", err)
	}
	env := &testEnv{mux: mux}

	id := uuid.New().String()
	requests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin/api/media"},
		{http.MethodPost, "/admin/api/media"},
		{http.MethodGet, "/admin/api/media/" + id},
		{http.MethodDelete, "/admin/api/media/" + id},
	}
	for _, req := range requests {
		rec := env.do(t, req.method, req.path, nil)
		if rec.Code != http.StatusNotImplemented {
			t.Fatalf("%s %s without media service: expected 501, got %d", req.method, req.path, rec.Code)
		}
	}
}
