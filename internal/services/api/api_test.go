package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"hangman/internal/platform/config"
	phttp "hangman/internal/platform/net/http"
	"hangman/internal/platform/store"
	"hangman/internal/platform/testkit/dbtest"
)

func mount(t *testing.T, swagger bool) http.Handler {
	t.Helper()
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), Options{
		Config:        config.New(),
		Store:         &store.Store{PG: &dbtest.Tx{}},
		EnableSwagger: swagger,
	})
	return mux
}

func TestMount_Routes(t *testing.T) {
	t.Parallel()

	h := mount(t, true)
	cases := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/api/v1/meta/health", "", http.StatusOK},
		{http.MethodGet, "/api/v1/meta/extractor", "", http.StatusOK},
		{http.MethodGet, "/api/v1/wordbanks/defaults", "", http.StatusOK},
		{http.MethodPost, "/api/v1/wordbanks/preview", `{"input":"ocean, river"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/users/me/stats", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/games", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/wordbanks", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/users/register", `{"email":"a@example.com"}`, http.StatusUnauthorized},
		{http.MethodGet, "/api/docs/doc.json", "", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Errorf("%s %s = %d, want %d: %s", tc.method, tc.path, rec.Code, tc.want, rec.Body.String())
		}
	}
}

func TestMount_DocDescribesEveryModule(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	mount(t, true).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	var doc struct {
		OpenAPI string         `json:"openapi"`
		Paths   map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode doc: %v", err)
	}
	if doc.OpenAPI != "3.0.3" {
		t.Fatalf("openapi = %q", doc.OpenAPI)
	}
	for _, p := range []string{"/meta/ready", "/users/register", "/games", "/wordbanks/{id}", "/wordbanks/play"} {
		if _, ok := doc.Paths[p]; !ok {
			t.Errorf("doc is missing %s", p)
		}
	}
}

func TestMount_SwaggerOff(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	mount(t, false).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("doc with swagger off = %d", rec.Code)
	}
}
