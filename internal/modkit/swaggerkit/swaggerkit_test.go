package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "hangman/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

const doc = `
openapi: 3.1.0
info: {title: Hangman API, version: "1"}
paths:
  /wordbanks:
    post:
      responses:
        201: {description: Created}
        400: {description: Custom}
`

func TestRender(t *testing.T) {
	t.Parallel()

	out, err := Render([]byte(doc), "/api/v1")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var spec map[string]any
	if err := json.Unmarshal(out, &spec); err != nil {
		t.Fatal(err)
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	servers := spec["servers"].([]any)
	if servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}
	resps := spec["paths"].(map[string]any)["/wordbanks"].(map[string]any)["post"].(map[string]any)["responses"].(map[string]any)
	if resps["400"].(map[string]any)["description"] != "Custom" {
		t.Fatal("existing 400 was overwritten")
	}
	if _, ok := resps["500"]; !ok {
		t.Fatal("500 not injected")
	}
	if _, ok := resps["201"]; !ok {
		t.Fatal("integer status key lost")
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatal("ErrorResponse schema missing")
	}
}

func TestRender_Rejects(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"paths: [", "- a\n- b\n"} {
		if _, err := Render([]byte(in), "/"); err == nil {
			t.Errorf("Render(%q) should fail", in)
		}
	}
}

func TestMount(t *testing.T) {
	t.Parallel()

	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), true, []byte(doc))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "application/json; charset=utf-8" {
		t.Fatalf("doc.json: %d %v", rec.Code, rec.Header())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect: %d", rec.Code)
	}

	off := chi.NewRouter()
	Mount(phttp.AdaptChi(off), false, []byte(doc))
	rec = httptest.NewRecorder()
	off.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled: %d", rec.Code)
	}
}
