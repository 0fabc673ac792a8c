// Package swaggerkit serves the OpenAPI document and the Swagger UI
package swaggerkit

import (
	"net/http"

	phttp "hangman/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount serves doc (YAML) at /api/docs/doc.json and the UI under /api/docs/ when enabled
func Mount(r phttp.Router, enabled bool, doc []byte) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(doc, "/api/v1"))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
