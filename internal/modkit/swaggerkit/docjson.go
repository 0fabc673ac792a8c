package swaggerkit

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"hangman/internal/platform/config"

	"gopkg.in/yaml.v3"
)

// SpecMutator lets modules tweak the parsed OpenAPI document before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// Register adds a spec mutator, call it from module wiring before Mount
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// Render parses a YAML OpenAPI document and returns it as JSON with the shared error shapes added
func Render(raw []byte, baseURL string) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("swaggerkit: parse: %w", err)
	}
	spec, ok := stringKeys(doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("swaggerkit: document is not a mapping")
	}

	ensureServers(spec, baseURL)
	if v := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
		if info, ok := spec["info"].(map[string]any); ok {
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + v
			}
		}
	}
	ensureErrorResponseDefinition(spec)
	addDefaultResponse(spec, "400", badRequest)
	addDefaultResponse(spec, "500", internalError)
	for _, m := range mutators {
		m(spec)
	}
	return json.Marshal(spec)
}

func serveDocJSON(raw []byte, baseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		body, err := Render(raw, baseURL)
		if err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(body)
	}
}

// stringKeys converts yaml mappings with non string keys (status codes) into JSON friendly maps
func stringKeys(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = stringKeys(e)
		}
		return x
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = stringKeys(e)
		}
		return out
	case []any:
		for i := range x {
			x[i] = stringKeys(x[i])
		}
		return x
	default:
		return v
	}
}

// ensureServers pins the document to OAS 3.0.3, the UI does not render 3.1
func ensureServers(spec map[string]any, url string) {
	if _, hasSwagger := spec["swagger"]; hasSwagger {
		delete(spec, "swagger")
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorResponseDefinition adds the error envelope schema if missing
func ensureErrorResponseDefinition(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

func errorExample(status int, text string, code int, msg, field string) map[string]any {
	ex := map[string]any{
		"status_code": status,
		"status":      text,
		"code":        code,
		"error":       msg,
		"request_id":  "579f33bf50b1/abc-000001",
	}
	if field != "" {
		ex["field"] = field
	}
	return map[string]any{
		"description": text,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": ex,
			},
		},
	}
}

var (
	badRequest    = errorExample(http.StatusBadRequest, "Bad Request", 8, "word bank name cannot be empty", "name")
	internalError = errorExample(http.StatusInternalServerError, "Internal Server Error", 1, "panic recovered", "")
)

// addDefaultResponse injects resp under code on every operation lacking it
func addDefaultResponse(spec map[string]any, code string, resp map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses[code]; !exists {
				responses[code] = resp
			}
		}
	}
}
