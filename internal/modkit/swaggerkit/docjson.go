//go:build swag

package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"searchgov/internal/platform/config"

	docs "searchgov/internal/services/api/docs"
)

// SpecMutator lets modules tweak the parsed swagger spec before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// docReader is a seam so tests can inject invalid JSON without patching swagger
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a spec mutator for swagger JSON, call it from module init
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// serveDocJSON parses the generated spec, applies fixups and mutators, and serves it
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		normalizeOpenAPI(spec, "/api/v1")
		retitle(spec)
		ensureErrorSchema(spec)
		injectFailureResponses(spec)

		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// normalizeOpenAPI lifts swagger 2 output to OAS3 and pins 3.1 down to 3.0.3,
// the UI cannot render 3.1 yet. Also sets the servers base url
func normalizeOpenAPI(spec map[string]any, base string) {
	if _, isV2 := spec["swagger"]; isV2 {
		delete(spec, "swagger")
		spec["openapi"] = "3.0.3"
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": base}}
	}
}

// retitle appends CORE_API_DOCS_TITLE_SUFFIX to the spec title when set,
// handy to tell staging and prod apart in the UI
func retitle(spec map[string]any) {
	suffix := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", "")
	if suffix == "" {
		return
	}
	info, ok := spec["info"].(map[string]any)
	if !ok {
		return
	}
	if title, ok := info["title"].(string); ok {
		info["title"] = title + " " + suffix
	}
}

// ensureErrorSchema adds the standard error envelope model if the generator missed it
func ensureErrorSchema(spec map[string]any) {
	comps := subMap(spec, "components")
	schemas := subMap(comps, "schemas")
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
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// injectFailureResponses gives every operation a 400 and 500 unless it declares its own
func injectFailureResponses(spec map[string]any) {
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
			resps, ok := op["responses"].(map[string]any)
			if !ok {
				resps = map[string]any{}
				op["responses"] = resps
			}
			if _, exists := resps["400"]; !exists {
				resps["400"] = errorResponse(400, "Bad Request", 8, "query is required")
			}
			if _, exists := resps["500"]; !exists {
				resps["500"] = errorResponse(500, "Internal Server Error", 1, "panic recovered")
			}
		}
	}
}

func errorResponse(status int, text string, code int, msg string) map[string]any {
	return map[string]any{
		"description": text,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      text,
					"code":        code,
					"error":       msg,
					"request_id":  "579f33bf50b1/abc-000001",
				},
			},
		},
	}
}

func subMap(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	v := map[string]any{}
	m[key] = v
	return v
}
