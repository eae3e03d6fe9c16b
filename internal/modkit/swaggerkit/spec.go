package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"meteopage/internal/modkit/httpkit"
	"meteopage/internal/services/web/docs"
)

// docReader is a seam so tests can feed a broken document
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

type object = map[string]any

// prepare turns the generated document into what the UI is served
// it pins OAS 3.0.3 since the UI cannot render 3.1, points servers at the API scope
// and gives every operation the shared 500 and 502 envelopes it does not declare itself
func prepare(raw, titleSuffix string) ([]byte, error) {
	var spec object
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		return nil, err
	}

	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{object{"url": httpkit.APIV1}}
	}
	if info, ok := spec["info"].(object); ok && titleSuffix != "" {
		if title, ok := info["title"].(string); ok {
			info["title"] = title + " " + titleSuffix
		}
	}

	child(child(spec, "components"), "schemas")["ErrorResponse"] = errorSchema
	defaults := map[string]object{
		"500": errorExample(http.StatusInternalServerError, 1, "panic recovered"),
		"502": errorExample(http.StatusBadGateway, 9, "open-meteo: Latitude must be in range of -90 to 90°"),
	}
	for _, item := range objects(spec["paths"]) {
		for _, op := range objects(item) {
			responses := child(op, "responses")
			for status, resp := range defaults {
				if _, declared := responses[status]; !declared {
					responses[status] = resp
				}
			}
		}
	}
	return json.Marshal(spec)
}

// child returns m[key] as an object, creating it when absent
func child(m object, key string) object {
	c, ok := m[key].(object)
	if !ok {
		c = object{}
		m[key] = c
	}
	return c
}

// objects lists the object values of v, anything else yields nothing
func objects(v any) []object {
	m, _ := v.(object)
	out := make([]object, 0, len(m))
	for _, x := range m {
		if o, ok := x.(object); ok {
			out = append(out, o)
		}
	}
	return out
}

var errorSchema = object{
	"type":        "object",
	"description": "Standard error response",
	"properties": object{
		"status_code": object{"type": "integer", "format": "int32"},
		"status":      object{"type": "string"},
		"code":        object{"type": "integer", "format": "int32"},
		"error":       object{"type": "string"},
		"request_id":  object{"type": "string"},
	},
	"required": []any{"status_code", "status"},
}

func errorExample(status, code int, msg string) object {
	return object{
		"description": http.StatusText(status),
		"content": object{
			"application/json": object{
				"schema": object{"$ref": "#/components/schemas/ErrorResponse"},
				"example": object{
					"status_code": status,
					"status":      http.StatusText(status),
					"code":        code,
					"error":       msg,
					"request_id":  "meteopage/abc-000001",
				},
			},
		},
	}
}
