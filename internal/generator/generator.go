// Package generator renders structured values and string lists back to text.
package generator

import (
	"strings"

	json "github.com/go-json-experiment/json"
	"github.com/mcncl/flatjson/internal/errors"
	"github.com/mcncl/flatjson/internal/models"
)

// Serialize renders v as JSON. It returns an empty string if v cannot be
// rendered, so callers cannot tell a render failure from empty output.
func Serialize(v any) string {
	data, err := json.Marshal(v, json.Deterministic(true))
	if err != nil {
		return ""
	}
	return string(data)
}

// SerializeMap renders m as a JSON object with sorted keys.
//
// On failure the error text is returned in place of the JSON. Callers that
// need to tell the two apart should use SerializeMapResult or check that the
// output is a valid object.
func SerializeMap(m map[string]any) string {
	out, err := SerializeMapResult(m)
	if err != nil {
		return err.Error()
	}
	return out
}

// SerializeMapResult renders m as a JSON object with sorted keys.
func SerializeMapResult(m map[string]any) (string, error) {
	data, err := json.Marshal(m, json.Deterministic(true))
	if err != nil {
		return "", errors.NewRenderError("failed to render map", err)
	}
	return string(data), nil
}

// FlatMapToAny widens a flat map for SerializeMap.
func FlatMapToAny(m models.FlatMap) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// PackList joins pre-rendered value fragments into an array literal such as
// "[a,b,c]". Items are neither validated nor escaped. An empty list yields an
// empty string rather than "[]".
func PackList(items models.StringList) string {
	if len(items) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("[")
	buf.WriteString(strings.Join(items, ","))
	buf.WriteString("]")
	return buf.String()
}
