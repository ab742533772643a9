package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mcncl/flatjson/internal/config"
	"github.com/mcncl/flatjson/internal/errors"
	"github.com/mcncl/flatjson/internal/generator"
	"github.com/mcncl/flatjson/internal/models"
	"gopkg.in/yaml.v3"
)

// Formatter renders flat maps for output
type Formatter struct{}

// NewFormatter creates a new Formatter instance
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format renders m in the given output format: json, yaml or kv.
// Keys are always emitted in sorted order.
func (f *Formatter) Format(m models.FlatMap, format string) (string, error) {
	switch format {
	case config.FormatJSON, "":
		return generator.SerializeMapResult(generator.FlatMapToAny(m))
	case config.FormatYAML:
		return f.formatYAML(m)
	case config.FormatKV:
		return f.formatKV(m), nil
	default:
		return "", errors.NewRenderError(fmt.Sprintf("unknown output format '%s'", format), errors.ErrUnknownFormat)
	}
}

func (f *Formatter) formatYAML(m models.FlatMap) (string, error) {
	data, err := yaml.Marshal(map[string]string(m))
	if err != nil {
		return "", errors.NewRenderError("failed to render YAML", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// formatKV writes one key=value line per entry
func (f *Formatter) formatKV(m models.FlatMap) string {
	keys := m.Keys()
	sort.Strings(keys)

	var buf strings.Builder
	for i, k := range keys {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(k)
		buf.WriteString("=")
		buf.WriteString(m[k])
	}
	return buf.String()
}
