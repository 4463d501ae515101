package mongoschema

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/udohjeremiah/zod-to-mongo-schema/i18n"
	"github.com/udohjeremiah/zod-to-mongo-schema/sanitize"
)

// FromYAML decodes a YAML schema document and sanitizes it. YAML shapes
// are normalized to their JSON equivalents first: mapping keys become
// strings and composites are rebuilt. Empty input and a bare null yield
// an empty document.
func FromYAML(data []byte, opts ...ConvertOpt) (map[string]any, error) {
	opt := pickOpt(opts)
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err, Params: map[string]any{"format": "yaml"}}}
	}
	v = normalizeYAML(v)
	if opt.CompileCheck {
		if err := compileCheck(v); err != nil {
			return nil, err
		}
	}
	return sanitize.Document(v), nil
}

// normalizeYAML rebuilds a decoded YAML value into JSON-shaped Go values.
// yaml.v3 already favors map[string]any, but nested mappings with
// non-string keys still surface as map[any]any.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalizeYAML(item)
		}
		return out
	default:
		return v
	}
}
