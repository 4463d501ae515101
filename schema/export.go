package schema

import (
	"sort"
	"strconv"
	"strings"
)

// Hook observes every exported node right after its raw tree has been
// built and before the parent consumes it. path is a JSON Pointer to the
// node and raw may be adjusted in place. A non-nil error aborts the whole
// export with no partial result.
type Hook func(path string, s *Schema, raw map[string]any) error

// ExportOpt configures Export. When several options are given the last
// one wins.
type ExportOpt struct {
	Hook Hook
}

// Export lowers a builder into a Draft-4 style map tree. A nil schema
// exports as the empty map.
func Export(s *Schema, opts ...ExportOpt) (map[string]any, error) {
	var opt ExportOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return exportNode(s, "/", opt)
}

// MustExport is Export panicking on error, for tests and package-level
// initialization.
func MustExport(s *Schema, opts ...ExportOpt) map[string]any {
	doc, err := Export(s, opts...)
	if err != nil {
		panic(err)
	}
	return doc
}

func exportNode(s *Schema, path string, opt ExportOpt) (map[string]any, error) {
	raw := map[string]any{}
	if s == nil {
		return raw, nil
	}
	if s.kind != KindAny {
		if s.nullable {
			raw["type"] = []any{string(s.kind), "null"}
		} else {
			raw["type"] = string(s.kind)
		}
	}
	if s.bsonType != "" {
		raw["bsonType"] = s.bsonType
	}

	if err := s.exportObject(raw, path, opt); err != nil {
		return nil, err
	}
	if err := s.exportArray(raw, path, opt); err != nil {
		return nil, err
	}
	s.exportScalars(raw)
	if err := s.exportComposition(raw, path, opt); err != nil {
		return nil, err
	}

	for k, v := range s.meta {
		raw[k] = v
	}
	if opt.Hook != nil {
		if err := opt.Hook(path, s, raw); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

func (s *Schema) exportObject(raw map[string]any, path string, opt ExportOpt) error {
	if s.kind != KindObject {
		return nil
	}
	if len(s.fields) > 0 {
		props := map[string]any{}
		for _, name := range sortedKeys(s.fields) {
			child, err := exportNode(s.fields[name], childPath(path, "properties", name), opt)
			if err != nil {
				return err
			}
			props[name] = child
		}
		raw["properties"] = props
	}
	if len(s.required) > 0 {
		names := sortedKeys(s.required)
		req := make([]any, len(names))
		for i, n := range names {
			req[i] = n
		}
		raw["required"] = req
	}
	if len(s.patterns) > 0 {
		pats := map[string]any{}
		for _, p := range sortedKeys(s.patterns) {
			child, err := exportNode(s.patterns[p], childPath(path, "patternProperties", p), opt)
			if err != nil {
				return err
			}
			pats[p] = child
		}
		raw["patternProperties"] = pats
	}
	if len(s.deps) > 0 {
		deps := map[string]any{}
		for _, name := range sortedKeys(s.deps) {
			switch d := s.deps[name].(type) {
			case []string:
				vals := make([]any, len(d))
				for i, f := range d {
					vals[i] = f
				}
				deps[name] = vals
			case *Schema:
				child, err := exportNode(d, childPath(path, "dependencies", name), opt)
				if err != nil {
					return err
				}
				deps[name] = child
			}
		}
		raw["dependencies"] = deps
	}
	switch ap := s.additional.(type) {
	case nil:
		raw["additionalProperties"] = false
	case bool:
		raw["additionalProperties"] = ap
	case *Schema:
		child, err := exportNode(ap, childPath(path, "additionalProperties"), opt)
		if err != nil {
			return err
		}
		raw["additionalProperties"] = child
	}
	if s.minProps != nil {
		raw["minProperties"] = *s.minProps
	}
	if s.maxProps != nil {
		raw["maxProperties"] = *s.maxProps
	}
	return nil
}

func (s *Schema) exportArray(raw map[string]any, path string, opt ExportOpt) error {
	if s.kind != KindArray {
		return nil
	}
	switch {
	case len(s.tuple) > 0:
		items := make([]any, len(s.tuple))
		for i, t := range s.tuple {
			child, err := exportNode(t, childPath(path, "items", strconv.Itoa(i)), opt)
			if err != nil {
				return err
			}
			items[i] = child
		}
		raw["items"] = items
		switch ai := s.additionalItems.(type) {
		case nil:
			raw["additionalItems"] = false
		case bool:
			raw["additionalItems"] = ai
		case *Schema:
			child, err := exportNode(ai, childPath(path, "additionalItems"), opt)
			if err != nil {
				return err
			}
			raw["additionalItems"] = child
		}
	case s.items != nil:
		child, err := exportNode(s.items, childPath(path, "items"), opt)
		if err != nil {
			return err
		}
		raw["items"] = child
	}
	if s.minItems != nil {
		raw["minItems"] = *s.minItems
	}
	if s.maxItems != nil {
		raw["maxItems"] = *s.maxItems
	}
	if s.unique {
		raw["uniqueItems"] = true
	}
	return nil
}

func (s *Schema) exportScalars(raw map[string]any) {
	if s.min != nil {
		raw["minimum"] = *s.min
	}
	if s.max != nil {
		raw["maximum"] = *s.max
	}
	if s.exclMin {
		raw["exclusiveMinimum"] = true
	}
	if s.exclMax {
		raw["exclusiveMaximum"] = true
	}
	if s.multipleOf != nil {
		raw["multipleOf"] = *s.multipleOf
	}
	if s.minLen != nil {
		raw["minLength"] = *s.minLen
	}
	if s.maxLen != nil {
		raw["maxLength"] = *s.maxLen
	}
	if s.pattern != "" {
		raw["pattern"] = s.pattern
	}
	if s.format != "" {
		raw["format"] = s.format
	}
	if s.title != "" {
		raw["title"] = s.title
	}
	if s.desc != "" {
		raw["description"] = s.desc
	}
}

func (s *Schema) exportComposition(raw map[string]any, path string, opt ExportOpt) error {
	if len(s.enum) > 0 {
		raw["enum"] = append([]any{}, s.enum...)
	}
	groups := []struct {
		key      string
		variants []*Schema
	}{
		{"oneOf", s.oneOf},
		{"anyOf", s.anyOf},
		{"allOf", s.allOf},
	}
	for _, g := range groups {
		if len(g.variants) == 0 {
			continue
		}
		out := make([]any, len(g.variants))
		for i, v := range g.variants {
			child, err := exportNode(v, childPath(path, g.key, strconv.Itoa(i)), opt)
			if err != nil {
				return err
			}
			out[i] = child
		}
		raw[g.key] = out
	}
	if s.not != nil {
		child, err := exportNode(s.not, childPath(path, "not"), opt)
		if err != nil {
			return err
		}
		raw["not"] = child
	}
	return nil
}

// childPath extends a JSON Pointer with tokens, escaping "~" and "/" per
// RFC 6901.
func childPath(base string, tokens ...string) string {
	var b strings.Builder
	if base != "/" {
		b.WriteString(base)
	}
	for _, tok := range tokens {
		b.WriteByte('/')
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(tok, "~", "~0"), "/", "~1"))
	}
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
