package mongoschema

import (
	"bytes"

	json "github.com/goccy/go-json"

	"github.com/udohjeremiah/zod-to-mongo-schema/i18n"
	"github.com/udohjeremiah/zod-to-mongo-schema/sanitize"
	"github.com/udohjeremiah/zod-to-mongo-schema/schema"
)

// Convert lowers a schema builder into a document for MongoDB's
// $jsonSchema operator. Every exported node passes ValidateNode on the
// way out; a validation failure aborts the conversion with Issues and no
// partial document.
func Convert(s *schema.Schema, opts ...ConvertOpt) (map[string]any, error) {
	opt := pickOpt(opts)
	raw, err := schema.Export(s, schema.ExportOpt{Hook: conversionHook(opt.Hook)})
	if err != nil {
		return nil, err
	}
	if opt.CompileCheck {
		if err := compileCheck(raw); err != nil {
			return nil, err
		}
	}
	return sanitize.Document(raw), nil
}

// MustConvert is Convert panicking on error, for statically known schemas.
func MustConvert(s *schema.Schema, opts ...ConvertOpt) map[string]any {
	doc, err := Convert(s, opts...)
	if err != nil {
		panic(err)
	}
	return doc
}

// FromValue sanitizes an already decoded schema tree. Nil input and
// values with no document form yield an empty document. The tree is
// handled permissively: nothing here fails, unsupported keywords are
// simply dropped.
func FromValue(v any) map[string]any {
	return sanitize.Document(v)
}

// FromJSON decodes a JSON schema document and sanitizes it. Empty input
// and a JSON null yield an empty document.
func FromJSON(data []byte, opts ...ConvertOpt) (map[string]any, error) {
	opt := pickOpt(opts)
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err, Params: map[string]any{"format": "json"}}}
	}
	if opt.CompileCheck {
		if err := compileCheck(v); err != nil {
			return nil, err
		}
	}
	return sanitize.Document(v), nil
}

// conversionHook wraps the user hook with the built-in designation
// checks. The checks run first so a user hook only ever sees nodes that
// already satisfy them.
func conversionHook(user schema.Hook) schema.Hook {
	return func(path string, s *schema.Schema, raw map[string]any) error {
		if err := ValidateNode(path, s, raw); err != nil {
			return err
		}
		if user != nil {
			return user(path, s, raw)
		}
		return nil
	}
}

// ValidateNode enforces the designation rules for one exported node: a
// BSON type override is only legal on untyped nodes, and a node must not
// carry both "type" and "bsonType". Convert applies it to every node;
// it is exported for callers driving schema.Export directly.
func ValidateNode(path string, s *schema.Schema, raw map[string]any) error {
	_, hasAlias := raw["bsonType"]
	if !hasAlias {
		return nil
	}
	if s.Kind() != schema.KindAny {
		return Issues{{
			Path:    path,
			Code:    CodeSubtypeMisuse,
			Message: i18n.T(CodeSubtypeMisuse, nil),
			Hint:    "declare the node as Any() before attaching a BSON alias",
			Params:  map[string]any{"kind": string(s.Kind()), "bsonType": raw["bsonType"]},
		}}
	}
	if _, hasType := raw["type"]; hasType {
		return Issues{{
			Path:    path,
			Code:    CodeDualDesignation,
			Message: i18n.T(CodeDualDesignation, nil),
			Params:  map[string]any{"type": raw["type"], "bsonType": raw["bsonType"]},
		}}
	}
	return nil
}
