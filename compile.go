package mongoschema

import (
	"bytes"

	json "github.com/goccy/go-json"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/udohjeremiah/zod-to-mongo-schema/i18n"
)

// compileCheck runs a decoded schema tree through a Draft-4 compiler.
// It catches structurally broken input, such as malformed pattern
// regexes or keyword values of the wrong shape, before conversion.
// Dialect-only keywords like bsonType are unknown to the compiler and
// pass through unremarked.
func compileCheck(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return Issues{{Path: "/", Code: CodeInvalidSchema, Message: "schema is not JSON encodable", Cause: err}}
	}
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft4
	if err := c.AddResource("schema.json", bytes.NewReader(data)); err != nil {
		return Issues{{Path: "/", Code: CodeInvalidSchema, Message: i18n.T(CodeInvalidSchema, nil), Cause: err}}
	}
	if _, err := c.Compile("schema.json"); err != nil {
		return Issues{{Path: "/", Code: CodeInvalidSchema, Message: i18n.T(CodeInvalidSchema, nil), Cause: err}}
	}
	return nil
}
