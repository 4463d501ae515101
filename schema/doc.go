// Package schema provides a small builder DSL for describing document
// shapes and exporting them as Draft-4 style JSON Schema trees.
//
// Builders are assembled by chaining, in the usual way:
//
//	user := schema.Object().
//		Field("name", schema.String().MinLen(1)).
//		Field("age", schema.Int32().Min(0)).
//		Require("name")
//
// Export lowers a builder into a plain map[string]any tree. The tree is
// JSON-shaped (maps, []any slices, float64 bounds) and still carries the
// full Draft-4 vocabulary; converting it into the MongoDB dialect is the
// sanitize package's job, wired together by the root package.
package schema
