// Package mongoschema converts JSON Schema documents into the dialect
// MongoDB accepts under the $jsonSchema operator.
//
// Schemas enter the conversion one of two ways: as typed builders from
// the schema package, or as already decoded Draft-4 trees. Builders are
// validated node by node on the way out (BSON alias placement, single
// designation); decoded trees are handled permissively, with unsupported
// keywords dropped rather than rejected.
//
// Quick start with builders:
//
//	user := schema.Object().
//		Field("_id", schema.ObjectID()).
//		Field("name", schema.String().MinLen(1)).
//		Field("age", schema.Int32().Min(0)).
//		Require("name")
//
//	doc, err := mongoschema.Convert(user)
//	// doc["properties"].(map[string]any)["age"] is
//	// map[string]any{"bsonType": "int", "minimum": 0.0}
//
// Converting an existing schema document:
//
//	doc, err := mongoschema.FromJSON(data)
//
// The result is a plain map[string]any ready for the mongodb package,
// which wraps it in a $jsonSchema validator and attaches it to a
// collection. MarshalCanonical renders a conversion result in a
// byte-stable form when documents need to be compared or digested.
//
// Integer and number declarations collapse onto BSON numeric aliases
// during conversion: bounds matching a stock range select "int", "long"
// or "double" and redundant bounds are elided, while unrecognized ranges
// keep the generic "number" designation. The exact rules live in the
// sanitize package.
package mongoschema
