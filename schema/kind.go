package schema

// Kind names the declared JSON Schema type of a node. The zero value
// KindAny stands for an untyped node and emits no "type" keyword; it is
// also the only kind on which a BSON type override is legal.
type Kind string

const (
	KindAny     Kind = ""
	KindObject  Kind = "object"
	KindArray   Kind = "array"
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindNull    Kind = "null"
)
