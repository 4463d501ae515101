package schema

import (
	"github.com/udohjeremiah/zod-to-mongo-schema/sanitize"
)

// String returns a string schema node.
func String() *Schema { return &Schema{kind: KindString} }

// Bool returns a boolean schema node.
func Bool() *Schema { return &Schema{kind: KindBoolean} }

// Null returns a node admitting only null.
func Null() *Schema { return &Schema{kind: KindNull} }

// Any returns an untyped node that matches anything. It is the base for
// explicit BSON aliases such as ObjectID.
func Any() *Schema { return &Schema{kind: KindAny} }

// Int returns an integer node bounded to the safe integer range, the
// widest range a double-based producer can represent exactly. It
// converts to the 64-bit alias.
func Int() *Schema {
	return Int64().Min(sanitize.SafeIntMin).Max(sanitize.SafeIntMax)
}

// Int32 returns an integer node bounded to 32 bits. It converts to the
// "int" alias with the stock bounds elided.
func Int32() *Schema {
	return Int64().Min(sanitize.Int32Min).Max(sanitize.Int32Max)
}

// Int64 returns an unbounded integer node. It converts to the "long"
// alias.
func Int64() *Schema { return &Schema{kind: KindInteger} }

// Float32 returns a number node bounded to the float32 range. It converts
// to the "double" alias with the bounds kept.
func Float32() *Schema {
	return Number().Min(sanitize.Float32Min).Max(sanitize.Float32Max)
}

// Float64 returns a number node bounded to the float64 range. It converts
// to the "double" alias with the redundant bounds elided.
func Float64() *Schema {
	return Number().Min(sanitize.Float64Min).Max(sanitize.Float64Max)
}

// Number returns a generic number node. Without a recognized stock range
// it stays on the generic "number" designation after conversion.
func Number() *Schema { return &Schema{kind: KindNumber} }

// Enum returns an untyped node restricted to the given values.
func Enum(vals ...any) *Schema {
	s := &Schema{kind: KindAny}
	return s.Enum(vals...)
}

// ObjectID returns a node for MongoDB ObjectId values.
func ObjectID() *Schema { return Any().BSONType("objectId") }

// Date returns a node for BSON date values.
func Date() *Schema { return Any().BSONType("date") }

// Decimal returns a node for BSON Decimal128 values.
func Decimal() *Schema { return Any().BSONType("decimal") }
