package sanitize

import (
	"encoding/json"
	"math"
)

// Stock numeric ranges recognized by the resolver, as float64 because that
// is how JSON numbers surface in Go. 2^63-1 is not representable in
// float64 and rounds up to 2^63, so Int64Max sits one past the true
// boundary; comparisons behave the same for every producer that round-trips
// bounds through JSON.
const (
	Int32Min float64 = -2147483648
	Int32Max float64 = 2147483647

	SafeIntMin float64 = -9007199254740991
	SafeIntMax float64 = 9007199254740991

	Int64Min float64 = -9.223372036854776e18
	Int64Max float64 = 9.223372036854776e18

	Float32Min float64 = -3.4028234663852886e38
	Float32Max float64 = 3.4028234663852886e38

	Float64Min float64 = -1.7976931348623157e308
	Float64Max float64 = 1.7976931348623157e308
)

// Type names produced by the resolver. All but TypeNumber are BSON aliases
// emitted under "bsonType"; the generic TypeNumber is not an alias and is
// emitted under "type" instead.
const (
	TypeInt    = "int"
	TypeLong   = "long"
	TypeDouble = "double"
	TypeNumber = "number"
	TypeBool   = "bool"
)

// resolveInteger maps a node declared "integer" onto the narrowest type
// name its bounds allow, removing bounds that only restate a stock range.
// Bounds beyond 64-bit reach fall back to the generic TypeNumber with the
// bounds left in place.
func resolveInteger(node map[string]any) string {
	min, hasMin := bound(node, "minimum")
	max, hasMax := bound(node, "maximum")
	if !hasMin {
		min = SafeIntMin
	}
	if !hasMax {
		max = SafeIntMax
	}
	switch {
	case !hasMin && !hasMax,
		min == Int32Min && max == Int32Max,
		min == SafeIntMin && max == SafeIntMax:
		delete(node, "minimum")
		delete(node, "maximum")
		if max <= Int32Max {
			return TypeInt
		}
		return TypeLong
	case min >= Int32Min && max <= Int32Max:
		if min == Int32Min {
			delete(node, "minimum")
		}
		if max == Int32Max {
			delete(node, "maximum")
		}
		return TypeInt
	case min >= Int64Min && max <= Int64Max:
		if min == SafeIntMin {
			delete(node, "minimum")
		}
		if max == SafeIntMax {
			delete(node, "maximum")
		}
		return TypeLong
	default:
		return TypeNumber
	}
}

// resolveNumber maps a node declared "number" onto TypeDouble when its
// bounds exactly restate a stock floating point range. The float32 pair is
// kept because it still narrows a double; the float64 pair is dropped as
// redundant. Any other combination stays generic with bounds untouched.
func resolveNumber(node map[string]any) string {
	min, hasMin := bound(node, "minimum")
	max, hasMax := bound(node, "maximum")
	if !hasMin || !hasMax {
		return TypeNumber
	}
	switch {
	case min == Float32Min && max == Float32Max:
		return TypeDouble
	case min == Float64Min && max == Float64Max:
		delete(node, "minimum")
		delete(node, "maximum")
		return TypeDouble
	default:
		return TypeNumber
	}
}

// bound reports presence of a bound keyword and its numeric value. A bound
// that is present but not numeric yields NaN, which fails every range
// comparison and so parks the node in the generic fallback with the odd
// value preserved.
func bound(node map[string]any, key string) (float64, bool) {
	v, ok := node[key]
	if !ok {
		return 0, false
	}
	f, ok := asFloat(v)
	if !ok {
		return math.NaN(), true
	}
	return f, true
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
