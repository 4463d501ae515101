package schema

// Array returns an array node whose elements all match item.
func Array(item *Schema) *Schema {
	return &Schema{kind: KindArray, items: item}
}

// Tuple returns an array node with one schema per position. Elements
// beyond the listed positions are rejected unless AdditionalItems
// overrides that.
func Tuple(items ...*Schema) *Schema {
	return &Schema{kind: KindArray, tuple: items}
}

// AdditionalItems sets the additionalItems keyword for tuple nodes.
// v may be a bool or a *Schema.
func (s *Schema) AdditionalItems(v any) *Schema {
	s.additionalItems = v
	return s
}

// MinItems sets "minItems".
func (s *Schema) MinItems(n int) *Schema {
	s.minItems = &n
	return s
}

// MaxItems sets "maxItems".
func (s *Schema) MaxItems(n int) *Schema {
	s.maxItems = &n
	return s
}

// UniqueItems requires array elements to be pairwise distinct.
func (s *Schema) UniqueItems() *Schema {
	s.unique = true
	return s
}

// OneOf returns a node matching exactly one of the variants.
func OneOf(variants ...*Schema) *Schema {
	return &Schema{kind: KindAny, oneOf: variants}
}

// AnyOf returns a node matching at least one of the variants.
func AnyOf(variants ...*Schema) *Schema {
	return &Schema{kind: KindAny, anyOf: variants}
}

// AllOf returns a node matching every one of the variants.
func AllOf(variants ...*Schema) *Schema {
	return &Schema{kind: KindAny, allOf: variants}
}

// Not returns a node matching anything the inner schema does not.
func Not(inner *Schema) *Schema {
	return &Schema{kind: KindAny, not: inner}
}
