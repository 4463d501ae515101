package schema

// Schema is a mutable builder for one schema node. Constructors in this
// package allocate a node of a fixed Kind; chaining methods refine it and
// return the same node. A nil *Schema is a valid input to Export and
// stands for the empty schema.
type Schema struct {
	kind     Kind
	nullable bool
	bsonType string

	// object
	fields     map[string]*Schema
	required   map[string]struct{}
	patterns   map[string]*Schema
	deps       map[string]any // []string or *Schema per entry
	additional any            // bool or *Schema; nil means the kind default
	minProps   *int
	maxProps   *int

	// array
	items           *Schema
	tuple           []*Schema
	additionalItems any // bool or *Schema; nil means the kind default
	minItems        *int
	maxItems        *int
	unique          bool

	// string
	minLen  *int
	maxLen  *int
	pattern string
	format  string

	// numeric
	min        *float64
	max        *float64
	exclMin    bool
	exclMax    bool
	multipleOf *float64

	// composition
	enum  []any
	oneOf []*Schema
	anyOf []*Schema
	allOf []*Schema
	not   *Schema

	// annotations and overrides
	title string
	desc  string
	meta  map[string]any
}

// Kind reports the declared kind of the node.
func (s *Schema) Kind() Kind {
	if s == nil {
		return KindAny
	}
	return s.kind
}

// Title sets the "title" annotation.
func (s *Schema) Title(t string) *Schema {
	s.title = t
	return s
}

// Description sets the "description" annotation.
func (s *Schema) Description(d string) *Schema {
	s.desc = d
	return s
}

// Min sets the inclusive lower bound for numeric nodes.
func (s *Schema) Min(v float64) *Schema {
	s.min = &v
	return s
}

// Max sets the inclusive upper bound for numeric nodes.
func (s *Schema) Max(v float64) *Schema {
	s.max = &v
	return s
}

// ExclusiveMin marks the lower bound as exclusive, Draft-4 style.
func (s *Schema) ExclusiveMin() *Schema {
	s.exclMin = true
	return s
}

// ExclusiveMax marks the upper bound as exclusive, Draft-4 style.
func (s *Schema) ExclusiveMax() *Schema {
	s.exclMax = true
	return s
}

// MultipleOf constrains numeric nodes to multiples of v.
func (s *Schema) MultipleOf(v float64) *Schema {
	s.multipleOf = &v
	return s
}

// MinLen sets "minLength" for string nodes.
func (s *Schema) MinLen(n int) *Schema {
	s.minLen = &n
	return s
}

// MaxLen sets "maxLength" for string nodes.
func (s *Schema) MaxLen(n int) *Schema {
	s.maxLen = &n
	return s
}

// Pattern sets the "pattern" regular expression for string nodes.
func (s *Schema) Pattern(re string) *Schema {
	s.pattern = re
	return s
}

// Format sets the "format" annotation. The MongoDB dialect has no format
// keyword, so it survives only until sanitization; it is still useful when
// the exported tree feeds other consumers.
func (s *Schema) Format(f string) *Schema {
	s.format = f
	return s
}

// Enum restricts the node to the given values.
func (s *Schema) Enum(vals ...any) *Schema {
	s.enum = append(s.enum, vals...)
	return s
}

// Nullable widens the declared kind to also admit null, exporting the
// Draft-4 two-element type list.
func (s *Schema) Nullable() *Schema {
	s.nullable = true
	return s
}

// BSONType sets an explicit BSON type alias on the node. Only untyped
// nodes may carry one; the conversion entry points reject other kinds.
func (s *Schema) BSONType(alias string) *Schema {
	s.bsonType = alias
	return s
}

// Meta attaches raw key/value overrides, given as alternating pairs. They
// are merged into the exported node last, so a caller-provided value wins
// over anything derived from the builder. A trailing key without a value
// is ignored.
func (s *Schema) Meta(kv ...any) *Schema {
	if s.meta == nil {
		s.meta = map[string]any{}
	}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		s.meta[key] = kv[i+1]
	}
	return s
}
