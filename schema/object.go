package schema

// Object returns an object schema node. Unknown fields are rejected by
// default: the exported node carries additionalProperties=false unless
// Open or AdditionalProperties overrides it.
func Object() *Schema {
	return &Schema{
		kind:     KindObject,
		fields:   map[string]*Schema{},
		required: map[string]struct{}{},
	}
}

// Map returns an object node whose entries all share one value schema,
// with arbitrary keys admitted.
func Map(value *Schema) *Schema {
	s := Object()
	s.additional = value
	return s
}

// Field registers a named field with its schema and returns the builder.
func (s *Schema) Field(name string, child *Schema) *Schema {
	if s.fields == nil {
		s.fields = map[string]*Schema{}
	}
	s.fields[name] = child
	return s
}

// Require marks one or more fields as required.
func (s *Schema) Require(names ...string) *Schema {
	if s.required == nil {
		s.required = map[string]struct{}{}
	}
	for _, n := range names {
		s.required[n] = struct{}{}
	}
	return s
}

// PatternProperty registers a schema for fields whose names match the
// given regular expression.
func (s *Schema) PatternProperty(pattern string, child *Schema) *Schema {
	if s.patterns == nil {
		s.patterns = map[string]*Schema{}
	}
	s.patterns[pattern] = child
	return s
}

// DependsOn records that when field is present, the listed fields must be
// present too.
func (s *Schema) DependsOn(field string, fields ...string) *Schema {
	if s.deps == nil {
		s.deps = map[string]any{}
	}
	s.deps[field] = fields
	return s
}

// DependentSchema records a schema the document must additionally satisfy
// when field is present.
func (s *Schema) DependentSchema(field string, child *Schema) *Schema {
	if s.deps == nil {
		s.deps = map[string]any{}
	}
	s.deps[field] = child
	return s
}

// AdditionalProperties sets the additionalProperties keyword explicitly.
// v may be a bool or a *Schema.
func (s *Schema) AdditionalProperties(v any) *Schema {
	s.additional = v
	return s
}

// Open admits unknown fields, shorthand for AdditionalProperties(true).
func (s *Schema) Open() *Schema {
	s.additional = true
	return s
}

// MinProps sets "minProperties".
func (s *Schema) MinProps(n int) *Schema {
	s.minProps = &n
	return s
}

// MaxProps sets "maxProperties".
func (s *Schema) MaxProps(n int) *Schema {
	s.maxProps = &n
	return s
}
