package sanitize_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udohjeremiah/zod-to-mongo-schema/sanitize"
)

func TestSanitize_IntegerResolution(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want map[string]any
	}{
		{
			name: "custom bounds inside int32 keep their values",
			in:   map[string]any{"type": "integer", "minimum": -100.0, "maximum": 100.0},
			want: map[string]any{"bsonType": "int", "minimum": -100.0, "maximum": 100.0},
		},
		{
			name: "exact int32 range collapses to the alias",
			in:   map[string]any{"type": "integer", "minimum": sanitize.Int32Min, "maximum": sanitize.Int32Max},
			want: map[string]any{"bsonType": "int"},
		},
		{
			name: "exact safe integer range collapses to long",
			in:   map[string]any{"type": "integer", "minimum": sanitize.SafeIntMin, "maximum": sanitize.SafeIntMax},
			want: map[string]any{"bsonType": "long"},
		},
		{
			name: "no bounds defaults to long",
			in:   map[string]any{"type": "integer"},
			want: map[string]any{"bsonType": "long"},
		},
		{
			name: "lower bound only stays on long",
			in:   map[string]any{"type": "integer", "minimum": 0.0},
			want: map[string]any{"bsonType": "long", "minimum": 0.0},
		},
		{
			name: "upper bound only stays on long",
			in:   map[string]any{"type": "integer", "maximum": 100.0},
			want: map[string]any{"bsonType": "long", "maximum": 100.0},
		},
		{
			name: "explicit safe bound is dropped from long",
			in:   map[string]any{"type": "integer", "minimum": 0.0, "maximum": sanitize.SafeIntMax},
			want: map[string]any{"bsonType": "long", "minimum": 0.0},
		},
		{
			name: "int32 canonical bound is dropped from int",
			in:   map[string]any{"type": "integer", "minimum": sanitize.Int32Min, "maximum": 100.0},
			want: map[string]any{"bsonType": "int", "maximum": 100.0},
		},
		{
			name: "64-bit corner values stay as explicit bounds",
			in:   map[string]any{"type": "integer", "minimum": sanitize.Int64Min, "maximum": sanitize.Int64Max},
			want: map[string]any{"bsonType": "long", "minimum": sanitize.Int64Min, "maximum": sanitize.Int64Max},
		},
		{
			name: "bounds beyond 64-bit reach stay generic",
			in:   map[string]any{"type": "integer", "minimum": -1e19, "maximum": 1e19},
			want: map[string]any{"type": "number", "minimum": -1e19, "maximum": 1e19},
		},
		{
			name: "bsonType spelling of integer resolves the same way",
			in:   map[string]any{"bsonType": "integer", "minimum": -100.0, "maximum": 100.0},
			want: map[string]any{"bsonType": "int", "minimum": -100.0, "maximum": 100.0},
		},
		{
			name: "non numeric bound disables range analysis",
			in:   map[string]any{"type": "integer", "minimum": "zero"},
			want: map[string]any{"type": "number", "minimum": "zero"},
		},
		{
			name: "integer bounds decoded as Go ints",
			in:   map[string]any{"type": "integer", "minimum": -100, "maximum": 100},
			want: map[string]any{"bsonType": "int", "minimum": -100, "maximum": 100},
		},
		{
			name: "integer bounds decoded as json.Number",
			in:   map[string]any{"type": "integer", "minimum": json.Number("-100"), "maximum": json.Number("100")},
			want: map[string]any{"bsonType": "int", "minimum": json.Number("-100"), "maximum": json.Number("100")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize.Sanitize(tt.in))
		})
	}
}

func TestSanitize_NumberResolution(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want map[string]any
	}{
		{
			name: "float32 range upgrades to double and keeps its bounds",
			in:   map[string]any{"type": "number", "minimum": sanitize.Float32Min, "maximum": sanitize.Float32Max},
			want: map[string]any{"bsonType": "double", "minimum": sanitize.Float32Min, "maximum": sanitize.Float32Max},
		},
		{
			name: "float64 range upgrades to double and drops its bounds",
			in:   map[string]any{"type": "number", "minimum": sanitize.Float64Min, "maximum": sanitize.Float64Max},
			want: map[string]any{"bsonType": "double"},
		},
		{
			name: "bare number keeps the generic designation",
			in:   map[string]any{"type": "number"},
			want: map[string]any{"type": "number"},
		},
		{
			name: "partial bound stays generic and is preserved",
			in:   map[string]any{"type": "number", "minimum": 0.5},
			want: map[string]any{"type": "number", "minimum": 0.5},
		},
		{
			name: "custom bounds stay generic",
			in:   map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			want: map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		{
			name: "generic alias moves back under type",
			in:   map[string]any{"bsonType": "number"},
			want: map[string]any{"type": "number"},
		},
		{
			name: "multipleOf rides along untouched",
			in:   map[string]any{"type": "number", "multipleOf": 0.01},
			want: map[string]any{"type": "number", "multipleOf": 0.01},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize.Sanitize(tt.in))
		})
	}
}

func TestSanitize_OtherKinds(t *testing.T) {
	assert.Equal(t, map[string]any{"bsonType": "bool"},
		sanitize.Sanitize(map[string]any{"type": "boolean"}),
		"boolean converts to the bool alias")
	assert.Equal(t, map[string]any{"type": "string", "minLength": 1.0},
		sanitize.Sanitize(map[string]any{"type": "string", "minLength": 1.0}),
		"non numeric kinds pass through")
	assert.Equal(t, map[string]any{"bsonType": "objectId"},
		sanitize.Sanitize(map[string]any{"bsonType": "objectId"}),
		"explicit BSON aliases are left alone")
}

// Resolution must leave exactly one designation on a node, never both
// "type" and "bsonType".
func TestSanitize_SingleDesignation(t *testing.T) {
	fixtures := []map[string]any{
		{"type": "integer"},
		{"type": "integer", "minimum": -100.0, "maximum": 100.0},
		{"type": "integer", "minimum": -1e19},
		{"type": "number"},
		{"type": "number", "minimum": sanitize.Float64Min, "maximum": sanitize.Float64Max},
		{"type": "boolean"},
		{"bsonType": "number"},
		{"bsonType": "integer"},
	}
	for _, in := range fixtures {
		got, ok := sanitize.Sanitize(in).(map[string]any)
		require.True(t, ok, "sanitizing %v must produce a composite", in)
		_, hasType := got["type"]
		_, hasAlias := got["bsonType"]
		assert.False(t, hasType && hasAlias, "node %v resolved to both designations: %v", in, got)
		assert.True(t, hasType || hasAlias, "node %v lost its designation: %v", in, got)
	}
}
