package mongoschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mongoschema "github.com/udohjeremiah/zod-to-mongo-schema"
)

func TestMarshal(t *testing.T) {
	data, err := mongoschema.Marshal(map[string]any{"bsonType": "long"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"bsonType":"long"}`, string(data))

	pretty, err := mongoschema.MarshalIndent(map[string]any{"bsonType": "long"})
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n")
	assert.JSONEq(t, `{"bsonType":"long"}`, string(pretty))
}

func TestMarshalCanonical(t *testing.T) {
	doc, err := mongoschema.FromJSON([]byte(`{"type":"integer","minimum":-100,"maximum":100}`))
	require.NoError(t, err)

	canon, err := mongoschema.MarshalCanonical(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"bsonType":"int","maximum":100,"minimum":-100}`, string(canon),
		"keys must be sorted and numbers rendered in shortest form")

	again, err := mongoschema.MarshalCanonical(doc)
	require.NoError(t, err)
	assert.Equal(t, canon, again, "canonical output must be byte stable")
}
