package mongodb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/udohjeremiah/zod-to-mongo-schema/mongodb"
)

func TestValidator(t *testing.T) {
	doc := map[string]any{"bsonType": "long"}
	assert.Equal(t, bson.M{"$jsonSchema": doc}, mongodb.Validator(doc))
}

func TestCollMod(t *testing.T) {
	doc := map[string]any{"type": "object"}

	cmd := mongodb.CollMod("users", doc, mongodb.Options{})
	require.Len(t, cmd, 2)
	assert.Equal(t, bson.E{Key: "collMod", Value: "users"}, cmd[0],
		"collMod must stay the first element of the command")
	assert.Equal(t, bson.E{Key: "validator", Value: mongodb.Validator(doc)}, cmd[1])

	cmd = mongodb.CollMod("users", doc, mongodb.Options{
		Level:  mongodb.LevelModerate,
		Action: mongodb.ActionWarn,
	})
	require.Len(t, cmd, 4)
	assert.Equal(t, bson.E{Key: "validationLevel", Value: "moderate"}, cmd[2])
	assert.Equal(t, bson.E{Key: "validationAction", Value: "warn"}, cmd[3])
}
