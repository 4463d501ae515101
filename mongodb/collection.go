package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Validation levels and actions accepted by the server.
const (
	LevelOff      = "off"
	LevelModerate = "moderate"
	LevelStrict   = "strict"

	ActionWarn  = "warn"
	ActionError = "error"
)

// Options control how the server applies a validator. Empty fields keep
// the server defaults.
type Options struct {
	// Level is MongoDB's validationLevel: off, moderate or strict.
	Level string
	// Action is MongoDB's validationAction: warn or error.
	Action string
}

// Validator wraps a converted schema document in the $jsonSchema clause
// expected by collection validation.
func Validator(doc map[string]any) bson.M {
	return bson.M{"$jsonSchema": doc}
}

// CollMod builds the collMod command that swaps the validator on an
// existing collection. The command name must stay the first element.
func CollMod(name string, doc map[string]any, opts Options) bson.D {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: Validator(doc)},
	}
	if opts.Level != "" {
		cmd = append(cmd, bson.E{Key: "validationLevel", Value: opts.Level})
	}
	if opts.Action != "" {
		cmd = append(cmd, bson.E{Key: "validationAction", Value: opts.Action})
	}
	return cmd
}

// CreateCollection creates name with the schema document attached as its
// validator.
func CreateCollection(ctx context.Context, db *mongo.Database, name string, doc map[string]any, opts Options) error {
	cco := options.CreateCollection().SetValidator(Validator(doc))
	if opts.Level != "" {
		cco.SetValidationLevel(opts.Level)
	}
	if opts.Action != "" {
		cco.SetValidationAction(opts.Action)
	}
	if err := db.CreateCollection(ctx, name, cco); err != nil {
		return errors.Wrapf(err, "creating collection %q with validator", name)
	}
	return nil
}

// UpdateValidator swaps the validator on an existing collection in place.
func UpdateValidator(ctx context.Context, db *mongo.Database, name string, doc map[string]any, opts Options) error {
	if err := db.RunCommand(ctx, CollMod(name, doc, opts)).Err(); err != nil {
		return errors.Wrapf(err, "updating validator on collection %q", name)
	}
	return nil
}

// EnsureCollection creates name with the validator when it does not exist
// yet and updates the validator in place when it does.
func EnsureCollection(ctx context.Context, db *mongo.Database, name string, doc map[string]any, opts Options) error {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return errors.Wrapf(err, "listing collections for %q", name)
	}
	if len(names) == 0 {
		return CreateCollection(ctx, db, name, doc, opts)
	}
	return UpdateValidator(ctx, db, name, doc, opts)
}
