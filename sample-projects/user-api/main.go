// Sample: schema-validated user collection.
//
// Builds a user schema with the builder API, converts it to MongoDB's
// $jsonSchema dialect and, when MONGODB_URI is set, attaches it to the
// "users" collection and demonstrates the server enforcing it.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	mongoschema "github.com/udohjeremiah/zod-to-mongo-schema"
	"github.com/udohjeremiah/zod-to-mongo-schema/mongodb"
	"github.com/udohjeremiah/zod-to-mongo-schema/schema"
)

func userSchema() *schema.Schema {
	return schema.Object().
		Field("_id", schema.ObjectID()).
		Field("name", schema.String().MinLen(1).MaxLen(120)).
		Field("email", schema.String().Pattern(`^[^@\s]+@[^@\s]+$`)).
		Field("age", schema.Int32().Min(0).Max(150)).
		Field("role", schema.String().Enum("admin", "editor", "viewer")).
		Field("active", schema.Bool()).
		Field("signupDate", schema.Date()).
		Field("tags", schema.Array(schema.String()).UniqueItems().MaxItems(16)).
		Require("name", "email", "role")
}

func main() {
	doc, err := mongoschema.Convert(userSchema())
	if err != nil {
		log.Fatalf("convert: %v", err)
	}

	rendered, err := mongoschema.MarshalIndent(doc)
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	fmt.Println("=== $jsonSchema for the users collection ===")
	fmt.Println(string(rendered))

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		fmt.Println("\nMONGODB_URI not set; skipping the live demo.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, mongoopts.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database("user_api_sample")
	err = mongodb.EnsureCollection(ctx, db, "users", doc, mongodb.Options{
		Level:  mongodb.LevelStrict,
		Action: mongodb.ActionError,
	})
	if err != nil {
		log.Fatalf("ensure collection: %v", err)
	}
	fmt.Println("\nvalidator attached to user_api_sample.users")

	users := db.Collection("users")

	// A conforming document is accepted.
	_, err = users.InsertOne(ctx, bson.M{
		"name":   "Ada Lovelace",
		"email":  "ada@example.com",
		"age":    int32(36),
		"role":   "admin",
		"active": true,
	})
	if err != nil {
		log.Fatalf("insert valid user: %v", err)
	}
	fmt.Println("valid user inserted")

	// A document missing a required field is rejected by the server.
	_, err = users.InsertOne(ctx, bson.M{
		"name": "No Email",
		"role": "viewer",
	})
	if err != nil {
		fmt.Printf("invalid user rejected as expected: %v\n", err)
	} else {
		log.Fatal("expected the server to reject a user without an email")
	}
}
