// Sample: converting a hand-written YAML schema.
//
// Teams often keep collection schemas as YAML documents in the repo.
// This sample converts one to the $jsonSchema dialect, showing the
// Draft-4 compile check, keyword stripping and numeric resolution, and
// renders the result in canonical form so it can be diffed in review.
package main

import (
	"fmt"
	"log"

	mongoschema "github.com/udohjeremiah/zod-to-mongo-schema"
	"github.com/udohjeremiah/zod-to-mongo-schema/mongodb"
)

// configSchema uses Draft-4 vocabulary freely: "format", "default" and
// "$schema" are not part of the MongoDB dialect and disappear during
// conversion, while the "port" bounds survive under the "int" alias.
const configSchema = `
$schema: "http://json-schema.org/draft-04/schema#"
type: object
properties:
  app:
    type: object
    properties:
      name:
        type: string
        minLength: 1
      environment:
        type: string
        enum: [development, staging, production]
        default: development
      port:
        type: integer
        minimum: 1
        maximum: 65535
    required: [name, environment]
  database:
    type: object
    properties:
      host:
        type: string
        format: hostname
      maxConns:
        type: integer
        minimum: -2147483648
        maximum: 2147483647
      timeoutSeconds:
        type: number
        minimum: 0.1
    required: [host]
required: [app]
`

func main() {
	doc, err := mongoschema.FromYAML([]byte(configSchema), mongoschema.ConvertOpt{CompileCheck: true})
	if err != nil {
		log.Fatalf("convert: %v", err)
	}

	pretty, err := mongoschema.MarshalIndent(doc)
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	fmt.Println("=== converted schema ===")
	fmt.Println(string(pretty))

	canon, err := mongoschema.MarshalCanonical(map[string]any(mongodb.Validator(doc)))
	if err != nil {
		log.Fatalf("canonicalize: %v", err)
	}
	fmt.Println("=== canonical validator clause ===")
	fmt.Println(string(canon))
}
