// Command zod2mongo converts a JSON Schema document into MongoDB's
// $jsonSchema dialect.
//
// Usage:
//
//	zod2mongo [-in schema.json] [-yaml] [-check] [-wrap] [-canonical] [-o out.json]
//
// The input is JSON by default and read from stdin when -in is "-".
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	mongoschema "github.com/udohjeremiah/zod-to-mongo-schema"
	"github.com/udohjeremiah/zod-to-mongo-schema/mongodb"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zod2mongo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		in        = fs.String("in", "-", "input schema document; - reads stdin")
		asYAML    = fs.Bool("yaml", false, "treat input as YAML")
		check     = fs.Bool("check", false, "compile the input as Draft-4 before converting")
		wrap      = fs.Bool("wrap", false, "wrap the result in a $jsonSchema validator clause")
		canonical = fs.Bool("canonical", false, "emit canonical JSON (RFC 8785)")
		out       = fs.String("o", "", "write output to file instead of stdout")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	data, err := readInput(*in, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "zod2mongo: %v\n", err)
		return 1
	}

	opt := mongoschema.ConvertOpt{CompileCheck: *check}
	var doc map[string]any
	if *asYAML {
		doc, err = mongoschema.FromYAML(data, opt)
	} else {
		doc, err = mongoschema.FromJSON(data, opt)
	}
	if err != nil {
		fmt.Fprintf(stderr, "zod2mongo: %v\n", err)
		return 1
	}

	payload := doc
	if *wrap {
		payload = map[string]any(mongodb.Validator(doc))
	}

	var rendered []byte
	if *canonical {
		rendered, err = mongoschema.MarshalCanonical(payload)
	} else {
		rendered, err = mongoschema.MarshalIndent(payload)
	}
	if err != nil {
		fmt.Fprintf(stderr, "zod2mongo: %v\n", err)
		return 1
	}
	rendered = append(rendered, '\n')

	if *out != "" {
		if err := os.WriteFile(*out, rendered, 0o644); err != nil {
			fmt.Fprintf(stderr, "zod2mongo: %v\n", err)
			return 1
		}
		return 0
	}
	if _, err := stdout.Write(rendered); err != nil {
		fmt.Fprintf(stderr, "zod2mongo: %v\n", err)
		return 1
	}
	return 0
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return data, nil
}
