package mongoschema

import (
	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Marshal encodes a conversion result as JSON.
func Marshal(doc map[string]any) ([]byte, error) {
	return json.Marshal(doc)
}

// MarshalIndent encodes a conversion result as indented JSON for display.
func MarshalIndent(doc map[string]any) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// MarshalCanonical encodes a conversion result in RFC 8785 canonical
// form: object keys sorted, numbers in their shortest ES6 rendering.
// Equal documents produce identical bytes.
func MarshalCanonical(doc map[string]any) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "encoding schema document")
	}
	canon, err := jsoncanonicalizer.Transform(data)
	if err != nil {
		return nil, errors.Wrap(err, "canonicalizing schema document")
	}
	return canon, nil
}
