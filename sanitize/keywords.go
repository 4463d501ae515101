package sanitize

// allowedKeywords is the set of keywords MongoDB's $jsonSchema operator
// accepts. Anything outside this set is dropped from keyword position
// during sanitization. Grouped the way the server manual lists them.
var allowedKeywords = map[string]struct{}{
	// type designators
	"type":     {},
	"bsonType": {},

	// logical composition
	"allOf": {},
	"anyOf": {},
	"oneOf": {},
	"not":   {},

	// numbers
	"minimum":          {},
	"maximum":          {},
	"exclusiveMinimum": {},
	"exclusiveMaximum": {},
	"multipleOf":       {},

	// strings
	"minLength": {},
	"maxLength": {},
	"pattern":   {},

	// objects
	"properties":           {},
	"patternProperties":    {},
	"additionalProperties": {},
	"required":             {},
	"minProperties":        {},
	"maxProperties":        {},
	"dependencies":         {},

	// arrays
	"items":           {},
	"additionalItems": {},
	"minItems":        {},
	"maxItems":        {},
	"uniqueItems":     {},

	// generic
	"enum":        {},
	"title":       {},
	"description": {},
}

// Allowed reports whether MongoDB's $jsonSchema dialect accepts keyword.
// Unsupported Draft-4 vocabulary such as "$ref", "$schema", "default",
// "definitions", "format" and "id" is rejected here and therefore removed
// by Sanitize wherever it appears in keyword position.
func Allowed(keyword string) bool {
	_, ok := allowedKeywords[keyword]
	return ok
}
