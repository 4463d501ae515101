package mongoschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and stable matching).
const (
	// CodeSubtypeMisuse flags a BSON type override on a node that already
	// declares a kind. Only untyped nodes may carry one.
	CodeSubtypeMisuse = "subtype_misuse"
	// CodeDualDesignation flags a node that would end up with both "type"
	// and "bsonType" populated.
	CodeDualDesignation = "dual_designation"
	// CodeParseError flags undecodable JSON or YAML input.
	CodeParseError = "parse_error"
	// CodeInvalidSchema flags input that fails the optional Draft-4
	// compile check.
	CodeInvalidSchema = "invalid_schema"
)

// Issue represents a single conversion problem.
type Issue struct {
	Path    string // JSON Pointer (for example: /properties/age).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"kind":"string"}) for
	// formatting and observability.
	Params map[string]any
}

// Issues is a collection of conversion errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. subtype_misuse at /properties/age
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the first underlying cause, so errors.Is reaches through
// decode failures.
func (iss Issues) Unwrap() error {
	for _, it := range iss {
		if it.Cause != nil {
			return it.Cause
		}
	}
	return nil
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
