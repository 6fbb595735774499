package typegen

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Schema-compile errors. All of these abort the run; there is no partial
	// output.
	CodeUnsupportedKind = "unsupported_kind" // property declares a primitive the walker does not handle
	CodeMissingVariants = "missing_variants" // polymorphic property without oneOf/anyOf
	CodeBadReference    = "bad_reference"    // oneOf/anyOf entry that is not a $ref
	CodeDanglingVariant = "dangling_variant" // permitted variant with no node model
	CodeNameCollision   = "name_collision"   // two models resolve to the same name
	CodeTagCollision    = "tag_collision"    // two models resolve to the same wire tag
	CodeInvalidSchema   = "invalid_schema"   // structurally malformed definition
	CodeParseError      = "parse_error"      // schema document could not be decoded
)

// Issue represents a single schema-compilation error.
type Issue struct {
	Path    string // JSON Pointer into the schema document (for example: /definitions/slice/properties/elmtype).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of schema-compilation errors that implements error.
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
		// e.g. missing_variants at /definitions/slice/properties/elmtype
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
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
