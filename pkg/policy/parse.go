package policy

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ParseSetup parses policyText as YAML and validates it against the
// policy schema. It always returns a ParseResult and never panics for
// any textual input: malformed YAML yields ErrYAMLSyntax, a document
// that parses but fails the schema yields ErrSchemaValidation with the
// first violation, prefixed with the path to the offending field when
// one is available.
//
// An empty or whitespace-only document is valid and yields an empty
// Policy. No defaulting happens here; absent fields stay absent.
func ParseSetup(policyText string) ParseResult {
	var doc any
	if err := yaml.Unmarshal([]byte(policyText), &doc); err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "invalid YAML document"
		}
		return ParseResult{ErrorCode: ErrYAMLSyntax, ErrorMessage: msg}
	}

	// yaml maps empty and whitespace-only input to a nil document.
	if doc == nil {
		return ParseResult{OK: true, Config: &Policy{}}
	}

	result, err := policySchema().Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		// The document could not be loaded as a JSON-shaped value at all.
		return ParseResult{ErrorCode: ErrSchemaValidation, ErrorMessage: err.Error()}
	}
	if !result.Valid() {
		return ParseResult{
			ErrorCode:    ErrSchemaValidation,
			ErrorMessage: formatViolation(result.Errors()[0]),
		}
	}

	var p Policy
	if err := yaml.Unmarshal([]byte(policyText), &p); err != nil {
		// Unreachable for schema-valid documents; surfaced rather than
		// swallowed in case the schema and the Policy type ever drift.
		return ParseResult{ErrorCode: ErrSchemaValidation, ErrorMessage: err.Error()}
	}
	return ParseResult{OK: true, Config: &p}
}

// formatViolation renders a single schema violation as
// "/path/to/field: reason", or just the reason for failures at the
// document root (wrong top-level type, unknown key).
func formatViolation(v gojsonschema.ResultError) string {
	path := v.Context().String()
	path = strings.TrimPrefix(path, gojsonschema.STRING_CONTEXT_ROOT)
	path = strings.ReplaceAll(path, ".", "/")
	if path == "" {
		return v.Description()
	}
	return path + ": " + v.Description()
}
