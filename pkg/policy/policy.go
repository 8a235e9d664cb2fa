// Package policy defines the declarative sanitization policy language:
// a small, closed YAML schema describing which tags, attributes, and
// classes survive a wash, plus how disallowed tags are handled.
//
// The schema is deliberately narrower than the capability of the
// underlying sanitizer engine. Only data-typed knobs are exposed;
// nothing callback- or pattern-shaped can be expressed in a policy
// document, so a policy can never inject behavior.
package policy

// Disallowed-tag handling modes accepted by disallowedTagsMode.
const (
	ModeDiscard           = "discard"
	ModeEscape            = "escape"
	ModeRecursiveEscape   = "recursiveEscape"
	ModeCompletelyDiscard = "completelyDiscard"
)

// Policy is a validated sanitization configuration. Every field is
// optional; a zero Policy is valid and means "engine defaults". Absence
// is meaningful, so slice and map fields stay nil when the document
// omits them and AllowProtocolRelative is a pointer.
type Policy struct {
	// AllowedTags lists the tag names kept in output (lowercase).
	AllowedTags []string `yaml:"allowedTags"`

	// AllowedAttributes maps a tag name to the attribute names kept on it.
	AllowedAttributes map[string][]string `yaml:"allowedAttributes"`

	// AllowedClasses maps a tag name to the class names kept in its
	// class attribute. A trailing "*" in a class name is a prefix glob.
	AllowedClasses map[string][]string `yaml:"allowedClasses"`

	// DisallowedTagsMode selects how tags outside AllowedTags are
	// handled: discard, escape, recursiveEscape, or completelyDiscard.
	// Empty means absent.
	DisallowedTagsMode string `yaml:"disallowedTagsMode"`

	// SelfClosing lists tag names rendered as self-closing.
	SelfClosing []string `yaml:"selfClosing"`

	// AllowProtocolRelative controls whether //host URLs are kept.
	AllowProtocolRelative *bool `yaml:"allowProtocolRelative"`
}

// ErrorCode classifies a ParseSetup failure.
type ErrorCode string

const (
	// ErrYAMLSyntax means the policy text is not valid YAML.
	ErrYAMLSyntax ErrorCode = "YAML_SYNTAX_ERROR"

	// ErrSchemaValidation means the policy text parsed but does not
	// match the policy schema (wrong type, unknown key, bad enum value).
	ErrSchemaValidation ErrorCode = "SCHEMA_VALIDATION_ERROR"
)

// ParseResult is the outcome of ParseSetup. Exactly one of the two
// variants is populated: OK with Config, or an ErrorCode with message.
type ParseResult struct {
	OK           bool
	Config       *Policy
	ErrorCode    ErrorCode
	ErrorMessage string
}
