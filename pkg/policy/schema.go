package policy

import (
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// policySchemaJSON is the closed-world JSON Schema for policy documents.
// It is hand-written against the Policy type rather than derived from
// the engine's option surface, so engine options that cannot be safely
// expressed in a document (filters, patterns) can never leak in.
// additionalProperties: false makes unknown top-level keys fatal.
const policySchemaJSON = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "allowedTags": {
      "type": "array",
      "items": {"type": "string"}
    },
    "allowedAttributes": {
      "type": "object",
      "additionalProperties": {
        "type": "array",
        "items": {"type": "string"}
      }
    },
    "allowedClasses": {
      "type": "object",
      "additionalProperties": {
        "type": "array",
        "items": {"type": "string"}
      }
    },
    "disallowedTagsMode": {
      "type": "string",
      "enum": ["discard", "escape", "recursiveEscape", "completelyDiscard"]
    },
    "selfClosing": {
      "type": "array",
      "items": {"type": "string"}
    },
    "allowProtocolRelative": {"type": "boolean"}
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *gojsonschema.Schema
)

// policySchema returns the process-wide compiled schema. It is built
// once and never mutated afterwards, so concurrent use needs no
// locking. A compile failure means the embedded schema text is corrupt,
// which is a defect, not a runtime condition.
func policySchema() *gojsonschema.Schema {
	schemaOnce.Do(func() {
		s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(policySchemaJSON))
		if err != nil {
			panic("policy: invalid embedded schema: " + err.Error())
		}
		compiledSchema = s
	})
	return compiledSchema
}
