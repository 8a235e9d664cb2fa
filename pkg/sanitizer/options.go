package sanitizer

// Disallowed-tag handling modes.
const (
	// ModeDiscard removes the tags of a disallowed element but keeps
	// its children. This is the default.
	ModeDiscard = "discard"

	// ModeEscape entity-escapes the open and close tags of a
	// disallowed element; its children are still filtered normally.
	ModeEscape = "escape"

	// ModeRecursiveEscape entity-escapes the tags of a disallowed
	// element and of every descendant, allowed or not.
	ModeRecursiveEscape = "recursiveEscape"

	// ModeCompletelyDiscard removes a disallowed element together with
	// its entire subtree.
	ModeCompletelyDiscard = "completelyDiscard"
)

// Options configures a Sanitizer. Unset fields fall back to the engine
// defaults below; an explicitly empty value is honored as-is (an empty
// AllowedTags slice allows no tags at all).
type Options struct {
	// AllowedTags lists the tag names kept in output, lowercase.
	AllowedTags []string

	// AllowedAttributes maps a tag name to the attribute names kept on
	// that tag. The key "*" applies to every tag.
	AllowedAttributes map[string][]string

	// AllowedClasses maps a tag name (or "*") to the class names kept
	// in that tag's class attribute. A trailing "*" in a class name
	// matches by prefix. When a tag has an entry here, its class
	// attribute is filtered against it regardless of AllowedAttributes;
	// an attribute left empty after filtering is dropped.
	AllowedClasses map[string][]string

	// DisallowedTagsMode is one of the Mode constants. Empty or unknown
	// values mean ModeDiscard.
	DisallowedTagsMode string

	// SelfClosing lists tags rendered as <tag ... /> with no close tag.
	SelfClosing []string

	// AllowedSchemes lists URL schemes permitted in href, src, cite,
	// and action attributes. Scheme-less (relative) URLs always pass.
	AllowedSchemes []string

	// AllowProtocolRelative controls whether //host URLs are kept.
	// Unset means allowed.
	AllowProtocolRelative *bool

	// ExcludeFilter, when set, removes every element whose lowercase
	// tag name it reports true for, together with the element's entire
	// subtree. It applies before any other rule and in every mode.
	ExcludeFilter func(tag string) bool
}

// Engine defaults, applied per field when the corresponding Option is
// unset. The tag and attribute sets mirror the common general-purpose
// content subset: permissive about structure, strict about anything
// executable.
var (
	defaultAllowedTags = []string{
		"address", "article", "aside", "footer", "header",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"hgroup", "main", "nav", "section",
		"blockquote", "dd", "div", "dl", "dt", "figcaption", "figure",
		"hr", "li", "ol", "p", "pre", "ul",
		"a", "abbr", "b", "bdi", "bdo", "br", "cite", "code", "data",
		"dfn", "em", "i", "img", "kbd", "mark", "q", "rp", "rt", "ruby",
		"s", "samp", "small", "span", "strong", "sub", "sup", "time",
		"u", "var", "wbr",
		"caption", "col", "colgroup", "table", "tbody", "td", "tfoot",
		"th", "thead", "tr",
	}

	defaultAllowedAttributes = map[string][]string{
		"a":   {"href", "name", "target", "title", "rel"},
		"img": {"src", "srcset", "alt", "title", "width", "height", "loading"},
	}

	defaultAllowedSchemes = []string{"http", "https", "ftp", "mailto"}

	defaultSelfClosing = []string{
		"img", "br", "hr", "area", "base", "basefont", "input", "link", "meta",
	}
)

// nonTextTags hold raw text (code, CSS, form state) that must not leak
// into output as plain text. When such an element is disallowed it is
// dropped with its content in every mode, instead of being unwrapped or
// escaped.
var nonTextTags = map[string]bool{
	"script":   true,
	"style":    true,
	"textarea": true,
	"option":   true,
}

// urlAttrs are the attributes whose values are URL-checked.
var urlAttrs = map[string]bool{
	"href":   true,
	"src":    true,
	"cite":   true,
	"action": true,
}
