package policy

// Built-in policy documents. Each is valid ParseSetup input and is
// usable as-is or as a starting point for a custom policy. Their
// content is part of the public contract: a change here changes the
// default behavior of every caller relying on a preset.
const (
	// PresetMinimal keeps only basic inline markup and links.
	PresetMinimal = `allowedTags:
  - p
  - a
  - strong
  - em
  - br
allowedAttributes:
  a:
    - href
disallowedTagsMode: discard
allowProtocolRelative: false
`

	// PresetStandard extends minimal with headings, lists, images, and
	// tables. It is the fallback policy used when no setup is given or
	// the given setup is invalid.
	PresetStandard = `allowedTags:
  - p
  - a
  - strong
  - em
  - br
  - h1
  - h2
  - h3
  - h4
  - h5
  - h6
  - ul
  - ol
  - li
  - img
  - table
  - thead
  - tbody
  - tr
  - td
  - th
  - b
  - i
  - u
allowedAttributes:
  a:
    - href
  img:
    - src
    - alt
    - width
    - height
  td:
    - colspan
    - rowspan
  th:
    - colspan
    - rowspan
disallowedTagsMode: discard
selfClosing:
  - img
  - br
  - hr
allowProtocolRelative: false
`

	// PresetPermissive extends standard with structural and code markup
	// and a small fixed class vocabulary.
	PresetPermissive = `allowedTags:
  - p
  - a
  - strong
  - em
  - br
  - h1
  - h2
  - h3
  - h4
  - h5
  - h6
  - ul
  - ol
  - li
  - img
  - table
  - thead
  - tbody
  - tr
  - td
  - th
  - b
  - i
  - u
  - div
  - span
  - code
  - pre
  - blockquote
  - hr
  - sub
  - sup
allowedAttributes:
  a:
    - href
  img:
    - src
    - alt
    - width
    - height
  td:
    - colspan
    - rowspan
  th:
    - colspan
    - rowspan
allowedClasses:
  div:
    - container
    - wrapper
    - content
  span:
    - highlight
    - note
  code:
    - "language-*"
disallowedTagsMode: discard
selfClosing:
  - img
  - br
  - hr
allowProtocolRelative: false
`
)

// presetsByName resolves the CLI-facing preset names.
var presetsByName = map[string]string{
	"minimal":    PresetMinimal,
	"standard":   PresetStandard,
	"permissive": PresetPermissive,
}

// PresetNames returns the built-in preset names in order of
// permissiveness.
func PresetNames() []string {
	return []string{"minimal", "standard", "permissive"}
}

// Preset returns the named built-in policy document. The second return
// is false for unknown names.
func Preset(name string) (string, bool) {
	p, ok := presetsByName[name]
	return p, ok
}
