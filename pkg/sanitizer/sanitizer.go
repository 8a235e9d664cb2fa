// Package sanitizer implements the markup engine behind a wash: it
// parses untrusted HTML with golang.org/x/net/html, walks the tree, and
// re-serializes only what the configured allowlists admit. Malformed
// markup is repaired by the parser before filtering, so output is
// always well-formed.
package sanitizer

import (
	"bytes"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Sanitizer applies one fixed set of Options to any number of inputs.
// It is immutable after New and safe for concurrent use.
type Sanitizer struct {
	tags             map[string]bool
	attrs            map[string]map[string]bool
	classes          map[string][]string
	mode             string
	selfClosing      map[string]bool
	schemes          map[string]bool
	protocolRelative bool
	exclude          func(string) bool
}

// New compiles opts into a Sanitizer. A nil opts gives the engine
// defaults for every field.
func New(opts *Options) *Sanitizer {
	if opts == nil {
		opts = &Options{}
	}

	tags := opts.AllowedTags
	if tags == nil {
		tags = defaultAllowedTags
	}
	attrs := opts.AllowedAttributes
	if attrs == nil {
		attrs = defaultAllowedAttributes
	}
	schemes := opts.AllowedSchemes
	if schemes == nil {
		schemes = defaultAllowedSchemes
	}
	selfClosing := opts.SelfClosing
	if selfClosing == nil {
		selfClosing = defaultSelfClosing
	}
	mode := opts.DisallowedTagsMode
	switch mode {
	case ModeDiscard, ModeEscape, ModeRecursiveEscape, ModeCompletelyDiscard:
	default:
		mode = ModeDiscard
	}
	protocolRelative := true
	if opts.AllowProtocolRelative != nil {
		protocolRelative = *opts.AllowProtocolRelative
	}

	s := &Sanitizer{
		tags:             toSet(tags),
		attrs:            make(map[string]map[string]bool, len(attrs)),
		classes:          make(map[string][]string, len(opts.AllowedClasses)),
		mode:             mode,
		selfClosing:      toSet(selfClosing),
		schemes:          toSet(schemes),
		protocolRelative: protocolRelative,
		exclude:          opts.ExcludeFilter,
	}
	for tag, names := range attrs {
		s.attrs[strings.ToLower(tag)] = toSet(names)
	}
	for tag, names := range opts.AllowedClasses {
		s.classes[strings.ToLower(tag)] = names
	}
	return s
}

// Sanitize is a convenience for New(opts).Sanitize(input).
func Sanitize(input string, opts *Options) string {
	return New(opts).Sanitize(input)
}

// Sanitize filters input and returns the cleaned markup.
func (s *Sanitizer) Sanitize(input string) string {
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		// html.Parse repairs malformed markup instead of failing; an
		// error can only come from the reader, and ours cannot fail.
		return ""
	}

	var buf bytes.Buffer
	for _, root := range contentRoots(doc) {
		for c := root.FirstChild; c != nil; c = c.NextSibling {
			s.walk(&buf, c, false)
		}
	}
	return buf.String()
}

// walk serializes n and its subtree into buf. escapeAll is set inside a
// recursiveEscape subtree, where every tag is written as escaped text.
func (s *Sanitizer) walk(buf *bytes.Buffer, n *html.Node, escapeAll bool) {
	switch n.Type {
	case html.TextNode:
		buf.WriteString(html.EscapeString(n.Data))

	case html.ElementNode:
		tag := strings.ToLower(n.Data)

		// The exclusion filter outranks everything, including the
		// escape modes: matched elements vanish with their content.
		if s.exclude != nil && s.exclude(tag) {
			return
		}

		if escapeAll {
			s.writeEscaped(buf, n, tag, true)
			return
		}

		if s.tags[tag] {
			s.writeElement(buf, n, tag)
			return
		}

		if nonTextTags[tag] {
			return
		}

		switch s.mode {
		case ModeEscape:
			s.writeEscaped(buf, n, tag, false)
		case ModeRecursiveEscape:
			s.writeEscaped(buf, n, tag, true)
		case ModeCompletelyDiscard:
			// Element and subtree dropped.
		default: // ModeDiscard: unwrap, children kept.
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				s.walk(buf, c, false)
			}
		}

	case html.CommentNode, html.DoctypeNode:
		// Stripped.

	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			s.walk(buf, c, escapeAll)
		}
	}
}

// writeElement renders an allowed element with filtered attributes.
func (s *Sanitizer) writeElement(buf *bytes.Buffer, n *html.Node, tag string) {
	buf.WriteByte('<')
	buf.WriteString(tag)
	for _, a := range s.filterAttrs(tag, n.Attr) {
		buf.WriteByte(' ')
		buf.WriteString(a.Key)
		buf.WriteString(`="`)
		buf.WriteString(html.EscapeString(a.Val))
		buf.WriteByte('"')
	}
	if s.selfClosing[tag] {
		buf.WriteString(" />")
		return
	}
	buf.WriteByte('>')
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		s.walk(buf, c, false)
	}
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteByte('>')
}

// writeEscaped renders a disallowed element's tags as escaped text.
// With recurse set the whole subtree is escaped; otherwise children go
// through normal filtering.
func (s *Sanitizer) writeEscaped(buf *bytes.Buffer, n *html.Node, tag string, recurse bool) {
	buf.WriteString(html.EscapeString(openTag(n, tag)))
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		s.walk(buf, c, recurse)
	}
	if !s.selfClosing[tag] {
		buf.WriteString(html.EscapeString("</" + tag + ">"))
	}
}

// filterAttrs keeps the attributes the allowlists admit, with class
// and URL values filtered in place.
func (s *Sanitizer) filterAttrs(tag string, attrs []html.Attribute) []html.Attribute {
	out := make([]html.Attribute, 0, len(attrs))
	for _, a := range attrs {
		key := strings.ToLower(a.Key)

		if key == "class" {
			if patterns, ok := s.classPatterns(tag); ok {
				kept := filterClasses(a.Val, patterns)
				if kept == "" {
					continue
				}
				out = append(out, html.Attribute{Key: "class", Val: kept})
				continue
			}
		}

		if !s.attrAllowed(tag, key) {
			continue
		}
		if urlAttrs[key] && !s.urlAllowed(a.Val) {
			continue
		}
		out = append(out, html.Attribute{Key: key, Val: a.Val})
	}
	return out
}

func (s *Sanitizer) attrAllowed(tag, key string) bool {
	if s.attrs["*"][key] {
		return true
	}
	return s.attrs[tag][key]
}

// classPatterns returns the class allowlist applying to tag, merging a
// tag-specific entry with a "*" entry.
func (s *Sanitizer) classPatterns(tag string) ([]string, bool) {
	tagged, okTag := s.classes[tag]
	global, okAll := s.classes["*"]
	if !okTag && !okAll {
		return nil, false
	}
	return append(append([]string(nil), tagged...), global...), true
}

// urlAllowed reports whether an href/src style value passes the scheme
// rules. The value is entity-decoded and stripped of control characters
// first so &#106;avascript: style smuggling does not slip through.
func (s *Sanitizer) urlAllowed(raw string) bool {
	v := strings.TrimSpace(html.UnescapeString(raw))
	v = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, v)

	if strings.HasPrefix(v, "//") {
		return s.protocolRelative
	}
	u, err := url.Parse(v)
	if err != nil {
		return false
	}
	if u.Scheme == "" {
		// Relative URL.
		return true
	}
	return s.schemes[strings.ToLower(u.Scheme)]
}

// --- helpers ---------------------------------------------------------

// contentRoots finds the head and body elements html.Parse wraps
// content in; their children are the actual document content.
func contentRoots(doc *html.Node) []*html.Node {
	var roots []*html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "head" || n.Data == "body") {
			roots = append(roots, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(doc)
	return roots
}

func filterClasses(val string, patterns []string) string {
	var kept []string
	for _, class := range strings.Fields(val) {
		for _, p := range patterns {
			if classMatch(p, class) {
				kept = append(kept, class)
				break
			}
		}
	}
	return strings.Join(kept, " ")
}

// classMatch compares a class against one allowlist entry; a trailing
// "*" in the entry matches by prefix (e.g. "language-*").
func classMatch(pattern, class string) bool {
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(class, strings.TrimSuffix(pattern, "*"))
	}
	return pattern == class
}

func openTag(n *html.Node, tag string) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(tag)
	for _, a := range n.Attr {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(a.Val)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	return sb.String()
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = true
	}
	return set
}
