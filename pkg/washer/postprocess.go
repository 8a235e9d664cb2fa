package washer

import (
	"html"
	"regexp"
	"strings"
)

// The post-processors patch already-sanitized markup at the text level
// rather than re-parsing it, so unrelated markup is never reformatted
// as a side effect.
var (
	titleRe   = regexp.MustCompile(`(?i)<title[\s>]`)
	headRe    = regexp.MustCompile(`(?i)<head[^>]*>`)
	imgRe     = regexp.MustCompile(`(?i)<img\b[^>]*>`)
	altAttrRe = regexp.MustCompile(`(?i)\balt\s*=`)
)

// EnsureTitle makes sure input carries a <title> when title is
// non-empty. An existing <title> anywhere wins; otherwise the new
// element goes right after the first <head> open tag, or at the very
// front when there is no head. No head or body wrapping is synthesized,
// and the title text gets the standard five-entity escape.
func EnsureTitle(input, title string) string {
	if title == "" {
		return input
	}
	if titleRe.MatchString(input) {
		return input
	}

	element := "<title>" + html.EscapeString(title) + "</title>"
	if loc := headRe.FindStringIndex(input); loc != nil {
		return input[:loc[1]] + element + input[loc[1]:]
	}
	return element + input
}

// EnsureImageAlt rewrites every <img> tag lacking an alt attribute to
// carry alt="", inserted just before the closing bracket. An image
// already carrying alt in any form, including alt="", is left alone.
// The second return reports whether anything was modified.
func EnsureImageAlt(input string) (string, bool) {
	modified := false
	out := imgRe.ReplaceAllStringFunc(input, func(tag string) string {
		if altAttrRe.MatchString(tag) {
			return tag
		}
		modified = true
		if strings.HasSuffix(tag, "/>") {
			return strings.TrimRight(tag[:len(tag)-2], " ") + ` alt="" />`
		}
		return strings.TrimRight(tag[:len(tag)-1], " ") + ` alt="">`
	})
	return out, modified
}
