// Package washer is the end-to-end sanitize-and-normalize operation:
// it resolves a policy (explicit setup, else the standard preset, else
// fallback on invalid setup), layers the non-negotiable security
// overrides over it, runs the markup engine, and applies the title and
// image-alt post-processors, accumulating warnings along the way.
package washer

import (
	"github.com/jmylchreest/htmlwash/pkg/policy"
	"github.com/jmylchreest/htmlwash/pkg/sanitizer"
)

// Options configures a single Wash call.
type Options struct {
	// Setup is a policy document. Empty means the standard preset.
	Setup string

	// Title, when non-empty, is injected as a <title> element if the
	// sanitized output has none.
	Title string
}

// Result is the outcome of a Wash call. Warnings are in the order the
// conditions were met and never cause a failure.
type Result struct {
	HTML     string
	Warnings []string
}

// blockedTags are removed with their entire content on every wash.
// A policy cannot widen, narrow, or disable this set, not even by
// listing one of these tags in allowedTags.
var blockedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"iframe":   true,
	"object":   true,
	"embed":    true,
	"applet":   true,
	"frame":    true,
	"frameset": true,
}

const altWarning = "Image(s) found without alt attribute, empty alt added"

// Wash sanitizes input under the resolved policy. It never fails for
// malformed or invalid setup text: such input degrades to a warning and
// the standard preset, so output is always sanitized. A nil opts means
// defaults for everything.
func Wash(input string, opts *Options) Result {
	if opts == nil {
		opts = &Options{}
	}

	var warnings []string

	setup := opts.Setup
	if setup == "" {
		setup = policy.PresetStandard
	}

	parsed := policy.ParseSetup(setup)
	cfg := parsed.Config
	if !parsed.OK {
		warnings = append(warnings, "Setup error: "+parsed.ErrorMessage)
		fallback := policy.ParseSetup(policy.PresetStandard)
		if !fallback.OK {
			// The shipped preset no longer parses; that is corrupt
			// build data, not a runtime condition.
			panic("washer: standard preset failed to parse: " + fallback.ErrorMessage)
		}
		cfg = fallback.Config
	}

	out := sanitizer.Sanitize(input, engineOptions(cfg))
	out = EnsureTitle(out, opts.Title)

	out, fixed := EnsureImageAlt(out)
	if fixed {
		warnings = append(warnings, altWarning)
	}

	return Result{HTML: out, Warnings: warnings}
}

// engineOptions derives engine options from a validated policy. Only
// fields present in the policy are copied, so an absent field never
// overrides an engine default, and the security overrides (event
// handler denylist, blocked tag filter) are applied on top regardless
// of what the policy says.
func engineOptions(cfg *policy.Policy) *sanitizer.Options {
	opts := &sanitizer.Options{
		ExcludeFilter: func(tag string) bool { return blockedTags[tag] },
	}
	if cfg.AllowedTags != nil {
		opts.AllowedTags = cfg.AllowedTags
	}
	if cfg.AllowedAttributes != nil {
		opts.AllowedAttributes = stripEventHandlers(cfg.AllowedAttributes)
	}
	if cfg.AllowedClasses != nil {
		opts.AllowedClasses = cfg.AllowedClasses
	}
	if cfg.DisallowedTagsMode != "" {
		opts.DisallowedTagsMode = cfg.DisallowedTagsMode
	}
	if cfg.SelfClosing != nil {
		opts.SelfClosing = cfg.SelfClosing
	}
	if cfg.AllowProtocolRelative != nil {
		opts.AllowProtocolRelative = cfg.AllowProtocolRelative
	}
	return opts
}

// stripEventHandlers drops, per tag, every attribute name that starts
// with "on" (case-insensitive). Listing onclick in a policy does not
// make it survive. The policy's own map is left untouched.
func stripEventHandlers(attrs map[string][]string) map[string][]string {
	out := make(map[string][]string, len(attrs))
	for tag, names := range attrs {
		kept := make([]string, 0, len(names))
		for _, name := range names {
			if isEventHandler(name) {
				continue
			}
			kept = append(kept, name)
		}
		out[tag] = kept
	}
	return out
}

func isEventHandler(name string) bool {
	if len(name) < 2 {
		return false
	}
	c0, c1 := name[0], name[1]
	return (c0 == 'o' || c0 == 'O') && (c1 == 'n' || c1 == 'N')
}
