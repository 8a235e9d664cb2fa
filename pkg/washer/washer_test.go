package washer

import (
	"strings"
	"testing"

	"github.com/jmylchreest/htmlwash/pkg/policy"
)

func TestWash_ScriptRemoved(t *testing.T) {
	result := Wash("<p>Hello</p><script>alert(1)</script>", nil)
	if result.HTML != "<p>Hello</p>" {
		t.Errorf("expected %q, got %q", "<p>Hello</p>", result.HTML)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", result.Warnings)
	}
}

func TestWash_IframeRemovedWithContent(t *testing.T) {
	result := Wash(`<iframe src="evil.com"></iframe><p>Text</p>`, nil)
	if !strings.Contains(result.HTML, "Text") {
		t.Errorf("content should survive, got %q", result.HTML)
	}
	if strings.Contains(result.HTML, "iframe") {
		t.Errorf("iframe should be gone, got %q", result.HTML)
	}
}

func TestWash_CustomSetupUnwrapsDisallowed(t *testing.T) {
	result := Wash("<p>Hello</p><div>World</div>", &Options{Setup: "allowedTags:\n  - p\n"})
	if result.HTML != "<p>Hello</p>World" {
		t.Errorf("expected %q, got %q", "<p>Hello</p>World", result.HTML)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", result.Warnings)
	}
}

func TestWash_ImageAltBackfill(t *testing.T) {
	setup := "allowedTags:\n  - img\nallowedAttributes:\n  img:\n    - src\n"
	result := Wash(`<img src="test.jpg">`, &Options{Setup: setup})
	if !strings.Contains(result.HTML, `alt=""`) {
		t.Errorf("expected alt backfill, got %q", result.HTML)
	}
	if len(result.Warnings) != 1 || result.Warnings[0] != altWarning {
		t.Errorf("expected the alt warning, got %v", result.Warnings)
	}
}

func TestWash_TitleEscaped(t *testing.T) {
	result := Wash("<p>Content</p>", &Options{Title: "<script>"})
	if !strings.Contains(result.HTML, "&lt;script&gt;") {
		t.Errorf("title should be escaped, got %q", result.HTML)
	}
	if strings.Contains(result.HTML, "<script>") {
		t.Errorf("title must not introduce a live tag, got %q", result.HTML)
	}
}

func TestWash_InvalidSetupFallsBack(t *testing.T) {
	input := `<h1>Title</h1><div>block</div><script>x</script>`

	invalid := Wash(input, &Options{Setup: "invalid: [yaml"})
	standard := Wash(input, nil)

	if invalid.HTML != standard.HTML {
		t.Errorf("fallback output should match the standard preset:\n got %q\nwant %q", invalid.HTML, standard.HTML)
	}
	if len(invalid.Warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %v", invalid.Warnings)
	}
	if !strings.HasPrefix(invalid.Warnings[0], "Setup error: ") {
		t.Errorf("warning should carry the setup error, got %q", invalid.Warnings[0])
	}
}

func TestWash_SchemaInvalidSetupFallsBack(t *testing.T) {
	result := Wash("<p>x</p>", &Options{Setup: "unknownProperty: true\n"})
	if result.HTML != "<p>x</p>" {
		t.Errorf("expected standard-preset output, got %q", result.HTML)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "unknownProperty") {
		t.Errorf("expected a warning naming the bad key, got %v", result.Warnings)
	}
}

func TestWash_BlockedTagsSurviveNoPolicy(t *testing.T) {
	// Explicitly whitelisting a blocked tag must not bring it back.
	setup := `allowedTags:
  - p
  - script
  - style
  - iframe
  - object
  - embed
  - applet
  - frame
  - frameset
`
	input := `<p>ok</p><script>a</script><style>b</style><iframe>c</iframe>` +
		`<object>d</object><embed><applet>e</applet><frame><frameset></frameset>`

	result := Wash(input, &Options{Setup: setup})
	for _, tag := range []string{"script", "style", "iframe", "object", "embed", "applet", "frame"} {
		if strings.Contains(result.HTML, tag) {
			t.Errorf("blocked tag %q present in %q", tag, result.HTML)
		}
	}
	if !strings.Contains(result.HTML, "<p>ok</p>") {
		t.Errorf("allowed content should survive, got %q", result.HTML)
	}
}

func TestWash_EventHandlersNeverSurvive(t *testing.T) {
	setup := `allowedTags:
  - a
allowedAttributes:
  a:
    - href
    - onclick
    - OnMouseOver
`
	result := Wash(`<a href="https://x.test" onclick="evil()" onmouseover="evil()">x</a>`, &Options{Setup: setup})
	lower := strings.ToLower(result.HTML)
	if strings.Contains(lower, "onclick") || strings.Contains(lower, "onmouseover") {
		t.Errorf("event handler attribute survived: %q", result.HTML)
	}
	if !strings.Contains(result.HTML, "href=") {
		t.Errorf("href should survive, got %q", result.HTML)
	}
}

func TestWash_NilOptions(t *testing.T) {
	result := Wash("<em>x</em>", nil)
	if result.HTML != "<em>x</em>" {
		t.Errorf("expected standard preset to keep em, got %q", result.HTML)
	}
}

func TestWash_PolicyNotMutatedByOverrides(t *testing.T) {
	// The event-handler strip works on a copy; washing twice with the
	// same options must behave identically.
	opts := &Options{Setup: "allowedTags:\n  - a\nallowedAttributes:\n  a:\n    - href\n    - onclick\n"}
	first := Wash(`<a href="/x" onclick="e()">x</a>`, opts)
	second := Wash(`<a href="/x" onclick="e()">x</a>`, opts)
	if first.HTML != second.HTML {
		t.Errorf("repeat wash diverged: %q vs %q", first.HTML, second.HTML)
	}
}

func TestEngineOptions_CopiesOnlyPresentFields(t *testing.T) {
	opts := engineOptions(&policy.Policy{AllowedTags: []string{"p"}})

	if opts.AllowedTags == nil {
		t.Error("present field should be copied")
	}
	if opts.AllowedAttributes != nil {
		t.Error("absent AllowedAttributes must stay unset so engine defaults apply")
	}
	if opts.DisallowedTagsMode != "" {
		t.Error("absent mode must stay unset")
	}
	if opts.AllowProtocolRelative != nil {
		t.Error("absent AllowProtocolRelative must stay unset")
	}
	if opts.ExcludeFilter == nil {
		t.Fatal("exclusion filter must always be set")
	}
	for _, tag := range []string{"script", "style", "iframe", "object", "embed", "applet", "frame", "frameset"} {
		if !opts.ExcludeFilter(tag) {
			t.Errorf("exclusion filter should match %q", tag)
		}
	}
	if opts.ExcludeFilter("p") {
		t.Error("exclusion filter should not match ordinary tags")
	}
}
