package washer

import (
	"strings"
	"testing"
)

func TestEnsureTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		title string
		want  string
	}{
		{
			name:  "empty title is a no-op",
			input: "<p>x</p>",
			title: "",
			want:  "<p>x</p>",
		},
		{
			name:  "existing title wins",
			input: "<title>Old</title><p>x</p>",
			title: "New",
			want:  "<title>Old</title><p>x</p>",
		},
		{
			name:  "existing title matched case-insensitively",
			input: "<TITLE>Old</TITLE><p>x</p>",
			title: "New",
			want:  "<TITLE>Old</TITLE><p>x</p>",
		},
		{
			name:  "inserted after head open tag",
			input: `<head><meta charset="utf-8"></head><p>x</p>`,
			title: "Page",
			want:  `<head><title>Page</title><meta charset="utf-8"></head><p>x</p>`,
		},
		{
			name:  "only the first head is used",
			input: "<head></head><head></head>",
			title: "Page",
			want:  "<head><title>Page</title></head><head></head>",
		},
		{
			name:  "prepended without a head",
			input: "<p>x</p>",
			title: "Page",
			want:  "<title>Page</title><p>x</p>",
		},
		{
			name:  "title text escaped",
			input: "<p>x</p>",
			title: `<b> & "q" 'n'`,
			want:  "<title>&lt;b&gt; &amp; &#34;q&#34; &#39;n&#39;</title><p>x</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnsureTitle(tt.input, tt.title); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestEnsureTitle_NeverTwoTitles(t *testing.T) {
	out := EnsureTitle("<head></head>", "Page")
	if n := strings.Count(strings.ToLower(out), "<title"); n != 1 {
		t.Errorf("expected exactly one title, got %d in %q", n, out)
	}
	// Idempotent: a second call sees the inserted title.
	again := EnsureTitle(out, "Other")
	if again != out {
		t.Errorf("second call should be a no-op, got %q", again)
	}
}

func TestEnsureImageAlt(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		want         string
		wantModified bool
	}{
		{
			name:         "plain img gains alt",
			input:        `<img src="a.jpg">`,
			want:         `<img src="a.jpg" alt="">`,
			wantModified: true,
		},
		{
			name:         "self-closing img gains alt",
			input:        `<img src="a.jpg" />`,
			want:         `<img src="a.jpg" alt="" />`,
			wantModified: true,
		},
		{
			name:         "existing alt untouched",
			input:        `<img src="a.jpg" alt="desc">`,
			want:         `<img src="a.jpg" alt="desc">`,
			wantModified: false,
		},
		{
			name:         "empty alt counts as present",
			input:        `<img src="a.jpg" alt="">`,
			want:         `<img src="a.jpg" alt="">`,
			wantModified: false,
		},
		{
			name:         "uppercase alt counts as present",
			input:        `<img src="a.jpg" ALT="x">`,
			want:         `<img src="a.jpg" ALT="x">`,
			wantModified: false,
		},
		{
			name:         "mixed images",
			input:        `<img src="a.jpg"><img src="b.jpg" alt="b">`,
			want:         `<img src="a.jpg" alt=""><img src="b.jpg" alt="b">`,
			wantModified: true,
		},
		{
			name:         "no images",
			input:        "<p>x</p>",
			want:         "<p>x</p>",
			wantModified: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, modified := EnsureImageAlt(tt.input)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if modified != tt.wantModified {
				t.Errorf("expected modified=%v", tt.wantModified)
			}
		})
	}
}

func TestEnsureImageAlt_SingleWarningManyImages(t *testing.T) {
	result := Wash(
		`<img src="a.jpg"><img src="b.jpg"><img src="c.jpg">`,
		&Options{Setup: "allowedTags:\n  - img\nallowedAttributes:\n  img:\n    - src\n"},
	)
	if len(result.Warnings) != 1 {
		t.Errorf("expected one warning for all images, got %v", result.Warnings)
	}
	if n := strings.Count(result.HTML, `alt=""`); n != 3 {
		t.Errorf("expected 3 backfilled alts, got %d in %q", n, result.HTML)
	}
}

func TestEnsureImageAlt_Idempotent(t *testing.T) {
	once, modified := EnsureImageAlt(`<img src="a.jpg">`)
	if !modified {
		t.Fatal("first pass should modify")
	}
	twice, modified := EnsureImageAlt(once)
	if modified || twice != once {
		t.Errorf("second pass should be a no-op, got %q (modified=%v)", twice, modified)
	}
}
