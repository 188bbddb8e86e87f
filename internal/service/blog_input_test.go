package service

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTagListUnmarshalAcceptsBothShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "array", raw: `{"tags":["go","web"]}`, want: []string{"go", "web"}},
		{name: "comma string", raw: `{"tags":"go, web , "}`, want: []string{"go", "web"}},
		{name: "empty string", raw: `{"tags":""}`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input BlogInput
			if err := json.Unmarshal([]byte(tt.raw), &input); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			got := normalizeTags(input.Tags)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestTagListUnmarshalRejectsOtherShapes(t *testing.T) {
	var input BlogInput
	if err := json.Unmarshal([]byte(`{"tags":42}`), &input); err == nil {
		t.Fatal("expected error for numeric tags")
	}
	if err := json.Unmarshal([]byte(`{"tags":{"a":1}}`), &input); err == nil {
		t.Fatal("expected error for object tags")
	}
}

func TestNormalizeTagsKeepsOrderAndDuplicates(t *testing.T) {
	got := normalizeTags(TagList{" go ", "", "  ", "web", "go"})
	want := []string{"go", "web", "go"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDeriveExcerptIgnoresWordBoundaries(t *testing.T) {
	content := strings.Repeat("ab", 100) // 200 字符，150 处落在词中间
	got := deriveExcerpt(content)
	want := content[:150] + "..."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	short := "short content"
	if got := deriveExcerpt(short); got != short+"..." {
		t.Fatalf("expected %q, got %q", short+"...", got)
	}
}

func TestCalculateReadingTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty", content: "", want: 0},
		{name: "whitespace only", content: "   \n\t", want: 0},
		{name: "one word", content: "hello", want: 1},
		{name: "exactly 200 words", content: strings.Repeat("word ", 200), want: 1},
		{name: "201 words", content: strings.Repeat("word ", 201), want: 2},
		{name: "400 single-char words", content: strings.Repeat("a ", 400), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calculateReadingTime(tt.content); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestMaterializeBlogEnumeratesAllViolations(t *testing.T) {
	input := BlogInput{
		Title:         "ab",
		Content:       "short",
		Excerpt:       strings.Repeat("x", 301),
		FeaturedImage: "not-a-url",
	}

	_, verr := materializeBlog(input, "author-1")
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.Errors) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(verr.Errors), verr.Errors)
	}

	fields := map[string]bool{}
	for _, fe := range verr.Errors {
		fields[fe.Field] = true
	}
	for _, field := range []string{"title", "content", "excerpt", "featuredImage"} {
		if !fields[field] {
			t.Fatalf("expected a violation for %q, got %v", field, verr.Errors)
		}
	}
}

func TestMaterializeBlogRejectsOverlongTitle(t *testing.T) {
	input := BlogInput{
		Title:   strings.Repeat("t", 201),
		Content: "long enough content here",
	}

	_, verr := materializeBlog(input, "author-1")
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.Errors) != 1 || verr.Errors[0].Field != "title" {
		t.Fatalf("expected a single title violation, got %v", verr.Errors)
	}
}

func TestMaterializeBlogDerivesFields(t *testing.T) {
	content := strings.Repeat("word ", 401)
	blog, verr := materializeBlog(BlogInput{Title: "Derived", Content: content}, "author-1")
	if verr != nil {
		t.Fatalf("materialize: %v", verr)
	}

	wantExcerpt := strings.TrimSpace(content)[:150] + "..."
	if blog.Excerpt != wantExcerpt {
		t.Fatalf("expected derived excerpt %q, got %q", wantExcerpt, blog.Excerpt)
	}
	if blog.ReadingTime != 3 {
		t.Fatalf("expected reading time 3, got %d", blog.ReadingTime)
	}
	if blog.Status != "published" {
		t.Fatalf("expected default status published, got %q", blog.Status)
	}
	if blog.AuthorID != "author-1" {
		t.Fatalf("expected author-1, got %q", blog.AuthorID)
	}
}

func TestMaterializeBlogKeepsSuppliedExcerpt(t *testing.T) {
	blog, verr := materializeBlog(BlogInput{
		Title:   "Supplied",
		Content: "content that is long enough",
		Excerpt: "my own excerpt",
	}, "author-1")
	if verr != nil {
		t.Fatalf("materialize: %v", verr)
	}
	if blog.Excerpt != "my own excerpt" {
		t.Fatalf("expected supplied excerpt to survive, got %q", blog.Excerpt)
	}
}

func TestReconcileBlogRetainsAbsentFields(t *testing.T) {
	existing, verr := materializeBlog(BlogInput{
		Title:   "Original title",
		Content: "original content with enough words",
		Tags:    TagList{"go"},
	}, "author-1")
	if verr != nil {
		t.Fatalf("materialize: %v", verr)
	}
	originalReadingTime := existing.ReadingTime
	originalExcerpt := existing.Excerpt

	if verr := reconcileBlog(existing, BlogInput{Title: "Patched title"}); verr != nil {
		t.Fatalf("reconcile: %v", verr)
	}

	if existing.Title != "Patched title" {
		t.Fatalf("expected patched title, got %q", existing.Title)
	}
	if existing.Content != "original content with enough words" {
		t.Fatalf("content should be retained, got %q", existing.Content)
	}
	if existing.Excerpt != originalExcerpt {
		t.Fatalf("excerpt should be retained, got %q", existing.Excerpt)
	}
	if existing.ReadingTime != originalReadingTime {
		t.Fatalf("reading time should be unchanged, got %d", existing.ReadingTime)
	}
	if len(existing.Tags) != 1 || existing.Tags[0] != "go" {
		t.Fatalf("tags should be retained, got %v", existing.Tags)
	}
}

func TestReconcileBlogRecomputesReadingTimeOnContentChange(t *testing.T) {
	existing, verr := materializeBlog(BlogInput{
		Title:   "Original",
		Content: "original content with enough words",
	}, "author-1")
	if verr != nil {
		t.Fatalf("materialize: %v", verr)
	}

	if verr := reconcileBlog(existing, BlogInput{Content: strings.Repeat("word ", 401)}); verr != nil {
		t.Fatalf("reconcile: %v", verr)
	}
	if existing.ReadingTime != 3 {
		t.Fatalf("expected reading time recomputed to 3, got %d", existing.ReadingTime)
	}
}

func TestReconcileBlogRevalidates(t *testing.T) {
	existing, verr := materializeBlog(BlogInput{
		Title:   "Original",
		Content: "original content with enough words",
	}, "author-1")
	if verr != nil {
		t.Fatalf("materialize: %v", verr)
	}

	verr = reconcileBlog(existing, BlogInput{FeaturedImage: "not-a-url"})
	if verr == nil {
		t.Fatal("expected validation error for invalid featured image")
	}
	if len(verr.Errors) != 1 || verr.Errors[0].Field != "featuredImage" {
		t.Fatalf("expected a featuredImage violation, got %v", verr.Errors)
	}
}
