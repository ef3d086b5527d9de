package siteworks

import (
	"strings"
	"testing"

	"github.com/eastvale/siteworks/content"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"  Trim Me  ", "trim-me"},
		{"Already-Slugged", "already-slugged"},
		{"Symbols & Stuff!", "symbols-stuff"},
		{"MixedCASE123", "mixedcase123"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.expected {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		expected string
	}{
		{"https://example.com", []string{"work", "acme"}, "https://example.com/work/acme/"},
		{"https://example.com/", []string{"team"}, "https://example.com/team/"},
		{"https://example.com", nil, "https://example.com"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.expected {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.expected)
		}
	}
}

func TestRelatedCaseStudies(t *testing.T) {
	current := content.CaseStudy{Slug: "a", Tags: []string{"Platform", "fintech"}}
	studies := []content.CaseStudy{
		{Slug: "a", Tags: []string{"platform"}},
		{Slug: "b", Tags: []string{"platform"}},
		{Slug: "c", Tags: []string{"design"}},
		{Slug: "d", Tags: []string{"Fintech", "design"}},
	}
	related := RelatedCaseStudies(current, studies)
	if len(related) != 2 {
		t.Fatalf("got %d related, want 2", len(related))
	}
	if related[0].Slug != "b" || related[1].Slug != "d" {
		t.Errorf("related = [%s, %s], want [b, d]", related[0].Slug, related[1].Slug)
	}
}

func TestArticleJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "Eastvale", URL: "https://eastvale.example"}
	post := content.BlogPost{
		Slug:        "shipping-faster",
		Title:       "Shipping Faster",
		Excerpt:     "How we cut release time.",
		Author:      "Sam Field",
		PublishedAt: "2024-02-10",
		Tags:        []string{"process"},
	}
	got := ArticleJsonLD(post, cfg)
	for _, want := range []string{
		`"@type":"Article"`,
		`"headline":"Shipping Faster"`,
		`"datePublished":"2024-02-10"`,
		`https://eastvale.example/insights/shipping-faster/`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ArticleJsonLD missing %s in %s", want, got)
		}
	}
}
