package content

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func writeOverview(t *testing.T, root, contents string) *Repository {
	t.Helper()
	repo := NewRepository(root)
	writeContentFileRaw(t, root, defaultOverviewFile, contents)
	return repo
}

func writeContentFileRaw(t *testing.T, root, name, contents string) {
	t.Helper()
	writeContentFile(t, root, ".", name, contents)
}

func TestOverviewMissingFileIsEmptyDoc(t *testing.T) {
	repo := NewRepository(t.TempDir())
	doc, err := repo.Overview()
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if doc.Raw != "" || doc.Title != "" || doc.HTML != "" || len(doc.TOC) != 0 {
		t.Errorf("missing file should yield empty doc, got %#v", doc)
	}
}

func TestOverviewTitleAndTOC(t *testing.T) {
	raw := `# Company Overview

Intro paragraph.

## Our Story

Text.

### The Early Years

More text.

## Where We're Going

Closing.
`
	repo := writeOverview(t, t.TempDir(), raw)
	doc, err := repo.Overview()
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if doc.Title != "Company Overview" {
		t.Errorf("Title = %q, want Company Overview", doc.Title)
	}
	want := []TOCEntry{
		{Level: 2, ID: "our-story", Text: "Our Story"},
		{Level: 3, ID: "the-early-years", Text: "The Early Years"},
		{Level: 2, ID: "where-were-going", Text: "Where We're Going"},
	}
	if !reflect.DeepEqual(doc.TOC, want) {
		t.Errorf("TOC = %#v, want %#v", doc.TOC, want)
	}
	// Every TOC id must be an anchor target in the rendered HTML.
	for _, entry := range want {
		anchor := fmt.Sprintf(`id="%s"`, entry.ID)
		if !strings.Contains(doc.HTML, anchor) {
			t.Errorf("rendered HTML missing anchor %s", anchor)
		}
	}
}

func TestOverviewDuplicateHeadingsDisambiguated(t *testing.T) {
	raw := "## Growth\n\ntext\n\n## Growth\n\nmore\n\n## Growth\n"
	repo := writeOverview(t, t.TempDir(), raw)
	doc, err := repo.Overview()
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	ids := make([]string, len(doc.TOC))
	for i, e := range doc.TOC {
		ids[i] = e.ID
	}
	want := []string{"growth", "growth-2", "growth-3"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
	for _, id := range want {
		if !strings.Contains(doc.HTML, fmt.Sprintf(`<h2 id="%s">Growth</h2>`, id)) {
			t.Errorf("rendered HTML missing heading with id %q", id)
		}
	}
}

func TestOverviewImagePlaceholder(t *testing.T) {
	raw := "## Section\n\n{image}\n\nAfter.\n"
	repo := writeOverview(t, t.TempDir(), raw)
	doc, err := repo.Overview()
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if !strings.Contains(doc.HTML, `class="image-placeholder"`) {
		t.Error("rendered HTML missing image placeholder block")
	}
	if strings.Contains(doc.HTML, "{image}") {
		t.Error("literal {image} token leaked into rendered HTML")
	}
}

func TestOverviewPageBreakMarker(t *testing.T) {
	raw := "First page.\n\n--- PAGE BREAK ---\n\nSecond page.\n"
	repo := writeOverview(t, t.TempDir(), raw)
	doc, err := repo.Overview()
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if !strings.Contains(doc.HTML, `<hr class="page-break">`) {
		t.Error("rendered HTML missing page-break divider")
	}
	if strings.Contains(doc.HTML, "PAGE BREAK") {
		t.Error("literal page-break marker leaked into rendered HTML")
	}
}

func TestOverviewIndentedMarkerLinesStillMatch(t *testing.T) {
	// Markers match on trimmed line content.
	raw := "   {image}   \n"
	repo := writeOverview(t, t.TempDir(), raw)
	doc, err := repo.Overview()
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if !strings.Contains(doc.HTML, `class="image-placeholder"`) {
		t.Error("indented {image} line was not substituted")
	}
}

func TestOverviewIdempotent(t *testing.T) {
	raw := "# Title\n\n## One\n\n## One\n\n{image}\n\n### Deep\n"
	repo := writeOverview(t, t.TempDir(), raw)
	first, err := repo.Overview()
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	second, err := repo.Overview()
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if first.HTML != second.HTML {
		t.Error("rendered HTML differs between identical loads")
	}
	if !reflect.DeepEqual(first.TOC, second.TOC) {
		t.Error("TOC differs between identical loads")
	}
}

func TestAnchorID(t *testing.T) {
	tests := []struct {
		in       string
		fallback string
		want     string
	}{
		{"Our Story", "section", "our-story"},
		{"Where We're Going", "section", "where-were-going"},
		{`The "Big" Idea`, "section", "the-big-idea"},
		{"  Spaces   Everywhere  ", "section", "spaces-everywhere"},
		{"Q3/Q4 — Results!", "section", "q3-q4-results"},
		{"!!!", "section", "section"},
		{"", "subsection", "subsection"},
	}
	for _, tt := range tests {
		if got := anchorID(tt.in, tt.fallback); got != tt.want {
			t.Errorf("anchorID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
