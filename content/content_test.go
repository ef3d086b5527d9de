package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// testLogger collects warnings so tests can assert on skip reporting.
type testLogger struct {
	warnings []string
}

func (l *testLogger) Warnf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func writeContentFile(t *testing.T, root, dir, name, contents string) {
	t.Helper()
	full := filepath.Join(root, dir)
	if err := os.MkdirAll(full, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", full, err)
	}
	if err := os.WriteFile(filepath.Join(full, name), []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func teamFile(name string, order int, featured bool) string {
	return fmt.Sprintf(`---
name: %s
role: Principal Consultant
bio: Helps clients ship.
tags:
  - Strategy
order: %d
featured: %v
---

Long-form bio for %s.
`, name, order, featured, name)
}

func caseStudyFile(title, publishedAt string, featured bool) string {
	return fmt.Sprintf(`---
title: %s
client: Acme Corp
description: A project.
challenge: Legacy platform.
outcome: Shipped on time.
tags:
  - platform
featured: %v
publishedAt: "%s"
metrics:
  - value: "40%%"
    label: Faster releases
testimonial:
  quote: Great partner.
  author: Jane Smith
  role: CTO
---

## What we did

Rebuilt the platform.
`, title, featured, publishedAt)
}

func blogPostFile(title, publishedAt string, featured bool) string {
	return fmt.Sprintf(`---
title: %s
excerpt: Why it matters.
author: Sam Field
publishedAt: "%s"
readTime: 4 min
tags:
  - engineering
featured: %v
---

Body of %s.
`, title, publishedAt, featured, title)
}

func TestListTeamSortedByOrder(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "team", "carol.md", teamFile("Carol", 3, false))
	writeContentFile(t, root, "team", "alice.md", teamFile("Alice", 1, true))
	writeContentFile(t, root, "team", "bob.md", teamFile("Bob", 2, false))

	repo := NewRepository(root)
	members, err := repo.ListTeam()
	if err != nil {
		t.Fatalf("ListTeam: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("got %d members, want 3", len(members))
	}
	for i := 1; i < len(members); i++ {
		if members[i-1].Order > members[i].Order {
			t.Errorf("members out of order: %d before %d", members[i-1].Order, members[i].Order)
		}
	}
	if members[0].Name != "Alice" {
		t.Errorf("first member = %q, want Alice", members[0].Name)
	}
	if !strings.Contains(members[0].Content, "Long-form bio for Alice.") {
		t.Errorf("body not rendered: %q", members[0].Content)
	}
}

func TestListCaseStudiesNewestFirst(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "case-studies", "january.md", caseStudyFile("January", "2024-01-01", false))
	writeContentFile(t, root, "case-studies", "june.md", caseStudyFile("June", "2024-06-01", false))

	repo := NewRepository(root)
	studies, err := repo.ListCaseStudies()
	if err != nil {
		t.Fatalf("ListCaseStudies: %v", err)
	}
	if len(studies) != 2 {
		t.Fatalf("got %d studies, want 2", len(studies))
	}
	if studies[0].Title != "June" || studies[1].Title != "January" {
		t.Errorf("order = [%s, %s], want [June, January]", studies[0].Title, studies[1].Title)
	}
	for i := 1; i < len(studies); i++ {
		a := publishedTime(studies[i-1].PublishedAt)
		b := publishedTime(studies[i].PublishedAt)
		if a.Before(b) {
			t.Errorf("studies not descending at index %d", i)
		}
	}
}

func TestListPostsNewestFirst(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "blog", "old.md", blogPostFile("Old", "2023-11-05", false))
	writeContentFile(t, root, "blog", "new.md", blogPostFile("New", "2024-02-10", true))
	writeContentFile(t, root, "blog", "middle.md", blogPostFile("Middle", "2023-12-01", false))

	repo := NewRepository(root)
	posts, err := repo.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	got := make([]string, len(posts))
	for i, p := range posts {
		got[i] = p.Title
	}
	want := []string{"New", "Middle", "Old"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestFeaturedFilterAndLimit(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "case-studies", "a.md", caseStudyFile("A", "2024-03-01", true))
	writeContentFile(t, root, "case-studies", "b.md", caseStudyFile("B", "2024-02-01", true))
	writeContentFile(t, root, "case-studies", "c.md", caseStudyFile("C", "2024-01-01", false))

	repo := NewRepository(root)
	featured, err := repo.FeaturedCaseStudies(1)
	if err != nil {
		t.Fatalf("FeaturedCaseStudies: %v", err)
	}
	if len(featured) != 1 {
		t.Fatalf("got %d featured, want 1", len(featured))
	}
	if !featured[0].Featured {
		t.Error("returned item is not featured")
	}
	if featured[0].Title != "A" {
		t.Errorf("featured[0] = %q, want A (ListCaseStudies order preserved)", featured[0].Title)
	}

	all, err := repo.FeaturedCaseStudies(0)
	if err != nil {
		t.Fatalf("FeaturedCaseStudies(0): %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d featured without limit, want 2", len(all))
	}
}

func TestListThenLookupRoundTrip(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "blog", "alpha.md", blogPostFile("Alpha", "2024-01-02", false))
	writeContentFile(t, root, "blog", "beta.md", blogPostFile("Beta", "2024-03-04", true))

	repo := NewRepository(root)
	posts, err := repo.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	for _, p := range posts {
		got, err := repo.Post(p.Slug)
		if err != nil {
			t.Fatalf("Post(%q): %v", p.Slug, err)
		}
		if !reflect.DeepEqual(got, p) {
			t.Errorf("Post(%q) differs from listing item:\n  got  %#v\n  want %#v", p.Slug, got, p)
		}
	}
}

func TestLookupMissingReturnsErrNotFound(t *testing.T) {
	repo := NewRepository(t.TempDir())
	_, err := repo.TeamMember("nonexistent-person")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLookupRejectsPathTraversal(t *testing.T) {
	repo := NewRepository(t.TempDir())
	for _, slug := range []string{"../secrets", "a/b", "", ".hidden"} {
		if _, err := repo.Post(slug); !errors.Is(err, ErrNotFound) {
			t.Errorf("Post(%q) err = %v, want ErrNotFound", slug, err)
		}
	}
}

func TestMalformedFileSkippedFromListing(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "blog", "good.md", blogPostFile("Good", "2024-01-01", false))
	writeContentFile(t, root, "blog", "broken.md", "---\ntitle: [unclosed\n---\nbody\n")
	writeContentFile(t, root, "blog", "incomplete.md", "---\ntitle: No author\n---\nbody\n")

	logger := &testLogger{}
	repo := NewRepository(root, WithLogger(logger))
	posts, err := repo.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Good" {
		t.Fatalf("posts = %v, want only Good", posts)
	}
	if len(logger.warnings) != 2 {
		t.Errorf("got %d warnings, want 2: %v", len(logger.warnings), logger.warnings)
	}

	// The same malformed file is a plain not-found on direct lookup.
	if _, err := repo.Post("incomplete"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Post(incomplete) err = %v, want ErrNotFound", err)
	}
}

func TestMissingDirectoryIsEmptySet(t *testing.T) {
	repo := NewRepository(t.TempDir())
	members, err := repo.ListTeam()
	if err != nil {
		t.Fatalf("ListTeam: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("got %d members from missing directory, want 0", len(members))
	}
	slugs, err := repo.TeamSlugs()
	if err != nil {
		t.Fatalf("TeamSlugs: %v", err)
	}
	if len(slugs) != 0 {
		t.Errorf("got %d slugs from missing directory, want 0", len(slugs))
	}
}

func TestSlugsComeFromFileNamesWithoutParsing(t *testing.T) {
	root := t.TempDir()
	// Files that would fail frontmatter validation must still be
	// enumerable: slug listing never opens the files.
	writeContentFile(t, root, "blog", "broken.md", "---\ntitle: [unclosed\n---\n")
	writeContentFile(t, root, "blog", "fine.md", blogPostFile("Fine", "2024-01-01", false))
	writeContentFile(t, root, "blog", "notes.txt", "not markdown")

	repo := NewRepository(root)
	slugs, err := repo.PostSlugs()
	if err != nil {
		t.Fatalf("PostSlugs: %v", err)
	}
	want := []string{"broken", "fine"}
	if !reflect.DeepEqual(slugs, want) {
		t.Errorf("slugs = %v, want %v", slugs, want)
	}
}

func TestListingsAreIdempotent(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "case-studies", "a.md", caseStudyFile("A", "2024-03-01", true))
	writeContentFile(t, root, "case-studies", "b.md", caseStudyFile("B", "2024-02-01", false))

	repo := NewRepository(root)
	first, err := repo.ListCaseStudies()
	if err != nil {
		t.Fatalf("ListCaseStudies: %v", err)
	}
	second, err := repo.ListCaseStudies()
	if err != nil {
		t.Fatalf("ListCaseStudies: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated listings over unchanged files differ")
	}
}
