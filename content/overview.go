package content

import (
	"errors"
	"fmt"
	"html"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// TOCEntry is one heading anchor in the company overview's table of
// contents, in document order.
type TOCEntry struct {
	Level int
	ID    string
	Text  string
}

// OverviewDoc is the rendered company overview document.
type OverviewDoc struct {
	Raw   string
	Title string
	HTML  string
	TOC   []TOCEntry
}

// Marker lines recognized by the overview preprocessor. They must be the
// entire trimmed content of a line to match.
const (
	imagePlaceholderToken = "{image}"
	pageBreakToken        = "--- PAGE BREAK ---"
)

// imagePlaceholderHTML is the fixed block substituted for an {image} line.
const imagePlaceholderHTML = `<figure class="image-placeholder">
  <div class="image-placeholder-frame">
    <img src="https://placehold.co/1600x900/png?text=Replace+This+Image" alt="Placeholder" loading="lazy">
  </div>
  <figcaption>
    <div class="image-placeholder-title">Image placeholder</div>
    <div class="image-placeholder-note">Replace this placeholder in the content file with your image URL/path later.</div>
  </figcaption>
</figure>`

const pageBreakHTML = `<hr class="page-break">`

var (
	reTitle    = regexp.MustCompile(`(?m)^#\s+(.+?)\s*$`)
	reHeading2 = regexp.MustCompile(`^##\s+(.+?)\s*$`)
	reHeading3 = regexp.MustCompile(`^###\s+(.+?)\s*$`)
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	quoteStrip = strings.NewReplacer(`'`, "", `"`, "")
)

// Overview reads and renders the company overview document. A missing file
// yields an empty document, not an error; read failures propagate.
func (r *Repository) Overview() (OverviewDoc, error) {
	raw, err := os.ReadFile(filepath.Join(r.root, r.overviewFile))
	if errors.Is(err, fs.ErrNotExist) {
		return OverviewDoc{}, nil
	}
	if err != nil {
		return OverviewDoc{}, fmt.Errorf("content: read overview: %w", err)
	}
	return buildOverview(string(raw))
}

func buildOverview(raw string) (OverviewDoc, error) {
	md, toc := preprocessOverview(raw)
	rendered, err := renderMarkdown(md)
	if err != nil {
		return OverviewDoc{}, err
	}
	return OverviewDoc{
		Raw:   raw,
		Title: overviewTitle(raw),
		HTML:  rendered,
		TOC:   toc,
	}, nil
}

// overviewTitle extracts the first top-level markdown heading, if any.
func overviewTitle(raw string) string {
	if m := reTitle.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// preprocessOverview walks the document line by line, substituting marker
// lines and turning ##/### headings into explicit anchored heading elements
// while collecting the table of contents. It is a pure fold: the anchor
// disambiguation state is the seen map, so the same document always
// produces the same ids.
func preprocessOverview(raw string) (string, []TOCEntry) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	var (
		out  []string
		toc  []TOCEntry
		seen = map[string]int{}
	)

	nextID := func(base string) string {
		seen[base]++
		if n := seen[base]; n > 1 {
			return fmt.Sprintf("%s-%d", base, n)
		}
		return base
	}

	emitHeading := func(level int, text string, fallback string) {
		id := nextID(anchorID(text, fallback))
		toc = append(toc, TOCEntry{Level: level, ID: id, Text: text})
		out = append(out, "", fmt.Sprintf(`<h%d id="%s">%s</h%d>`, level, id, html.EscapeString(text), level), "")
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == imagePlaceholderToken:
			out = append(out, "", imagePlaceholderHTML, "")
		case trimmed == pageBreakToken:
			out = append(out, "", pageBreakHTML, "")
		case reHeading3.MatchString(line):
			emitHeading(3, strings.TrimSpace(reHeading3.FindStringSubmatch(line)[1]), "subsection")
		case reHeading2.MatchString(line):
			emitHeading(2, strings.TrimSpace(reHeading2.FindStringSubmatch(line)[1]), "section")
		default:
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n"), toc
}

// anchorID converts heading text to a URL-safe anchor id: lowercase, quotes
// stripped, non-alphanumeric runs collapsed to single hyphens, hyphens
// trimmed. Empty results fall back to a level-specific base so
// disambiguation still applies.
func anchorID(text, fallback string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = quoteStrip.Replace(s)
	s = reNonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return fallback
	}
	return s
}
