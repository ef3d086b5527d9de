// Package content loads the markdown content tree that drives the site:
// team members, case studies, blog posts, and the long-form company
// overview document. Every call re-reads the files underneath it — there is
// no cache and no write path, so concurrent use is safe and repeated calls
// over unchanged files return identical results.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// ErrNotFound is returned by the by-slug lookups when no content file
// matches the slug. It is the expected miss, not a failure.
var ErrNotFound = errors.New("content: not found")

// Logger receives warnings about content files that exist but cannot be
// parsed. Echo's logger satisfies it, as does the stdlib fallback used when
// none is provided.
type Logger interface {
	Warnf(format string, args ...interface{})
}

type stdLogger struct{}

func (stdLogger) Warnf(format string, args ...interface{}) {
	log.Printf("WARN "+format, args...)
}

const (
	teamDir        = "team"
	caseStudiesDir = "case-studies"
	blogDir        = "blog"

	defaultOverviewFile = "company-overview.txt"
)

// Repository reads typed content out of a single content root. The root is
// injected at construction so tests and deployments can point it anywhere.
type Repository struct {
	root         string
	overviewFile string
	logger       Logger
}

// Option configures a Repository.
type Option func(*Repository)

// WithOverviewFile overrides the company-overview document path, relative
// to the content root.
func WithOverviewFile(name string) Option {
	return func(r *Repository) {
		r.overviewFile = name
	}
}

// WithLogger sets the logger used to report malformed content files.
func WithLogger(l Logger) Option {
	return func(r *Repository) {
		r.logger = l
	}
}

// NewRepository creates a Repository rooted at dir.
func NewRepository(dir string, opts ...Option) *Repository {
	r := &Repository{
		root:         dir,
		overviewFile: defaultOverviewFile,
		logger:       stdLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// markdownFiles lists the .md file names in a content subdirectory, sorted
// by name. A missing directory is an empty content set; any other readdir
// failure is an environment problem and propagates.
func (r *Repository) markdownFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(r.root, dir))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("content: read %s directory: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

// slugs returns the slugs for a subdirectory straight from file names.
// No file is opened and no markdown is rendered.
func (r *Repository) slugs(dir string) ([]string, error) {
	files, err := r.markdownFiles(dir)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(files))
	for _, f := range files {
		slugs = append(slugs, strings.TrimSuffix(f, ".md"))
	}
	return slugs, nil
}

// frontmatterDoc is the envelope contract: parse into it, then validate.
type frontmatterDoc interface {
	Validate() error
}

// parseFile splits a content file into validated frontmatter and a rendered
// HTML body.
func (r *Repository) parseFile(path string, fm frontmatterDoc) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	body, err := frontmatter.Parse(f, fm)
	if err != nil {
		return "", fmt.Errorf("parse frontmatter: %w", err)
	}
	if err := fm.Validate(); err != nil {
		return "", fmt.Errorf("invalid frontmatter: %w", err)
	}
	return renderMarkdown(string(body))
}

// itemPath resolves a slug to its file path. Slugs that try to escape the
// content directory resolve to nothing.
func (r *Repository) itemPath(dir, slug string) (string, bool) {
	if slug == "" || slug != filepath.Base(slug) || strings.HasPrefix(slug, ".") {
		return "", false
	}
	return filepath.Join(r.root, dir, slug+".md"), true
}

// publishedTime parses a publishedAt value for sorting. It accepts a plain
// date or RFC 3339; anything else sorts to the zero time.
func publishedTime(s string) time.Time {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

// ---------------------------------------------------------------------------
// Team members

func (r *Repository) teamMember(slug string) (TeamMember, error) {
	path, ok := r.itemPath(teamDir, slug)
	if !ok {
		return TeamMember{}, ErrNotFound
	}
	var fm teamFrontmatter
	html, err := r.parseFile(path, &fm)
	if err != nil {
		return TeamMember{}, err
	}
	return TeamMember{
		Slug:     slug,
		Name:     fm.Name,
		Role:     fm.Role,
		Bio:      fm.Bio,
		Image:    fm.Image,
		Tags:     fm.Tags,
		LinkedIn: fm.LinkedIn,
		GitHub:   fm.GitHub,
		Email:    fm.Email,
		Order:    fm.Order,
		Featured: fm.Featured,
		Content:  html,
	}, nil
}

// ListTeam returns every team member sorted by ascending order field.
// Files that fail to parse are logged and skipped so one bad file cannot
// take down the whole listing.
func (r *Repository) ListTeam() ([]TeamMember, error) {
	files, err := r.markdownFiles(teamDir)
	if err != nil {
		return nil, err
	}
	var members []TeamMember
	for _, name := range files {
		slug := strings.TrimSuffix(name, ".md")
		m, err := r.teamMember(slug)
		if err != nil {
			r.logger.Warnf("content: skipping %s/%s: %v", teamDir, name, err)
			continue
		}
		members = append(members, m)
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Order < members[j].Order
	})
	return members, nil
}

// FeaturedTeam returns featured team members in ListTeam order. A positive
// limit truncates the result.
func (r *Repository) FeaturedTeam(limit int) ([]TeamMember, error) {
	members, err := r.ListTeam()
	if err != nil {
		return nil, err
	}
	var featured []TeamMember
	for _, m := range members {
		if m.Featured {
			featured = append(featured, m)
		}
	}
	return truncate(featured, limit), nil
}

// TeamMember looks up a single team member by slug. A missing or malformed
// file yields ErrNotFound, never a hard error.
func (r *Repository) TeamMember(slug string) (TeamMember, error) {
	m, err := r.teamMember(slug)
	if err != nil {
		return TeamMember{}, r.lookupMiss(teamDir, slug, err)
	}
	return m, nil
}

// TeamSlugs enumerates team member slugs from file names only.
func (r *Repository) TeamSlugs() ([]string, error) {
	return r.slugs(teamDir)
}

// ---------------------------------------------------------------------------
// Case studies

func (r *Repository) caseStudy(slug string) (CaseStudy, error) {
	path, ok := r.itemPath(caseStudiesDir, slug)
	if !ok {
		return CaseStudy{}, ErrNotFound
	}
	var fm caseStudyFrontmatter
	html, err := r.parseFile(path, &fm)
	if err != nil {
		return CaseStudy{}, err
	}
	return CaseStudy{
		Slug:         slug,
		Title:        fm.Title,
		Client:       fm.Client,
		Description:  fm.Description,
		Excerpt:      fm.Excerpt,
		Challenge:    fm.Challenge,
		Outcome:      fm.Outcome,
		CoverImage:   fm.CoverImage,
		Image:        fm.Image,
		Tags:         fm.Tags,
		Featured:     fm.Featured,
		PublishedAt:  fm.PublishedAt,
		Industry:     fm.Industry,
		Duration:     fm.Duration,
		Services:     fm.Services,
		Metrics:      fm.Metrics,
		Technologies: fm.Technologies,
		Testimonial:  fm.Testimonial,
		Content:      html,
	}, nil
}

// ListCaseStudies returns every case study sorted by descending publish
// date. Parse failures are logged and skipped.
func (r *Repository) ListCaseStudies() ([]CaseStudy, error) {
	files, err := r.markdownFiles(caseStudiesDir)
	if err != nil {
		return nil, err
	}
	var studies []CaseStudy
	for _, name := range files {
		slug := strings.TrimSuffix(name, ".md")
		s, err := r.caseStudy(slug)
		if err != nil {
			r.logger.Warnf("content: skipping %s/%s: %v", caseStudiesDir, name, err)
			continue
		}
		studies = append(studies, s)
	}
	sort.SliceStable(studies, func(i, j int) bool {
		return publishedTime(studies[i].PublishedAt).After(publishedTime(studies[j].PublishedAt))
	})
	return studies, nil
}

// FeaturedCaseStudies returns featured case studies in ListCaseStudies
// order. A positive limit truncates the result.
func (r *Repository) FeaturedCaseStudies(limit int) ([]CaseStudy, error) {
	studies, err := r.ListCaseStudies()
	if err != nil {
		return nil, err
	}
	var featured []CaseStudy
	for _, s := range studies {
		if s.Featured {
			featured = append(featured, s)
		}
	}
	return truncate(featured, limit), nil
}

// CaseStudy looks up a single case study by slug.
func (r *Repository) CaseStudy(slug string) (CaseStudy, error) {
	s, err := r.caseStudy(slug)
	if err != nil {
		return CaseStudy{}, r.lookupMiss(caseStudiesDir, slug, err)
	}
	return s, nil
}

// CaseStudySlugs enumerates case study slugs from file names only.
func (r *Repository) CaseStudySlugs() ([]string, error) {
	return r.slugs(caseStudiesDir)
}

// ---------------------------------------------------------------------------
// Blog posts

func (r *Repository) post(slug string) (BlogPost, error) {
	path, ok := r.itemPath(blogDir, slug)
	if !ok {
		return BlogPost{}, ErrNotFound
	}
	var fm blogPostFrontmatter
	html, err := r.parseFile(path, &fm)
	if err != nil {
		return BlogPost{}, err
	}
	return BlogPost{
		Slug:        slug,
		Title:       fm.Title,
		Excerpt:     fm.Excerpt,
		Description: fm.Description,
		Author:      fm.Author,
		AuthorRole:  fm.AuthorRole,
		PublishedAt: fm.PublishedAt,
		ReadTime:    fm.ReadTime,
		Tags:        fm.Tags,
		Category:    fm.Category,
		CoverImage:  fm.CoverImage,
		Image:       fm.Image,
		Featured:    fm.Featured,
		Content:     html,
	}, nil
}

// ListPosts returns every blog post sorted by descending publish date.
// Parse failures are logged and skipped.
func (r *Repository) ListPosts() ([]BlogPost, error) {
	files, err := r.markdownFiles(blogDir)
	if err != nil {
		return nil, err
	}
	var posts []BlogPost
	for _, name := range files {
		slug := strings.TrimSuffix(name, ".md")
		p, err := r.post(slug)
		if err != nil {
			r.logger.Warnf("content: skipping %s/%s: %v", blogDir, name, err)
			continue
		}
		posts = append(posts, p)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return publishedTime(posts[i].PublishedAt).After(publishedTime(posts[j].PublishedAt))
	})
	return posts, nil
}

// RecentPosts returns the newest posts, at most limit of them.
func (r *Repository) RecentPosts(limit int) ([]BlogPost, error) {
	posts, err := r.ListPosts()
	if err != nil {
		return nil, err
	}
	return truncate(posts, limit), nil
}

// FeaturedPosts returns featured posts in ListPosts order. A positive
// limit truncates the result.
func (r *Repository) FeaturedPosts(limit int) ([]BlogPost, error) {
	posts, err := r.ListPosts()
	if err != nil {
		return nil, err
	}
	var featured []BlogPost
	for _, p := range posts {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return truncate(featured, limit), nil
}

// Post looks up a single blog post by slug.
func (r *Repository) Post(slug string) (BlogPost, error) {
	p, err := r.post(slug)
	if err != nil {
		return BlogPost{}, r.lookupMiss(blogDir, slug, err)
	}
	return p, nil
}

// PostSlugs enumerates blog post slugs from file names only.
func (r *Repository) PostSlugs() ([]string, error) {
	return r.slugs(blogDir)
}

// ---------------------------------------------------------------------------

// lookupMiss maps a by-slug failure to ErrNotFound. A missing file is the
// ordinary miss; a malformed file is logged first so the operator can see
// it, but the caller still gets a plain not-found.
func (r *Repository) lookupMiss(dir, slug string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	r.logger.Warnf("content: %s/%s.md unreadable, treating as not found: %v", dir, slug, err)
	return ErrNotFound
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
