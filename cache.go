package siteworks

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/eastvale/siteworks/content"
)

// ContentCache is an in-memory snapshot of the content repository with a
// TTL. The repository itself re-reads files on every call; the cache keeps
// request handling off the filesystem between refreshes. Invalidate forces
// a reload after content changes.
type ContentCache struct {
	mu       sync.RWMutex
	team     []content.TeamMember
	studies  []content.CaseStudy
	posts    []content.BlogPost
	tags     []string
	overview content.OverviewDoc
	fetched  time.Time
	ttl      time.Duration
	repo     *content.Repository
}

// NewContentCache creates a ContentCache backed by the given repository.
func NewContentCache(repo *content.Repository, ttl time.Duration) *ContentCache {
	return &ContentCache{repo: repo, ttl: ttl}
}

func (c *ContentCache) valid() bool {
	return !c.fetched.IsZero() && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ContentCache) Invalidate() {
	c.mu.Lock()
	c.fetched = time.Time{}
	c.mu.Unlock()
}

func (c *ContentCache) load() error {
	team, err := c.repo.ListTeam()
	if err != nil {
		return err
	}
	studies, err := c.repo.ListCaseStudies()
	if err != nil {
		return err
	}
	posts, err := c.repo.ListPosts()
	if err != nil {
		return err
	}
	overview, err := c.repo.Overview()
	if err != nil {
		return err
	}
	c.team = team
	c.studies = studies
	c.posts = posts
	c.tags = collectTags(posts)
	c.overview = overview
	c.fetched = time.Now()
	return nil
}

// ensureLoaded refreshes the snapshot if stale. It tries a read lock first;
// only takes a write lock if a reload is needed.
func (c *ContentCache) ensureLoaded() error {
	c.mu.RLock()
	if c.valid() {
		c.mu.RUnlock()
		return nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return nil
	}
	return c.load()
}

// Team returns all team members in display order.
func (c *ContentCache) Team() ([]content.TeamMember, error) {
	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.team, nil
}

// FeaturedTeam returns featured team members, at most limit of them.
func (c *ContentCache) FeaturedTeam(limit int) ([]content.TeamMember, error) {
	members, err := c.Team()
	if err != nil {
		return nil, err
	}
	var featured []content.TeamMember
	for _, m := range members {
		if m.Featured {
			featured = append(featured, m)
		}
	}
	return truncate(featured, limit), nil
}

// TeamMember returns a single team member by slug from the snapshot.
func (c *ContentCache) TeamMember(slug string) (content.TeamMember, error) {
	members, err := c.Team()
	if err != nil {
		return content.TeamMember{}, err
	}
	for _, m := range members {
		if m.Slug == slug {
			return m, nil
		}
	}
	return content.TeamMember{}, content.ErrNotFound
}

// CaseStudies returns all case studies, newest first.
func (c *ContentCache) CaseStudies() ([]content.CaseStudy, error) {
	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.studies, nil
}

// FeaturedCaseStudies returns featured case studies, at most limit of them.
func (c *ContentCache) FeaturedCaseStudies(limit int) ([]content.CaseStudy, error) {
	studies, err := c.CaseStudies()
	if err != nil {
		return nil, err
	}
	var featured []content.CaseStudy
	for _, s := range studies {
		if s.Featured {
			featured = append(featured, s)
		}
	}
	return truncate(featured, limit), nil
}

// CaseStudy returns a single case study by slug from the snapshot.
func (c *ContentCache) CaseStudy(slug string) (content.CaseStudy, error) {
	studies, err := c.CaseStudies()
	if err != nil {
		return content.CaseStudy{}, err
	}
	for _, s := range studies {
		if s.Slug == slug {
			return s, nil
		}
	}
	return content.CaseStudy{}, content.ErrNotFound
}

// Posts returns blog posts, newest first, optionally filtered by tag.
func (c *ContentCache) Posts(tag string) ([]content.BlogPost, error) {
	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	posts := c.posts
	c.mu.RUnlock()
	if tag == "" {
		return posts, nil
	}
	normalized := normalizeTag(tag)
	var filtered []content.BlogPost
	for _, p := range posts {
		for _, t := range p.Tags {
			if normalizeTag(t) == normalized {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered, nil
}

// RecentPosts returns the newest posts, at most limit of them.
func (c *ContentCache) RecentPosts(limit int) ([]content.BlogPost, error) {
	posts, err := c.Posts("")
	if err != nil {
		return nil, err
	}
	return truncate(posts, limit), nil
}

// Post returns a single blog post by slug from the snapshot.
func (c *ContentCache) Post(slug string) (content.BlogPost, error) {
	posts, err := c.Posts("")
	if err != nil {
		return content.BlogPost{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return content.BlogPost{}, content.ErrNotFound
}

// Tags returns all unique post tags, sorted.
func (c *ContentCache) Tags() ([]string, error) {
	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tags, nil
}

// Overview returns the rendered company overview document.
func (c *ContentCache) Overview() (content.OverviewDoc, error) {
	if err := c.ensureLoaded(); err != nil {
		return content.OverviewDoc{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.overview, nil
}

func collectTags(posts []content.BlogPost) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			if tag := normalizeTag(t); tag != "" {
				set[tag] = struct{}{}
			}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
