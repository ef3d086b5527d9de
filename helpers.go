package siteworks

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/eastvale/siteworks/content"
)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// JoinTags joins tags with ", ".
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// RelatedCaseStudies finds case studies that share at least one tag with current.
func RelatedCaseStudies(current content.CaseStudy, studies []content.CaseStudy) []content.CaseStudy {
	tagSet := make(map[string]struct{})
	for _, t := range current.Tags {
		if tag := normalizeTag(t); tag != "" {
			tagSet[tag] = struct{}{}
		}
	}
	var related []content.CaseStudy
	for _, s := range studies {
		if s.Slug == current.Slug {
			continue
		}
		for _, t := range s.Tags {
			if _, ok := tagSet[normalizeTag(t)]; ok {
				related = append(related, s)
				break
			}
		}
	}
	return related
}

// OrganizationJsonLD returns a JSON-LD string for an Organization schema
// using SiteConfig.
func OrganizationJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "Organization",
		"name":        cfg.Name,
		"url":         BuildURL(cfg.URL),
		"description": cfg.Description,
	}
	if cfg.Email != "" {
		data["contactPoint"] = map[string]string{
			"@type": "ContactPoint",
			"email": cfg.Email,
		}
	}
	return marshalJsonLD(data)
}

// ArticleJsonLD returns a JSON-LD string for an Article schema describing
// an insight post.
func ArticleJsonLD(post content.BlogPost, cfg SiteConfig) string {
	postURL := BuildURL(cfg.URL, "insights", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "Article",
		"headline":      post.Title,
		"description":   post.Excerpt,
		"datePublished": post.PublishedAt,
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
		"author": map[string]string{
			"@type": "Person",
			"name":  post.Author,
		},
	}
	if cfg.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		}
	}
	if len(post.Tags) > 0 {
		data["keywords"] = JoinTags(post.Tags)
	}
	return marshalJsonLD(data)
}

// PersonJsonLD returns a JSON-LD string for a Person schema describing a
// team member.
func PersonJsonLD(member content.TeamMember, cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     member.Name,
		"jobTitle": member.Role,
		"url":      BuildURL(cfg.URL, "team", member.Slug),
	}
	if cfg.Name != "" {
		data["worksFor"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		}
	}
	var sameAs []string
	if member.LinkedIn != "" {
		sameAs = append(sameAs, member.LinkedIn)
	}
	if member.GitHub != "" {
		sameAs = append(sameAs, member.GitHub)
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	return marshalJsonLD(data)
}

func marshalJsonLD(data map[string]interface{}) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
