package siteworks

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// staticPage describes a fixed route for the sitemap. Pages not handled by
// a dedicated handler are served from the user's Static view.
type staticPage struct {
	Route      string
	ChangeFreq string
	Priority   string
	Prose      bool // rendered via ViewFuncs.Static
}

var staticPages = []staticPage{
	{Route: "", ChangeFreq: "weekly", Priority: "1.0"},
	{Route: "/about", ChangeFreq: "monthly", Priority: "0.8", Prose: true},
	{Route: "/about/story", ChangeFreq: "monthly", Priority: "0.7", Prose: true},
	{Route: "/about/how-we-think", ChangeFreq: "monthly", Priority: "0.7", Prose: true},
	{Route: "/services", ChangeFreq: "monthly", Priority: "0.9", Prose: true},
	{Route: "/work", ChangeFreq: "weekly", Priority: "0.9"},
	{Route: "/team", ChangeFreq: "weekly", Priority: "0.8"},
	{Route: "/insights", ChangeFreq: "weekly", Priority: "0.9"},
	{Route: "/company-overview", ChangeFreq: "monthly", Priority: "0.6"},
	{Route: "/contact", ChangeFreq: "monthly", Priority: "0.8"},
	{Route: "/careers", ChangeFreq: "weekly", Priority: "0.7", Prose: true},
	{Route: "/privacy", ChangeFreq: "yearly", Priority: "0.3", Prose: true},
	{Route: "/terms", ChangeFreq: "yearly", Priority: "0.3", Prose: true},
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

func (a *App) renderSitemap(c echo.Context) error {
	base := a.Config.URL

	urls := make([]sitemapURL, 0, len(staticPages))
	for _, p := range staticPages {
		urls = append(urls, sitemapURL{
			Loc:        BuildURL(base, strings.TrimPrefix(p.Route, "/")),
			ChangeFreq: p.ChangeFreq,
			Priority:   p.Priority,
		})
	}

	// Team routes come from file names only, no parsing needed.
	teamSlugs, err := a.Content.TeamSlugs()
	if err != nil {
		return err
	}
	for _, slug := range teamSlugs {
		urls = append(urls, sitemapURL{
			Loc:        BuildURL(base, "team", slug),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}

	// Case studies and insights carry their publish date as lastmod.
	studies, err := a.Cache.CaseStudies()
	if err != nil {
		return err
	}
	for _, s := range studies {
		urls = append(urls, sitemapURL{
			Loc:        BuildURL(base, "work", s.Slug),
			LastMod:    s.PublishedAt,
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	posts, err := a.Cache.Posts("")
	if err != nil {
		return err
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:        BuildURL(base, "insights", p.Slug),
			LastMod:    p.PublishedAt,
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
