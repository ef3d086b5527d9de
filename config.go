package siteworks

import "time"

// SiteConfig holds all configuration for a siteworks site.
type SiteConfig struct {
	Name        string // Site name (default "Studio")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for the feed and meta tags
	Email       string // Contact address shown on the site and in JSON-LD

	Addr       string // Listen address (default ":3000")
	ContentDir string // Markdown content root (default "content")

	InquiryDatabasePath string // SQLite path for contact inquiries (default "data/inquiries.db")
	CookieSecure        bool   // Set true for HTTPS

	ContentCacheTTL time.Duration // Content cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Studio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.InquiryDatabasePath == "" {
		c.InquiryDatabasePath = "data/inquiries.db"
	}
	if c.ContentCacheTTL == 0 {
		c.ContentCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithOverviewFile overrides the company-overview document name inside the
// content directory.
func WithOverviewFile(name string) Option {
	return func(a *App) {
		a.overviewFile = name
	}
}
