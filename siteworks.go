// Package siteworks is a marketing-site engine built with Go, Echo, and templ.
// It turns a directory of markdown content (team profiles, case studies,
// insight posts, and a long-form company overview document) into
// server-rendered pages, with a sitemap, RSS feed, JSON-LD, and a contact
// endpoint out of the box.
//
// Users provide their own templ templates via the ViewFuncs struct, and
// siteworks handles the content loading, handler logic, and middleware.
package siteworks

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eastvale/siteworks/content"
)

// ViewFuncs holds user-provided templ components that the framework calls
// when rendering pages. This is the inversion-of-control mechanism that
// lets users own and customize all templates.
type ViewFuncs struct {
	Home        func(studies []content.CaseStudy, posts []content.BlogPost, team []content.TeamMember) templ.Component
	Team        func(members []content.TeamMember) templ.Component
	TeamMember  func(member content.TeamMember) templ.Component
	Work        func(studies []content.CaseStudy) templ.Component
	CaseStudy   func(study content.CaseStudy, related []content.CaseStudy) templ.Component
	Insights    func(posts []content.BlogPost, activeTag string, tags []string) templ.Component
	InsightPost func(post content.BlogPost, recent []content.BlogPost) templ.Component
	Overview    func(doc content.OverviewDoc) templ.Component
	Contact     func(csrfToken string, status ContactStatus) templ.Component
	Static      func(page string) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central siteworks application. It wires together the content
// repository, cache, inquiry store, handlers, middleware, and user-provided
// templates.
type App struct {
	Config    SiteConfig
	Echo      *echo.Echo
	Content   *content.Repository
	Cache     *ContentCache
	Views     ViewFuncs
	Inquiries *InquiryStore

	contactLimiter *SubmitLimiter
	customRoutes   []func(*App)
	staticDir      string
	overviewFile   string
}

// New creates a new siteworks App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the content repository, cache, inquiry store,
// middleware, and routes, then starts the server.
func (a *App) Start() error {
	contentOpts := []content.Option{content.WithLogger(a.Echo.Logger)}
	if a.overviewFile != "" {
		contentOpts = append(contentOpts, content.WithOverviewFile(a.overviewFile))
	}
	a.Content = content.NewRepository(a.Config.ContentDir, contentOpts...)

	a.Cache = NewContentCache(a.Content, a.Config.ContentCacheTTL)

	inquiries, err := NewInquiryStore(a.Config.InquiryDatabasePath)
	if err != nil {
		return fmt.Errorf("siteworks: init inquiry store: %w", err)
	}
	a.Inquiries = inquiries

	a.contactLimiter = NewSubmitLimiter(5, time.Hour)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// User's static assets
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/team/", a.handleTeam)
	e.GET("/team/:slug/", a.handleTeamMember)
	e.GET("/work/", a.handleWork)
	e.GET("/work/:slug/", a.handleCaseStudy)
	e.GET("/insights/", a.handleInsights)
	e.GET("/insights/:slug/", a.handleInsightPost)
	e.GET("/company-overview/", a.handleOverview)
	e.GET("/contact/", a.handleContact)
	e.POST("/contact/", a.handleContactSubmit)

	// Prose pages rendered from user templates only.
	for _, p := range staticPages {
		if !p.Prose {
			continue
		}
		e.GET(p.Route+"/", a.handleStatic(strings.TrimPrefix(p.Route, "/")))
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Inquiries != nil {
		return a.Inquiries.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
// This is a convenience function for use in site main.go files.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("siteworks: required environment variable %s is not set", key)
	}
	return v
}
