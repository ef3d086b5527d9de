package siteworks

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eastvale/siteworks/content"
)

func (a *App) handleHome(c echo.Context) error {
	studies, err := a.Cache.FeaturedCaseStudies(3)
	if err != nil {
		return err
	}
	posts, err := a.Cache.RecentPosts(3)
	if err != nil {
		return err
	}
	team, err := a.Cache.FeaturedTeam(4)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(studies, posts, team))
}

func (a *App) handleTeam(c echo.Context) error {
	members, err := a.Cache.Team()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Team(members))
}

func (a *App) handleTeamMember(c echo.Context) error {
	member, err := a.Cache.TeamMember(c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	return Render(c, a.Views.TeamMember(member))
}

func (a *App) handleWork(c echo.Context) error {
	studies, err := a.Cache.CaseStudies()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Work(studies))
}

func (a *App) handleCaseStudy(c echo.Context) error {
	study, err := a.Cache.CaseStudy(c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	all, err := a.Cache.CaseStudies()
	if err != nil {
		return err
	}
	return Render(c, a.Views.CaseStudy(study, RelatedCaseStudies(study, all)))
}

func (a *App) handleInsights(c echo.Context) error {
	tag := c.QueryParam("tag")
	posts, err := a.Cache.Posts(tag)
	if err != nil {
		return err
	}
	tags, err := a.Cache.Tags()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Insights(posts, tag, tags))
}

func (a *App) handleInsightPost(c echo.Context) error {
	post, err := a.Cache.Post(c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	recent, err := a.Cache.RecentPosts(3)
	if err != nil {
		return err
	}
	return Render(c, a.Views.InsightPost(post, recent))
}

func (a *App) handleOverview(c echo.Context) error {
	doc, err := a.Cache.Overview()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Overview(doc))
}

func (a *App) handleContact(c echo.Context) error {
	return Render(c, a.Views.Contact(CsrfToken(c), ContactIdle))
}

func (a *App) handleContactSubmit(c echo.Context) error {
	if !a.contactLimiter.Allow(c.RealIP()) {
		return RenderStatus(c, http.StatusTooManyRequests, a.Views.Contact(CsrfToken(c), ContactRateLimited))
	}

	inq := Inquiry{
		Name:    strings.TrimSpace(c.FormValue("name")),
		Email:   strings.TrimSpace(c.FormValue("email")),
		Company: strings.TrimSpace(c.FormValue("company")),
		Message: strings.TrimSpace(c.FormValue("message")),
	}
	if inq.Name == "" || inq.Email == "" || inq.Message == "" {
		return RenderStatus(c, http.StatusBadRequest, a.Views.Contact(CsrfToken(c), ContactInvalid))
	}

	if err := a.Inquiries.Save(inq); err != nil {
		return err
	}
	return Render(c, a.Views.Contact(CsrfToken(c), ContactSent))
}

// handleStatic serves a prose page (about, careers, services, ...) from the
// user's templates. An unknown page falls through to the 404 view.
func (a *App) handleStatic(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		if a.Views.Static == nil {
			return echo.ErrNotFound
		}
		cmp := a.Views.Static(name)
		if cmp == nil {
			return echo.ErrNotFound
		}
		return Render(c, cmp)
	}
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.Posts("")
	if err != nil {
		return err
	}
	return a.renderFeed(c, posts)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
