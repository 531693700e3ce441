package docsite

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	xlog "github.com/eringen/docsite/internal/log"
	"github.com/eringen/docsite/views"
)

// current returns the cached config, or 503 when none has ever loaded.
func (s *Server) current() (*SiteConfig, error) {
	cfg, err := s.Cache.Get()
	if err != nil {
		s.logger.Warn().Err(err).Str(xlog.FieldEvent, "config.unavailable").Msg("no site config to serve")
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "site config unavailable").SetInternal(err)
	}
	return cfg, nil
}

func (s *Server) handleOutline(c echo.Context) error {
	cfg, err := s.current()
	if err != nil {
		return err
	}
	route := strings.TrimSpace(c.QueryParam("path"))
	active := ""
	if route != "" {
		var ok bool
		active, _, ok = cfg.MatchSidebar(route)
		s.Metrics.observeLookup(ok)
	}

	o := views.Outline{
		Title:       cfg.Title(),
		Description: cfg.Description(),
		Lang:        cfg.Lang(),
		Logo:        cfg.Logo(),
		Digest:      cfg.Digest(),
		Route:       route,
		Nav:         navLinks(cfg.Nav()),
	}
	for _, prefix := range cfg.SidebarPrefixes() {
		sec := views.Section{Prefix: prefix, Active: route != "" && prefix == active}
		for _, g := range cfg.SidebarGroups(prefix) {
			sec.Groups = append(sec.Groups, views.Group{
				Text:      g.Text,
				Collapsed: g.Collapsed != nil && *g.Collapsed,
				Items:     navLinks(g.Items),
			})
		}
		o.Sections = append(o.Sections, sec)
	}
	for _, sl := range cfg.SocialLinks() {
		text := sl.AriaLabel
		if text == "" {
			text = sl.Icon
		}
		o.Social = append(o.Social, views.Link{Text: text, Href: sl.Link, External: true})
	}
	if f := cfg.Footer(); f != nil {
		o.FooterMessage = f.Message
		o.FooterCopyright = f.Copyright
	}
	if s.docs != nil {
		for _, p := range cfg.CheckLinks(s.docs) {
			o.Problems = append(o.Problems, p.String())
		}
	}
	return Render(c, views.OutlinePage(o))
}

func navLinks(items []NavItem) []views.Link {
	out := make([]views.Link, 0, len(items))
	for _, item := range items {
		out = append(out, views.Link{
			Text:     item.Text,
			Href:     item.Link,
			External: !strings.HasPrefix(item.Link, "/"),
		})
	}
	return out
}

func (s *Server) handleSite(c echo.Context) error {
	cfg, err := s.current()
	if err != nil {
		return err
	}
	c.Response().Header().Set("ETag", `"`+cfg.Digest()+`"`)
	return c.JSON(http.StatusOK, cfg.Document())
}

type sidebarResponse struct {
	Path    string         `json:"path"`
	Prefix  string         `json:"prefix,omitempty"`
	Matched bool           `json:"matched"`
	Groups  []SidebarGroup `json:"groups"`
}

func (s *Server) handleSidebar(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "path query parameter is required")
	}
	cfg, err := s.current()
	if err != nil {
		return err
	}
	prefix, groups, ok := cfg.MatchSidebar(path)
	s.Metrics.observeLookup(ok)
	if groups == nil {
		groups = []SidebarGroup{}
	}
	return c.JSON(http.StatusOK, sidebarResponse{
		Path:    NormalizeRoute(path),
		Prefix:  prefix,
		Matched: ok,
		Groups:  groups,
	})
}

type linksResponse struct {
	Links    []LinkRef     `json:"links"`
	Problems []LinkProblem `json:"problems"`
	Checked  bool          `json:"checked"`
}

func (s *Server) handleLinks(c echo.Context) error {
	cfg, err := s.current()
	if err != nil {
		return err
	}
	resp := linksResponse{Links: cfg.Links(), Problems: []LinkProblem{}}
	if resp.Links == nil {
		resp.Links = []LinkRef{}
	}
	if s.docs != nil {
		resp.Checked = true
		if p := cfg.CheckLinks(s.docs); p != nil {
			resp.Problems = p
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleLogo(c echo.Context) error {
	if s.docs == nil {
		return echo.NewHTTPError(http.StatusNotFound, "docs directory not configured")
	}
	cfg, err := s.current()
	if err != nil {
		return err
	}
	if cfg.Logo() == "" {
		return echo.NewHTTPError(http.StatusNotFound, "no logo configured")
	}
	info, err := cfg.InspectLogo(s.docs)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return c.JSON(http.StatusOK, info)
}

func (s *Server) handleSnapshots(c echo.Context) error {
	if s.Store == nil {
		return echo.NewHTTPError(http.StatusNotFound, "snapshot store not configured")
	}
	snaps, err := s.Store.List()
	if err != nil {
		return err
	}
	if snaps == nil {
		snaps = []Snapshot{}
	}
	return c.JSON(http.StatusOK, snaps)
}

type snapshotResponse struct {
	Snapshot
	Document Document `json:"document"`
	Changes  []Change `json:"changes"`
}

func (s *Server) handleSnapshot(c echo.Context) error {
	if s.Store == nil {
		return echo.NewHTTPError(http.StatusNotFound, "snapshot store not configured")
	}
	snap, err := s.Store.Get(c.Param("id"))
	if errors.Is(err, ErrSnapshotNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "snapshot not found")
	}
	if err != nil {
		return err
	}
	resp := snapshotResponse{Snapshot: snap, Document: snap.Config.Document(), Changes: []Change{}}
	// Changes are relative to the snapshot: what happened since it was taken.
	if cur, err := s.Cache.Get(); err == nil {
		if changes := Diff(snap.Config, cur); changes != nil {
			resp.Changes = changes
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleSitemap(c echo.Context) error {
	if s.Config.SiteURL == "" {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	cfg, err := s.current()
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return cfg.WriteSitemap(c.Response(), s.Config.SiteURL)
}

type healthResponse struct {
	Status    string `json:"status"`
	Digest    string `json:"digest,omitempty"`
	LastError string `json:"lastError,omitempty"`
}

func (s *Server) handleHealth(c echo.Context) error {
	resp := healthResponse{Status: "ok"}
	code := http.StatusOK
	cfg, err := s.Cache.Get()
	if err != nil {
		resp.Status = "unavailable"
		code = http.StatusServiceUnavailable
	} else {
		resp.Digest = cfg.Digest()
	}
	if last := s.Cache.LastError(); last != nil {
		resp.LastError = last.Error()
		if code == http.StatusOK {
			resp.Status = "stale"
		}
	}
	return c.JSON(code, resp)
}

func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	if code >= 500 && code != http.StatusServiceUnavailable {
		s.logger.Error().Err(err).Str(xlog.FieldEvent, "http.server_error").Str("uri", c.Request().RequestURI).Msg("server error")
	}

	// Machine endpoints and client errors other than 404 keep echo's JSON body.
	path := c.Request().URL.Path
	if strings.HasPrefix(path, "/api/") || path == "/healthz" || path == "/sitemap.xml" {
		s.Echo.DefaultHTTPErrorHandler(err, c)
		return
	}
	switch {
	case code == http.StatusNotFound:
		_ = RenderStatus(c, code, views.NotFound())
	case code >= 500:
		_ = RenderStatus(c, code, views.ServerError())
	default:
		s.Echo.DefaultHTTPErrorHandler(err, c)
	}
}
