package docsite

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// LinkRef is one link found in a site config, with the field it came from.
type LinkRef struct {
	Location string `json:"location"`
	Text     string `json:"text"`
	Link     string `json:"link"`
	External bool   `json:"external"`
}

// Links lists every nav, sidebar and social link in display order. Sidebar
// sections are visited longest prefix first.
func (c *SiteConfig) Links() []LinkRef {
	tc := c.doc.ThemeConfig
	var refs []LinkRef
	for i, item := range tc.Nav {
		refs = append(refs, newLinkRef(fmt.Sprintf("themeConfig.nav[%d]", i), item.Text, item.Link))
	}
	for _, prefix := range c.prefixes {
		for gi, group := range tc.Sidebar[prefix] {
			for ii, item := range group.Items {
				loc := fmt.Sprintf("themeConfig.sidebar[%q][%d].items[%d]", prefix, gi, ii)
				refs = append(refs, newLinkRef(loc, item.Text, item.Link))
			}
		}
	}
	for i, sl := range tc.SocialLinks {
		refs = append(refs, newLinkRef(fmt.Sprintf("themeConfig.socialLinks[%d]", i), sl.Icon, sl.Link))
	}
	return refs
}

// InternalLinks returns the distinct rooted paths linked from nav and
// sidebar, in first-seen order.
func (c *SiteConfig) InternalLinks() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, ref := range c.Links() {
		if ref.External {
			continue
		}
		route := stripFragment(ref.Link)
		if _, ok := seen[route]; ok {
			continue
		}
		seen[route] = struct{}{}
		out = append(out, route)
	}
	return out
}

func newLinkRef(loc, text, link string) LinkRef {
	return LinkRef{Location: loc, Text: text, Link: link, External: !strings.HasPrefix(link, "/")}
}

// LinkProblem is an internal link with no markdown source behind it.
type LinkProblem struct {
	LinkRef
	Source string `json:"source"` // markdown file that was expected
}

func (p LinkProblem) String() string {
	return fmt.Sprintf("%s: %q links to %s but %s does not exist", p.Location, p.Text, p.Link, p.Source)
}

// CheckLinks verifies that every internal link resolves to a markdown page in
// docs, the generator's source directory.
func (c *SiteConfig) CheckLinks(docs fs.FS) []LinkProblem {
	var problems []LinkProblem
	for _, ref := range c.Links() {
		if ref.External {
			continue
		}
		src := SourceFor(ref.Link)
		if _, err := fs.Stat(docs, src); err != nil {
			problems = append(problems, LinkProblem{LinkRef: ref, Source: src})
		}
	}
	return problems
}

// SourceFor maps a route to the markdown file the generator builds it from:
// "/guide/" is guide/index.md and "/guide/setup" or "/guide/setup.html" is
// guide/setup.md.
func SourceFor(route string) string {
	route = stripFragment(route)
	if i := strings.IndexByte(route, '?'); i >= 0 {
		route = route[:i]
	}
	route = strings.TrimPrefix(route, "/")
	if route == "" || strings.HasSuffix(route, "/") {
		return path.Join(route, "index.md")
	}
	route = strings.TrimSuffix(route, ".html")
	if strings.HasSuffix(route, ".md") {
		return path.Clean(route)
	}
	return path.Clean(route) + ".md"
}

func stripFragment(link string) string {
	if i := strings.IndexByte(link, '#'); i >= 0 {
		return link[:i]
	}
	return link
}
