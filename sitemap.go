package docsite

import (
	"encoding/xml"
	"io"
	"net/url"
	"path"
	"strings"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// SitemapURLs returns the absolute URL of every internal page linked from
// the config, rooted at siteURL and the config's base.
func (c *SiteConfig) SitemapURLs(siteURL string) []string {
	links := c.InternalLinks()
	out := make([]string, 0, len(links))
	for _, link := range links {
		out = append(out, BuildURL(siteURL, c.doc.Base, link))
	}
	return out
}

// WriteSitemap writes a sitemaps.org urlset for the internal links.
func (c *SiteConfig) WriteSitemap(w io.Writer, siteURL string) error {
	var urls []sitemapURL
	for _, loc := range c.SitemapURLs(siteURL) {
		urls = append(urls, sitemapURL{Loc: loc})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(sitemap); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// BuildURL joins a base URL with path segments. A trailing slash on the last
// segment is kept.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	joined := path.Join(append([]string{"/", u.Path}, pathSegments...)...)
	if n := len(pathSegments); n > 0 && strings.HasSuffix(pathSegments[n-1], "/") && joined != "/" {
		joined += "/"
	}
	u.Path = joined
	return u.String()
}
