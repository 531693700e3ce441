package docsite

import "strings"

// ResolveSidebar returns the groups registered under the longest sidebar key
// that is a prefix of path, or nil when no key matches.
func (c *SiteConfig) ResolveSidebar(path string) []SidebarGroup {
	_, groups, _ := c.MatchSidebar(path)
	return groups
}

// MatchSidebar is ResolveSidebar that also reports the matched key.
func (c *SiteConfig) MatchSidebar(path string) (prefix string, groups []SidebarGroup, ok bool) {
	route := NormalizeRoute(path)
	for _, p := range c.prefixes {
		if strings.HasPrefix(route, p) {
			return p, cloneGroups(c.doc.ThemeConfig.Sidebar[p]), true
		}
	}
	return "", nil, false
}

// NormalizeRoute drops any query string or fragment. Sidebar keys never hold
// ? or #, so matching the result is the same as matching path literally.
func NormalizeRoute(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	return path
}

// SidebarGroups returns the groups registered under exactly prefix, or nil.
func (c *SiteConfig) SidebarGroups(prefix string) []SidebarGroup {
	return cloneGroups(c.doc.ThemeConfig.Sidebar[prefix])
}
