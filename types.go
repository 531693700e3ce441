package docsite

// NavItem is a single link entry with display text and a target path or URL.
type NavItem struct {
	Text        string `json:"text" yaml:"text"`
	Link        string `json:"link" yaml:"link"`
	ActiveMatch string `json:"activeMatch,omitempty" yaml:"activeMatch,omitempty"`
}

// SidebarGroup is a labeled, ordered cluster of links shown together in a sidebar.
type SidebarGroup struct {
	Text      string    `json:"text" yaml:"text"`
	Collapsed *bool     `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Items     []NavItem `json:"items" yaml:"items"`
}

// Sidebar maps a route prefix (e.g. "/guide/") to the groups shown for pages
// under that prefix.
type Sidebar map[string][]SidebarGroup

// SocialLink is an icon link rendered in the site header.
type SocialLink struct {
	Icon      string `json:"icon" yaml:"icon"`
	Link      string `json:"link" yaml:"link"`
	AriaLabel string `json:"ariaLabel,omitempty" yaml:"ariaLabel,omitempty"`
}

// Footer is the text shown at the bottom of every page.
type Footer struct {
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
	Copyright string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
}

// ThemeConfig carries the navigation half of a site definition.
type ThemeConfig struct {
	Logo        string       `json:"logo,omitempty" yaml:"logo,omitempty"`
	Nav         []NavItem    `json:"nav,omitempty" yaml:"nav,omitempty"`
	Sidebar     Sidebar      `json:"sidebar,omitempty" yaml:"sidebar,omitempty"`
	SocialLinks []SocialLink `json:"socialLinks,omitempty" yaml:"socialLinks,omitempty"`
	Footer      *Footer      `json:"footer,omitempty" yaml:"footer,omitempty"`
}

// Document is the plain, serializable shape of a site definition. It is both
// the input to Build and the value handed to the static-site generator.
type Document struct {
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Lang        string      `json:"lang,omitempty" yaml:"lang,omitempty"`
	Base        string      `json:"base,omitempty" yaml:"base,omitempty"`
	ThemeConfig ThemeConfig `json:"themeConfig" yaml:"themeConfig"`
}

func (d Document) clone() Document {
	out := d
	out.ThemeConfig = d.ThemeConfig.clone()
	return out
}

func (t ThemeConfig) clone() ThemeConfig {
	out := t
	out.Nav = cloneItems(t.Nav)
	if t.Sidebar != nil {
		out.Sidebar = make(Sidebar, len(t.Sidebar))
		for prefix, groups := range t.Sidebar {
			out.Sidebar[prefix] = cloneGroups(groups)
		}
	}
	if t.SocialLinks != nil {
		out.SocialLinks = make([]SocialLink, len(t.SocialLinks))
		copy(out.SocialLinks, t.SocialLinks)
	}
	if t.Footer != nil {
		f := *t.Footer
		out.Footer = &f
	}
	return out
}

func cloneItems(items []NavItem) []NavItem {
	if items == nil {
		return nil
	}
	out := make([]NavItem, len(items))
	copy(out, items)
	return out
}

func cloneGroups(groups []SidebarGroup) []SidebarGroup {
	if groups == nil {
		return nil
	}
	out := make([]SidebarGroup, len(groups))
	for i, g := range groups {
		out[i] = SidebarGroup{Text: g.Text, Items: cloneItems(g.Items)}
		if g.Collapsed != nil {
			c := *g.Collapsed
			out[i].Collapsed = &c
		}
	}
	return out
}
