package views

// Link is a rendered navigation entry.
type Link struct {
	Text     string
	Href     string
	External bool
}

// Group is a sidebar group with its entries in display order.
type Group struct {
	Text      string
	Collapsed bool
	Items     []Link
}

// Section is every group registered under one route prefix.
type Section struct {
	Prefix string
	Groups []Group
	Active bool // the section the current route resolves to
}

// Outline carries everything the outline page shows. Handlers fill it from
// the current site config so that nothing is hardcoded in templates.
type Outline struct {
	Title           string
	Description     string
	Lang            string
	Logo            string
	Digest          string
	Route           string // route being previewed, may be empty
	Nav             []Link
	Sections        []Section
	Social          []Link
	FooterMessage   string
	FooterCopyright string
	Problems        []string
}
