package views

import "html/template"

var funcs = template.FuncMap{
	"linkClass": LinkClass,
}

// LinkClass returns CSS classes for a link, with an external variant.
func LinkClass(external bool) string {
	base := "link"
	if external {
		base += " link-external"
	}
	return base
}
