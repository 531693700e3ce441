package views

import (
	"html/template"

	"github.com/a-h/templ"
)

var outlineTmpl = template.Must(template.New("outline").Funcs(funcs).Parse(`<!doctype html>
<html lang="{{if .Lang}}{{.Lang}}{{else}}en{{end}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} · navigation outline</title>
<style>
body{font:15px/1.5 system-ui,sans-serif;max-width:960px;margin:2rem auto;padding:0 1rem;color:#1f2328}
h1{margin-bottom:0}.muted{color:#656d76}.link-external::after{content:" ↗"}
section{border:1px solid #d0d7de;border-radius:6px;padding:.5rem 1rem;margin:1rem 0}
section.active{border-color:#0969da;box-shadow:0 0 0 1px #0969da}
code{background:#f6f8fa;padding:0 .25rem;border-radius:4px}.problem{color:#cf222e}
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
<p class="muted">{{.Description}}</p>
<p class="muted">lang <code>{{.Lang}}</code>{{if .Logo}} · logo <code>{{.Logo}}</code>{{end}} · digest <code>{{.Digest}}</code></p>
</header>
<form method="get" action="/">
<label>Preview route <input name="path" value="{{.Route}}" placeholder="/guide/getting-started"></label>
<button type="submit">Resolve</button>
</form>
{{if .Problems}}<h2>Problems</h2>
<ul>{{range .Problems}}<li class="problem">{{.}}</li>{{end}}</ul>{{end}}
<h2>Nav</h2>
<ol>{{range .Nav}}<li><a class="{{linkClass .External}}" href="{{if .External}}{{.Href}}{{else}}/?path={{.Href}}{{end}}">{{.Text}}</a> <code>{{.Href}}</code></li>{{end}}</ol>
<h2>Sidebar</h2>
{{range .Sections}}<section{{if .Active}} class="active"{{end}}>
<h3><code>{{.Prefix}}</code></h3>
{{range .Groups}}<h4>{{.Text}}{{if .Collapsed}} <span class="muted">(collapsed)</span>{{end}}</h4>
<ol>{{range .Items}}<li><a class="{{linkClass .External}}" href="{{if .External}}{{.Href}}{{else}}/?path={{.Href}}{{end}}">{{.Text}}</a> <code>{{.Href}}</code></li>{{end}}</ol>
{{else}}<p class="muted">no sidebar under this prefix</p>{{end}}
</section>{{else}}<p class="muted">no sidebar configured</p>{{end}}
{{if .Social}}<h2>Social</h2>
<ul>{{range .Social}}<li><a class="{{linkClass .External}}" href="{{.Href}}">{{.Text}}</a></li>{{end}}</ul>{{end}}
<footer class="muted">
{{if .FooterMessage}}<p>{{.FooterMessage}}</p>{{end}}
{{if .FooterCopyright}}<p>{{.FooterCopyright}}</p>{{end}}
</footer>
</body>
</html>
`))

// OutlinePage renders the navigation outline of a site config.
func OutlinePage(o Outline) templ.Component {
	return templ.FromGoHTML(outlineTmpl, o)
}

// NotFound renders a minimal 404 page.
func NotFound() templ.Component {
	return templ.Raw(`<!doctype html><html><head><title>Not found</title></head><body><h1>404</h1><p>Nothing here. <a href="/">Back to the outline</a>.</p></body></html>`)
}

// ServerError renders a minimal error page for 5xx responses.
func ServerError() templ.Component {
	return templ.Raw(`<!doctype html><html><head><title>Error</title></head><body><h1>Server error</h1><p>The site config could not be served. Check the inspector log.</p></body></html>`)
}
