package docsite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_NoChanges(t *testing.T) {
	a := MustBuild(nacosDocument())
	b := MustBuild(nacosDocument())
	assert.Empty(t, Diff(a, b))
}

func TestDiff_FieldPaths(t *testing.T) {
	old := MustBuild(nacosDocument())

	doc := nacosDocument()
	doc.Title = "use-nacos docs"
	doc.ThemeConfig.Nav[1].Link = "/guide/intro"
	doc.ThemeConfig.Sidebar["/api/"][0].Items[3].Text = "Discovery"
	doc.ThemeConfig.Footer.Copyright = "Copyright © 2025"
	next := MustBuild(doc)

	changes := Diff(old, next)
	byPath := make(map[string]Change, len(changes))
	for _, ch := range changes {
		byPath[ch.Path] = ch
	}

	require.Len(t, changes, 4, "%+v", changes)
	assert.Equal(t, Change{Path: "title", Old: "use-nacos", New: "use-nacos docs"}, byPath["title"])
	assert.Equal(t, Change{Path: "themeConfig.nav[1].link", Old: "/guide/", New: "/guide/intro"}, byPath["themeConfig.nav[1].link"])
	assert.Equal(t, "Discovery", byPath[`themeConfig.sidebar["/api/"][0].items[3].text`].New)
	assert.Equal(t, "Copyright © 2025", byPath["themeConfig.footer.copyright"].New)
}

func TestDiff_AddedAndRemoved(t *testing.T) {
	old := MustBuild(nacosDocument())

	doc := nacosDocument()
	doc.ThemeConfig.Footer = nil
	doc.ThemeConfig.Sidebar["/changelog/"] = []SidebarGroup{groupNamed("changes")}
	next := MustBuild(doc)

	var paths []string
	for _, ch := range Diff(old, next) {
		paths = append(paths, ch.Path)
	}
	assert.Contains(t, paths, "themeConfig.footer")
	assert.Contains(t, paths, `themeConfig.sidebar["/changelog/"]`)
}

func TestDiff_NilOld(t *testing.T) {
	changes := Diff(nil, MustBuild(Document{Title: "t", Description: "d"}))
	require.Len(t, changes, 2)
	assert.Equal(t, "title", changes[0].Path)
	assert.Equal(t, "description", changes[1].Path)
}
