package docsite

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinks_Order(t *testing.T) {
	refs := MustBuild(nacosDocument()).Links()
	require.Len(t, refs, 12)

	assert.Equal(t, LinkRef{Location: "themeConfig.nav[0]", Text: "首页", Link: "/"}, refs[0])
	assert.True(t, refs[3].External)
	// "/guide/" sorts before "/api/" because it is longer.
	assert.Equal(t, `themeConfig.sidebar["/guide/"][0].items[0]`, refs[4].Location)
	assert.Equal(t, `themeConfig.sidebar["/api/"][0].items[0]`, refs[7].Location)
	assert.Equal(t, LinkRef{
		Location: "themeConfig.socialLinks[0]",
		Text:     "github",
		Link:     "https://github.com/use-py/use-nacos",
		External: true,
	}, refs[11])
}

func TestInternalLinks_Distinct(t *testing.T) {
	doc := nacosDocument()
	doc.ThemeConfig.Nav = append(doc.ThemeConfig.Nav, NavItem{Text: "Start", Link: "/guide/getting-started#install"})

	got := MustBuild(doc).InternalLinks()
	assert.Equal(t, []string{
		"/", "/guide/", "/api/", "/guide/getting-started",
		"/api/auth", "/api/client", "/api/config", "/api/discovery",
	}, got)
}

func TestCheckLinks(t *testing.T) {
	problems := MustBuild(nacosDocument()).CheckLinks(os.DirFS("testdata/docs"))
	require.Len(t, problems, 1)
	assert.Equal(t, "/api/auth", problems[0].Link)
	assert.Equal(t, "api/auth.md", problems[0].Source)
	assert.Contains(t, problems[0].String(), `"认证配置" links to /api/auth`)
}

func TestCheckLinks_MapFS(t *testing.T) {
	docs := fstest.MapFS{
		"index.md":       {Data: []byte("# Home")},
		"guide/index.md": {Data: []byte("# Guide")},
	}
	cfg := MustBuild(Document{
		Title:       "t",
		Description: "d",
		ThemeConfig: ThemeConfig{Nav: []NavItem{
			{Text: "Home", Link: "/"},
			{Text: "Guide", Link: "/guide/#top"},
			{Text: "Missing", Link: "/guide/missing.html"},
			{Text: "External", Link: "https://example.com/nowhere"},
		}},
	})

	problems := cfg.CheckLinks(docs)
	require.Len(t, problems, 1)
	assert.Equal(t, "guide/missing.md", problems[0].Source)
}

func TestSourceFor(t *testing.T) {
	tests := map[string]string{
		"/":                 "index.md",
		"/guide/":           "guide/index.md",
		"/guide/setup":      "guide/setup.md",
		"/guide/setup.html": "guide/setup.md",
		"/guide/setup.md":   "guide/setup.md",
		"/guide/setup#step": "guide/setup.md",
		"/guide/?q=1":       "guide/index.md",
		"/a/../b":           "b.md",
	}
	for route, want := range tests {
		assert.Equal(t, want, SourceFor(route), route)
	}
}
