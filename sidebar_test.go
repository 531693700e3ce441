package docsite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func groupNamed(text string) SidebarGroup {
	return SidebarGroup{Text: text, Items: []NavItem{{Text: text, Link: "/page"}}}
}

func TestResolveSidebar(t *testing.T) {
	cfg := MustBuild(Document{
		Title:       "t",
		Description: "d",
		ThemeConfig: ThemeConfig{Sidebar: Sidebar{
			"/guide/":          {groupNamed("g1")},
			"/api/":            {groupNamed("g2")},
			"/guide/advanced/": {groupNamed("g3")},
			"/empty/":          {},
		}},
	})

	tests := []struct {
		name   string
		path   string
		prefix string
		want   string // text of the first group; empty means no groups
	}{
		{"guide page", "/guide/getting-started", "/guide/", "g1"},
		{"guide index", "/guide/", "/guide/", "g1"},
		{"api page", "/api/client", "/api/", "g2"},
		{"longest prefix wins", "/guide/advanced/auth", "/guide/advanced/", "g3"},
		{"no match", "/other/", "", ""},
		{"prefix without trailing slash", "/guide", "", ""},
		{"missing leading slash", "guide/intro", "", ""},
		{"query and fragment ignored", "/api/client?x=1#top", "/api/", "g2"},
		{"fragment hides prefix", "/gu#ide/", "", ""},
		{"empty group list", "/empty/page", "/empty/", ""},
		{"root", "/", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, groups, ok := cfg.MatchSidebar(tt.path)
			assert.Equal(t, tt.prefix, prefix)
			assert.Equal(t, tt.prefix != "", ok)
			if tt.want == "" {
				assert.Empty(t, groups)
				return
			}
			if assert.NotEmpty(t, groups) {
				assert.Equal(t, tt.want, groups[0].Text)
			}
			assert.Equal(t, groups, cfg.ResolveSidebar(tt.path))
		})
	}
}

func TestResolveSidebar_NoSidebar(t *testing.T) {
	cfg := MustBuild(Document{Title: "t", Description: "d"})
	assert.Nil(t, cfg.ResolveSidebar("/guide/"))
}

func TestResolveSidebar_RootKeyCatchesAll(t *testing.T) {
	cfg := MustBuild(Document{
		Title:       "t",
		Description: "d",
		ThemeConfig: ThemeConfig{Sidebar: Sidebar{
			"/":       {groupNamed("root")},
			"/guide/": {groupNamed("guide")},
		}},
	})
	assert.Equal(t, "root", cfg.ResolveSidebar("/changelog")[0].Text)
	assert.Equal(t, "guide", cfg.ResolveSidebar("/guide/x")[0].Text)
}

func TestSidebarPrefixes_Order(t *testing.T) {
	cfg := MustBuild(Document{
		Title:       "t",
		Description: "d",
		ThemeConfig: ThemeConfig{Sidebar: Sidebar{
			"/b/":       {groupNamed("b")},
			"/a/":       {groupNamed("a")},
			"/a/long/":  {groupNamed("long")},
			"/":         {groupNamed("root")},
			"/zz/deep/": {groupNamed("deep")},
		}},
	})
	assert.Equal(t, []string{"/zz/deep/", "/a/long/", "/a/", "/b/", "/"}, cfg.SidebarPrefixes())
}

func TestBuild_RejectsSidebarKeyWithQueryOrFragment(t *testing.T) {
	for _, key := range []string{"/faq#top", "/search?q=", "/?"} {
		_, err := Build(Document{
			Title:       "t",
			Description: "d",
			ThemeConfig: ThemeConfig{Sidebar: Sidebar{key: {groupNamed("g")}}},
		})
		assert.ErrorIs(t, err, ErrInvalidConfig, key)
	}
}

func TestNormalizeRoute(t *testing.T) {
	assert.Equal(t, "", NormalizeRoute(""))
	assert.Equal(t, "guide/", NormalizeRoute("guide/"))
	assert.Equal(t, "/guide/x", NormalizeRoute("/guide/x?lang=en"))
	assert.Equal(t, "/guide/x", NormalizeRoute("/guide/x#install"))
}

func routeSegment() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{"guide", "api", "advanced", "config", "a", "ab"})
}

// routeGen draws rooted paths built from a small alphabet of segments so that
// generated keys and paths overlap often.
func routeGen(trailingSlash bool) *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		segs := rapid.SliceOfN(routeSegment(), 0, 3).Draw(t, "segments")
		route := "/" + strings.Join(segs, "/")
		if trailingSlash && len(segs) > 0 {
			route += "/"
		}
		return route
	})
}

func TestResolveSidebar_LongestPrefixProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOfNDistinct(routeGen(true), 0, 6, rapid.ID[string]).Draw(t, "keys")
		path := routeGen(rapid.Bool().Draw(t, "slash")).Draw(t, "path")
		if rapid.Bool().Draw(t, "relative") {
			path = strings.TrimPrefix(path, "/")
		}
		path += rapid.SampledFrom([]string{"", "?x", "#y", "?lang=en#top", "#a/b/"}).Draw(t, "suffix")

		sb := make(Sidebar, len(keys))
		for _, k := range keys {
			sb[k] = []SidebarGroup{groupNamed(k)}
		}
		cfg := MustBuild(Document{Title: "t", Description: "d", ThemeConfig: ThemeConfig{Sidebar: sb}})

		want := ""
		for _, k := range keys {
			if strings.HasPrefix(path, k) && len(k) > len(want) {
				want = k
			}
		}

		prefix, groups, ok := cfg.MatchSidebar(path)
		if want == "" {
			if ok || groups != nil {
				t.Fatalf("path %q: expected no match, got %q", path, prefix)
			}
			return
		}
		if !ok || prefix != want {
			t.Fatalf("path %q: matched %q, want %q", path, prefix, want)
		}
		if len(groups) != 1 || groups[0].Text != want {
			t.Fatalf("path %q: groups %+v do not belong to %q", path, groups, want)
		}
	})
}
