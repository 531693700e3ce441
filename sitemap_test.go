package docsite

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapURLs(t *testing.T) {
	doc := nacosDocument()
	doc.Base = "/use-nacos/"
	urls := MustBuild(doc).SitemapURLs("https://use-py.github.io")

	require.Len(t, urls, 8)
	assert.Equal(t, "https://use-py.github.io/use-nacos/", urls[0])
	assert.Equal(t, "https://use-py.github.io/use-nacos/guide/", urls[1])
	assert.Contains(t, urls, "https://use-py.github.io/use-nacos/guide/getting-started")
}

func TestWriteSitemap(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MustBuild(nacosDocument()).WriteSitemap(&buf, "https://docs.example.com"))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte(xml.Header)))

	var set sitemapURLSet
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &set))
	assert.Equal(t, "http://www.sitemaps.org/schemas/sitemap/0.9", set.XMLNS)
	require.Len(t, set.URLs, 8)
	assert.Equal(t, "https://docs.example.com/api/discovery", set.URLs[7].Loc)
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", nil, "https://example.com/"},
		{"https://example.com", []string{"/", "/guide/"}, "https://example.com/guide/"},
		{"https://example.com/", []string{"/docs/", "/api/client"}, "https://example.com/docs/api/client"},
		{"https://example.com/sub", []string{"", "/"}, "https://example.com/sub/"},
		{"https://example.com", []string{"", "/"}, "https://example.com/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BuildURL(tt.base, tt.segments...), "%s %v", tt.base, tt.segments)
	}
}
