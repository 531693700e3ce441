package docsite

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// publicDir is the generator's directory for files served verbatim at the site root.
const publicDir = "public"

// LogoInfo describes the configured logo.
type LogoInfo struct {
	Path     string `json:"path"`
	External bool   `json:"external"`
	Format   string `json:"format,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// InspectLogo locates the logo under docs/public and reads its format and
// dimensions. External logos are reported without being fetched. It returns
// a zero LogoInfo when no logo is configured.
func (c *SiteConfig) InspectLogo(docs fs.FS) (LogoInfo, error) {
	logo := c.doc.ThemeConfig.Logo
	if logo == "" {
		return LogoInfo{}, nil
	}
	if !strings.HasPrefix(logo, "/") {
		return LogoInfo{Path: logo, External: true}, nil
	}

	name := path.Join(publicDir, strings.TrimPrefix(path.Clean(logo), "/"))
	info := LogoInfo{Path: name}

	if strings.EqualFold(path.Ext(name), ".svg") {
		if _, err := fs.Stat(docs, name); err != nil {
			return info, fmt.Errorf("logo %s: %w", logo, err)
		}
		info.Format = "svg"
		return info, nil
	}

	f, err := docs.Open(name)
	if err != nil {
		return info, fmt.Errorf("logo %s: %w", logo, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return info, fmt.Errorf("decode logo %s: %w", logo, err)
	}
	info.Format = format
	info.Width = cfg.Width
	info.Height = cfg.Height
	return info, nil
}
