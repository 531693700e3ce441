package docsite

import (
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/zeebo/blake3"
)

// SiteConfig is a validated, read-only site definition. The zero value is not
// usable; construct one with Build.
type SiteConfig struct {
	doc      Document
	prefixes []string // sidebar keys, longest first
}

// Build validates doc and returns an immutable SiteConfig holding a deep copy
// of it. On failure the returned error is a *ValidationError listing every
// violated constraint.
func Build(doc Document) (*SiteConfig, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}
	c := &SiteConfig{doc: doc.clone()}
	c.prefixes = sortPrefixes(c.doc.ThemeConfig.Sidebar)
	return c, nil
}

// MustBuild is like Build but panics on invalid input. Intended for literals
// in tests and examples.
func MustBuild(doc Document) *SiteConfig {
	c, err := Build(doc)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *SiteConfig) Title() string       { return c.doc.Title }
func (c *SiteConfig) Description() string { return c.doc.Description }
func (c *SiteConfig) Lang() string        { return c.doc.Lang }
func (c *SiteConfig) Base() string        { return c.doc.Base }

// Logo returns the logo path or URL; empty means no logo.
func (c *SiteConfig) Logo() string { return c.doc.ThemeConfig.Logo }

// Nav returns the top navigation entries in display order.
func (c *SiteConfig) Nav() []NavItem { return cloneItems(c.doc.ThemeConfig.Nav) }

// SocialLinks returns the social links in display order.
func (c *SiteConfig) SocialLinks() []SocialLink {
	return c.doc.ThemeConfig.clone().SocialLinks
}

// Footer returns the footer, or nil when none is configured.
func (c *SiteConfig) Footer() *Footer {
	return c.doc.ThemeConfig.clone().Footer
}

// SidebarPrefixes returns the sidebar keys, longest first.
func (c *SiteConfig) SidebarPrefixes() []string {
	out := make([]string, len(c.prefixes))
	copy(out, c.prefixes)
	return out
}

// Document returns the plain serializable form, in the shape the generator
// expects. The result is a copy; mutating it does not affect c.
func (c *SiteConfig) Document() Document {
	return c.doc.clone()
}

// Equal reports whether c and other hold the same definition. Nil and empty
// lists compare equal.
func (c *SiteConfig) Equal(other *SiteConfig) bool {
	if c == nil || other == nil {
		return c == other
	}
	return cmp.Equal(c.doc, other.doc, cmpopts.EquateEmpty())
}

// MarshalJSON encodes the serializable document.
func (c *SiteConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.doc)
}

// Digest returns a hex blake3 hash of the canonical JSON encoding. Configs
// that are Equal share a digest.
func (c *SiteConfig) Digest() string {
	// encoding/json sorts map keys, so the encoding is canonical once nil
	// group lists are spelled as empty ones.
	b, err := json.Marshal(canonicalDocument(c.doc))
	if err != nil {
		return ""
	}
	sum := blake3.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// canonicalDocument resolves the nil/empty ambiguities Equal ignores. Every
// other slice is either omitempty or non-empty after validation.
func canonicalDocument(doc Document) Document {
	if len(doc.ThemeConfig.Sidebar) == 0 {
		return doc
	}
	sb := make(Sidebar, len(doc.ThemeConfig.Sidebar))
	for prefix, groups := range doc.ThemeConfig.Sidebar {
		if groups == nil {
			groups = []SidebarGroup{}
		}
		sb[prefix] = groups
	}
	doc.ThemeConfig.Sidebar = sb
	return doc
}

func sortPrefixes(sb Sidebar) []string {
	out := make([]string, 0, len(sb))
	for prefix := range sb {
		out = append(out, prefix)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
