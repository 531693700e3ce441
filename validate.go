package docsite

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// SocialIcons lists the icon identifiers the generator ships with.
var SocialIcons = []string{
	"discord",
	"facebook",
	"github",
	"instagram",
	"linkedin",
	"mastodon",
	"npm",
	"slack",
	"twitter",
	"x",
	"youtube",
}

var socialIconSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(SocialIcons))
	for _, icon := range SocialIcons {
		m[icon] = struct{}{}
	}
	return m
}()

// validator accumulates field errors.
type validator struct {
	errs []FieldError
}

func (v *validator) add(field, message string, value any) {
	v.errs = append(v.errs, FieldError{Field: field, Value: value, Message: message})
}

func (v *validator) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return &ValidationError{errs: v.errs}
}

func (v *validator) notEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "must not be empty", value)
	}
}

// link accepts a rooted path or an absolute http(s) URL.
func (v *validator) link(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "must not be empty", value)
		return
	}
	if strings.HasPrefix(value, "/") && !strings.HasPrefix(value, "//") {
		return
	}
	v.absoluteURL(field, value)
}

func (v *validator) absoluteURL(field, value string) {
	u, err := url.Parse(value)
	if err != nil {
		v.add(field, fmt.Sprintf("invalid URL: %v", err), value)
		return
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		v.add(field, "must be a rooted path or an absolute http(s) URL", value)
		return
	}
	if u.Host == "" {
		v.add(field, "URL must have a host", value)
	}
}

func (v *validator) navItem(field string, item NavItem) {
	v.notEmpty(field+".text", item.Text)
	v.link(field+".link", item.Link)
	if item.ActiveMatch != "" {
		if _, err := regexp.Compile(item.ActiveMatch); err != nil {
			v.add(field+".activeMatch", fmt.Sprintf("invalid pattern: %v", err), item.ActiveMatch)
		}
	}
}

func validateDocument(doc Document) error {
	v := &validator{}

	v.notEmpty("title", doc.Title)
	v.notEmpty("description", doc.Description)

	if doc.Lang != "" {
		if _, err := language.Parse(doc.Lang); err != nil {
			v.add("lang", "not a valid BCP 47 language tag", doc.Lang)
		}
	}
	if doc.Base != "" && (!strings.HasPrefix(doc.Base, "/") || !strings.HasSuffix(doc.Base, "/")) {
		v.add("base", "must start and end with /", doc.Base)
	}

	tc := doc.ThemeConfig
	if tc.Logo != "" {
		v.link("themeConfig.logo", tc.Logo)
	}

	for i, item := range tc.Nav {
		v.navItem(fmt.Sprintf("themeConfig.nav[%d]", i), item)
	}

	// Sorted so that error order does not depend on map iteration.
	prefixes := make([]string, 0, len(tc.Sidebar))
	for prefix := range tc.Sidebar {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	for _, prefix := range prefixes {
		field := fmt.Sprintf("themeConfig.sidebar[%q]", prefix)
		if !strings.HasPrefix(prefix, "/") {
			v.add(field, "prefix must start with /", prefix)
		}
		if strings.ContainsAny(prefix, "?#") {
			v.add(field, "prefix must not contain ? or #", prefix)
		}
		for gi, group := range tc.Sidebar[prefix] {
			gfield := fmt.Sprintf("%s[%d]", field, gi)
			v.notEmpty(gfield+".text", group.Text)
			if len(group.Items) == 0 {
				v.add(gfield+".items", "group must contain at least one item", group.Text)
			}
			for ii, item := range group.Items {
				v.navItem(fmt.Sprintf("%s.items[%d]", gfield, ii), item)
			}
		}
	}

	for i, sl := range tc.SocialLinks {
		field := fmt.Sprintf("themeConfig.socialLinks[%d]", i)
		if _, ok := socialIconSet[sl.Icon]; !ok {
			v.add(field+".icon", fmt.Sprintf("unknown icon (allowed: %s)", strings.Join(SocialIcons, ", ")), sl.Icon)
		}
		if strings.TrimSpace(sl.Link) == "" {
			v.add(field+".link", "must not be empty", sl.Link)
		} else {
			v.absoluteURL(field+".link", sl.Link)
		}
	}

	return v.err()
}
