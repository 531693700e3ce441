// Package scaffold writes a starter documentation site: a site.yaml, CLI
// settings and a small docs tree, rendered from embedded templates.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

const root = "templates"

// Data holds the template variables passed to every scaffold template.
type Data struct {
	ProjectName string
	Dir         string // last path segment of ProjectName
	SiteName    string
	Initial     string
	Lang        string
	Year        int
}

// NewData derives template data from a project name such as "my-docs" or
// "github.com/acme/my-docs".
func NewData(name, lang string) Data {
	dir := name
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		dir = name[idx+1:]
	}
	if lang == "" {
		lang = "en-US"
	}
	site := ToTitle(dir)
	initial := "D"
	if site != "" {
		r, _ := utf8.DecodeRuneInString(site)
		initial = strings.ToUpper(string(r))
	}
	return Data{
		ProjectName: name,
		Dir:         dir,
		SiteName:    site,
		Initial:     initial,
		Lang:        lang,
		Year:        time.Now().Year(),
	}
}

// Generate renders every template into dir, which must not exist yet. It
// returns the created files relative to dir, in walk order.
func Generate(dir string, data Data) ([]string, error) {
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("directory %q already exists", dir)
	}

	var created []string
	err := fs.WalkDir(Templates, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		out := filepath.Join(dir, filepath.FromSlash(outputName(rel)))
		if d.IsDir() {
			return os.MkdirAll(out, 0o755)
		}

		content, err := Templates.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		tmpl, err := template.New(path.Base(p)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", p, err)
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		if err := tmpl.Execute(f, data); err != nil {
			f.Close()
			return fmt.Errorf("execute template %s: %w", p, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		created = append(created, filepath.ToSlash(strings.TrimPrefix(out, dir+string(filepath.Separator))))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// outputName strips the .tmpl suffix and maps "dot" prefixed names to
// dotfiles, which embed would otherwise need special handling for.
func outputName(rel string) string {
	rel = strings.TrimSuffix(rel, ".tmpl")
	dir, base := path.Split(rel)
	if strings.HasPrefix(base, "dot") && len(base) > 3 {
		base = "." + base[3:]
	}
	return dir + base
}

// ToTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "my-docs" -> "My Docs", "mydocs" -> "Mydocs"
func ToTitle(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "-", " "))
}
