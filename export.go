package docsite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// ExportFormat selects the output written by Export.
type ExportFormat string

const (
	ExportJSON      ExportFormat = "json"
	ExportYAML      ExportFormat = "yaml"
	ExportVitePress ExportFormat = "vitepress"
)

// Export writes the serializable document to w.
func Export(w io.Writer, c *SiteConfig, format ExportFormat) error {
	b, err := Encode(c, format)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// ExportFile atomically replaces path with the rendered document.
func ExportFile(path string, c *SiteConfig, format ExportFormat) error {
	b, err := Encode(c, format)
	if err != nil {
		return err
	}
	if err := renameio.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Encode encodes the serializable document in the given format.
func Encode(c *SiteConfig, format ExportFormat) ([]byte, error) {
	switch format {
	case ExportJSON, "":
		b, err := json.MarshalIndent(c.doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case ExportYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c.doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case ExportVitePress:
		// A JSON object is a valid JavaScript object literal.
		b, err := json.MarshalIndent(c.doc, "", "  ")
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		buf.WriteString("import { defineConfig } from 'vitepress';\n\n")
		buf.WriteString("export default defineConfig(")
		buf.Write(b)
		buf.WriteString(");\n")
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: export format %q", ErrUnsupportedFormat, format)
}
