package docsite

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a site config encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// LoadFile reads, decodes and builds the site config stored at path.
func LoadFile(path string) (*SiteConfig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	doc, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return Build(doc)
}

// Decode strictly decodes a single document. Unknown keys are rejected with
// ErrUnknownConfigField.
func Decode(r io.Reader, format Format) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, err
	}
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return Document{}, nil
			}
			return Document{}, classifyDecodeErr(err, data, format)
		}
		var rest yaml.Node
		if err := dec.Decode(&rest); !errors.Is(err, io.EOF) {
			return Document{}, errors.New("config contains multiple documents or trailing content")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return Document{}, nil
			}
			return Document{}, classifyDecodeErr(err, data, format)
		}
		var rest json.RawMessage
		if err := dec.Decode(&rest); !errors.Is(err, io.EOF) {
			return Document{}, errors.New("config contains trailing content")
		}
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return doc, nil
}

// classifyDecodeErr retries a failed strict decode leniently. When only the
// strict pass fails, the document is well formed apart from unknown keys.
func classifyDecodeErr(err error, data []byte, format Format) error {
	var doc Document
	var lenient error
	switch format {
	case FormatYAML:
		lenient = yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	case FormatJSON:
		lenient = json.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	}
	if lenient == nil {
		return fmt.Errorf("%w: %v", ErrUnknownConfigField, err)
	}
	return err
}
