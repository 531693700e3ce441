package docsite

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfig is wrapped by every ValidationError.
	ErrInvalidConfig = errors.New("invalid site config")

	// ErrUnknownConfigField classifies strict decoding failures caused by unknown keys.
	ErrUnknownConfigField = errors.New("unknown config field")

	// ErrUnsupportedFormat is returned when a config file extension is not yaml, yml or json.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrSnapshotNotFound is returned when a requested snapshot does not exist.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// FieldError describes one failed constraint.
type FieldError struct {
	Field   string // path of the offending field, e.g. themeConfig.nav[2].link
	Value   any    // the rejected value
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError bundles every FieldError found while building a SiteConfig.
type ValidationError struct {
	errs []FieldError
}

// Errors returns the individual failures in the order they were found.
func (e *ValidationError) Errors() []FieldError {
	out := make([]FieldError, len(e.errs))
	copy(out, e.errs)
	return out
}

// HasField reports whether any failure refers to field.
func (e *ValidationError) HasField(field string) bool {
	for _, fe := range e.errs {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) Error() string {
	switch len(e.errs) {
	case 0:
		return ErrInvalidConfig.Error()
	case 1:
		return fmt.Sprintf("%s: %s", ErrInvalidConfig, e.errs[0])
	}
	msgs := make([]string, len(e.errs))
	for i, fe := range e.errs {
		msgs[i] = fe.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}
