package docsite

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Change is one field that differs between two documents.
type Change struct {
	Path string `json:"path"`
	Old  string `json:"old,omitempty"`
	New  string `json:"new,omitempty"`
}

// Diff compares two configs and returns the changed leaf fields in a stable
// order. A nil config compares as an empty document.
func Diff(old, next *SiteConfig) []Change {
	var a, b Document
	if old != nil {
		a = old.doc
	}
	if next != nil {
		b = next.doc
	}
	r := &changeReporter{}
	cmp.Equal(a, b, cmpopts.EquateEmpty(), cmp.Reporter(r))
	return r.changes
}

type changeReporter struct {
	path    cmp.Path
	changes []Change
	seen    map[string]struct{}
}

func (r *changeReporter) PushStep(ps cmp.PathStep) {
	r.path = append(r.path, ps)
}

func (r *changeReporter) PopStep() {
	r.path = r.path[:len(r.path)-1]
}

func (r *changeReporter) Report(rs cmp.Result) {
	if rs.Equal() {
		return
	}
	p := formatPath(r.path)
	if r.seen == nil {
		r.seen = make(map[string]struct{})
	}
	if _, dup := r.seen[p]; dup {
		return
	}
	vx, vy := r.path.Last().Values()
	r.seen[p] = struct{}{}
	r.changes = append(r.changes, Change{Path: p, Old: formatValue(vx), New: formatValue(vy)})
}

// formatPath renders a cmp path with the serialized field names, matching the
// paths used in FieldError.
func formatPath(path cmp.Path) string {
	var b strings.Builder
	for i, step := range path {
		switch s := step.(type) {
		case cmp.StructField:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(jsonName(path[i-1].Type(), s))
		case cmp.SliceIndex:
			kx, ky := s.SplitKeys()
			k := kx
			if k < 0 {
				k = ky
			}
			fmt.Fprintf(&b, "[%d]", k)
		case cmp.MapIndex:
			fmt.Fprintf(&b, "[%q]", fmt.Sprint(s.Key()))
		}
	}
	return b.String()
}

func jsonName(parent reflect.Type, f cmp.StructField) string {
	if parent.Kind() == reflect.Pointer {
		parent = parent.Elem()
	}
	tag := parent.Field(f.Index()).Tag.Get("json")
	if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
		return name
	}
	return f.Name()
}

func formatValue(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.CanInterface() {
		return fmt.Sprint(v.Interface())
	}
	return v.String()
}
