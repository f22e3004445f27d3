package replace

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/taroyuyu/material-components-web/pkg/css"
	"github.com/taroyuyu/material-components-web/pkg/customprop"
)

// ErrInvalidMapping reports that the replacement mapping argument was
// not a key-value mapping. Match with errors.Is.
var ErrInvalidMapping = errors.New("replacement mapping is not a map")

// InvalidMappingError carries the offending value for diagnostics.
// It unwraps to ErrInvalidMapping.
type InvalidMappingError struct {
	Value any
}

func (e *InvalidMappingError) Error() string {
	return fmt.Sprintf("invalid replacement mapping: %v (%T)", e.Value, e.Value)
}

func (e *InvalidMappingError) Unwrap() error { return ErrInvalidMapping }

// Replace rewrites every occurrence of each mapped token name in
// template with the token's replacement text and returns the result.
//
// mapping may be a *css.Mapping (applied in insertion order), or a
// plain map[string]css.Value, map[string]string, or map[string]any
// (applied in sorted-key order, since Go map iteration is randomized).
// Any other value fails with an *InvalidMappingError; that is the only
// error condition. Tokens with no occurrences and empty mappings are
// no-ops.
//
// When fallback is true, custom property values substitute as their
// fallback literal instead of their var() reference.
func Replace(template string, mapping any, fallback bool) (string, error) {
	m, err := normalizeMapping(mapping)
	if err != nil {
		return "", err
	}

	for _, name := range m.Names() {
		v, _ := m.Get(name)
		template = replaceAll(template, name, effectiveText(v, fallback))
	}
	return template, nil
}

// ReplaceList applies Replace to every string leaf of a nested list,
// recursing into sublists and passing other elements through by
// identity. The input list is never mutated; each level of the result
// keeps the separator of the corresponding input level.
func ReplaceList(list *css.List, mapping any, fallback bool) (*css.List, error) {
	m, err := normalizeMapping(mapping)
	if err != nil {
		return nil, err
	}
	return replaceList(list, m, fallback), nil
}

func replaceList(list *css.List, m *css.Mapping, fallback bool) *css.List {
	if list == nil {
		return nil
	}
	out := &css.List{Sep: list.Sep, Items: make([]css.Value, 0, len(list.Items))}
	for _, item := range list.Items {
		switch el := item.(type) {
		case css.String:
			s, _ := Replace(string(el), m, fallback)
			out.Items = append(out.Items, css.String(s))
		case *css.List:
			out.Items = append(out.Items, replaceList(el, m, fallback))
		default:
			out.Items = append(out.Items, el)
		}
	}
	return out
}

// replaceAll rewrites every non-overlapping occurrence of name in s.
// Match positions are collected left to right first, then applied
// rightmost-first so earlier offsets stay valid when the replacement
// length differs from the token length.
func replaceAll(s, name, repl string) string {
	if name == "" {
		return s
	}

	var starts []int
	for from := 0; ; {
		i := strings.Index(s[from:], name)
		if i < 0 {
			break
		}
		starts = append(starts, from+i)
		from += i + len(name)
	}

	for i := len(starts) - 1; i >= 0; i-- {
		at := starts[i]
		s = s[:at] + repl + s[at+len(name):]
	}
	return s
}

// effectiveText resolves the text a value substitutes as.
func effectiveText(v css.Value, fallback bool) string {
	if p, ok := v.(customprop.Prop); ok {
		if fallback {
			return p.Fallback()
		}
		return p.Var()
	}
	return v.CSS()
}

// normalizeMapping coerces the accepted mapping forms into an ordered
// css.Mapping. Plain Go maps get sorted keys for deterministic output.
func normalizeMapping(mapping any) (*css.Mapping, error) {
	switch m := mapping.(type) {
	case *css.Mapping:
		if m == nil {
			return css.NewMapping(), nil
		}
		return m, nil
	case map[string]css.Value:
		return sortedMapping(m, func(v css.Value) any { return v }), nil
	case map[string]string:
		return sortedMapping(m, func(v string) any { return v }), nil
	case map[string]any:
		return sortedMapping(m, func(v any) any { return v }), nil
	default:
		return nil, &InvalidMappingError{Value: mapping}
	}
}

func sortedMapping[V any](m map[string]V, coerce func(V) any) *css.Mapping {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := css.NewMapping()
	for _, k := range keys {
		out.Set(k, coerce(m[k]))
	}
	return out
}
