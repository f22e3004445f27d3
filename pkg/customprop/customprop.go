package customprop

import (
	"strings"

	"github.com/taroyuyu/material-components-web/pkg/css"
)

// Prop is a CSS custom property with an optional fallback.
// The zero value is not useful; construct with New.
type Prop struct {
	name     string
	fallback css.Value // nil when the property has no fallback
}

// New creates a custom property. The name is normalized to its
// --prefixed form. An optional fallback value may be given; it is
// coerced with css.ValueOf, so strings, numbers, and other Props are
// all accepted.
func New(name string, fallback ...any) Prop {
	p := Prop{name: normalizeName(name)}
	if len(fallback) > 0 && fallback[0] != nil {
		p.fallback = css.ValueOf(fallback[0])
	}
	return p
}

// normalizeName prepends "--" unless the name already carries it.
func normalizeName(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	return "--" + name
}

// Name returns the --prefixed property name.
func (p Prop) Name() string { return p.name }

// WithFallback returns a copy of the property with the given fallback.
func (p Prop) WithFallback(v any) Prop {
	p.fallback = css.ValueOf(v)
	return p
}

// HasFallback reports whether the property carries a fallback.
func (p Prop) HasFallback() bool { return p.fallback != nil }

// Var returns the var() reference form, including the fallback chain:
// "var(--a)", "var(--a, 8px)", or "var(--a, var(--b, 8px))".
func (p Prop) Var() string {
	if p.fallback == nil {
		return "var(" + p.name + ")"
	}
	return "var(" + p.name + ", " + p.fallback.CSS() + ")"
}

// Fallback returns the resolved fallback literal, following chained
// custom properties down to their final constant. Empty when the
// property has no fallback.
func (p Prop) Fallback() string {
	switch fb := p.fallback.(type) {
	case nil:
		return ""
	case Prop:
		return fb.Fallback()
	default:
		return fb.CSS()
	}
}

// CSS renders the property in its reference form, so a Prop used
// directly as a css.Value emits var().
func (p Prop) CSS() string { return p.Var() }

// Is reports whether a value is a custom property.
func Is(v any) bool {
	_, ok := v.(Prop)
	return ok
}

// Parse parses a var() expression such as "var(--x)" or
// "var(--x, var(--y, 8px))" into a Prop. The boolean result reports
// whether the text was a var() expression at all; malformed input
// returns false rather than an error since callers treat non-var text
// as a plain value.
func Parse(text string) (Prop, bool) {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "var(") || !strings.HasSuffix(s, ")") {
		return Prop{}, false
	}
	inner := s[len("var(") : len(s)-1]

	name, rest, hasFallback := cutTopLevel(inner)
	name = strings.TrimSpace(name)
	if !strings.HasPrefix(name, "--") {
		return Prop{}, false
	}
	if !hasFallback {
		return Prop{name: name}, true
	}

	rest = strings.TrimSpace(rest)
	if nested, ok := Parse(rest); ok {
		return Prop{name: name, fallback: nested}, true
	}
	return Prop{name: name, fallback: css.String(rest)}, true
}

// cutTopLevel splits on the first comma outside parentheses, so the
// fallback of "var(--a, var(--b, 8px))" stays intact.
func cutTopLevel(s string) (before, after string, found bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				return s[:i], s[i+1:], true
			}
		}
	}
	return s, "", false
}
