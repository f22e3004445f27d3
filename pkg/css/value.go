package css

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a CSS value that can render itself as stylesheet text.
type Value interface {
	// CSS returns the value's stylesheet text.
	CSS() string
}

// String is a literal CSS text leaf.
type String string

// CSS returns the string unchanged.
func (s String) CSS() string { return string(s) }

// Raw wraps an arbitrary Go value that passes through substitution
// untouched (numbers, colors, already-resolved tokens).
type Raw struct {
	Val any
}

// CSS formats the wrapped value as CSS text. Floats render without
// trailing zeros so 16.0 becomes "16", matching stylesheet output.
func (r Raw) CSS() string {
	switch v := r.Val.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Separator is the join style of a List.
type Separator string

// List separators.
const (
	Space Separator = " "
	Comma Separator = ", "
)

// List is an ordered sequence of values with its own separator.
// Nested lists keep their separators independently of the parent.
type List struct {
	Sep   Separator
	Items []Value
}

// NewList builds a list from the given items, coercing each with ValueOf.
func NewList(sep Separator, items ...any) *List {
	l := &List{Sep: sep, Items: make([]Value, 0, len(items))}
	for _, it := range items {
		l.Items = append(l.Items, ValueOf(it))
	}
	return l
}

// CSS joins the element texts with the list separator.
func (l *List) CSS() string {
	if l == nil || len(l.Items) == 0 {
		return ""
	}
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = it.CSS()
	}
	return strings.Join(parts, string(l.Sep))
}

// ValueOf coerces a Go value into a Value. Values pass through, strings
// become String leaves, everything else is wrapped in Raw.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case string:
		return String(t)
	default:
		return Raw{Val: v}
	}
}
