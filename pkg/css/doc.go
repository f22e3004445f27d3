// Package css models the value side of a stylesheet: string leaves,
// space- or comma-separated lists, and opaque pass-through values, plus
// an insertion-ordered token mapping.
//
// Values form a small tagged union dispatched by type switch:
//   - String — a literal CSS text leaf ("16px", "calc(height / 2)")
//   - *List — an ordered sequence with its own separator; lists nest
//   - Raw — an opaque value carried through substitution unchanged
//
// Anything implementing Value (notably customprop.Prop) can appear as a
// list element or mapping value.
//
// Mapping preserves insertion order. Token substitution is order
// sensitive — later entries see the output of earlier ones — so the
// order the author wrote is part of the data, the same way a Sass map
// keeps its key order.
package css
