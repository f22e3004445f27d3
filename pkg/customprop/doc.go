// Package customprop models CSS custom properties with dual rendering:
// a var() reference form and an inlined fallback form.
//
// A Prop carries a --prefixed property name and an optional fallback,
// which may itself be another Prop. Fallback chains render as nested
// var() expressions:
//
//	p := customprop.New("shape-radius", "4px")
//	p.Var()      // "var(--shape-radius, 4px)"
//	p.Fallback() // "4px"
//
// Substitution picks between the two forms: the var() reference for
// browsers with custom property support, the fallback literal for
// static output.
package customprop
