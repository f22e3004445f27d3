// Package theme resolves value templates against a set of named theme
// tokens and emits CSS rules.
//
// A Resolver binds a token mapping once and substitutes it into any
// number of templates:
//
//	tokens := css.NewMapping().
//		Set("height", "36px").
//		Set("shape-radius", customprop.New("mdc-shape-radius", "4px"))
//	r := theme.NewResolver(tokens)
//	out, _ := r.Text("calc(height / 2)", false) // "calc(36px / 2)"
//
// Rules render in two modes: reference mode, where custom properties
// emit var() expressions, and fallback mode, where they inline their
// fallback constants for output targets without custom property
// support.
package theme
