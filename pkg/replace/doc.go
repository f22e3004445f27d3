// Package replace is the token substitution engine behind theme value
// templates. Given a template string like "calc(height / 2)" and a
// mapping of token names to values, it rewrites every occurrence of
// each token with the value's CSS text:
//
//	m := css.NewMapping().Set("height", "36px")
//	out, err := replace.Replace("calc(height / 2)", m, false)
//	// "calc(36px / 2)"
//
// Custom property values render as their var() reference, or as their
// fallback literal when the fallback flag is set.
//
// Substitution is a literal substring rewrite, applied one mapping
// entry at a time in mapping order. Later entries therefore see the
// output of earlier ones; that order dependence is specified behavior,
// not an accident, and mirrors how the theme templates are authored.
// Matches for a single entry are collected up front and applied
// rightmost-first, so a replacement whose text contains its own token
// name is never re-scanned.
//
// ReplaceList applies the same rewrite to every string leaf of a
// nested css.List, preserving each level's separator and passing
// non-string elements through untouched.
package replace
