// Package config loads theme definition files.
//
// A theme file declares tokens and the style rules whose value
// templates reference them:
//
//	tokens:
//	  height: 36px
//	  shape-radius: var(--mdc-shape-radius, 4px)
//	  label-color:
//	    name: mdc-label-color
//	    fallback: rgba(0, 0, 0, 0.87)
//	styles:
//	  .mdc-button:
//	    height: height
//	    border-radius: shape-radius
//	    margin: calc(height / 2) auto
//
// Scalar token values that look like var() expressions become custom
// properties; a mapping with a name key declares one explicitly, with
// an optional fallback that may itself be a custom property. Sequence
// values become space-separated lists, and sequences of sequences
// become comma-separated lists of space-separated lists (the shape of
// multi-value properties like box-shadow).
//
// Files are parsed through yaml.Node rather than plain structs so that
// token and rule order survives loading; substitution order is part of
// the theme's meaning. JSON files parse too, since YAML is a superset.
package config
