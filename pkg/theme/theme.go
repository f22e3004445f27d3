package theme

import (
	"fmt"
	"io"

	"github.com/taroyuyu/material-components-web/pkg/css"
	"github.com/taroyuyu/material-components-web/pkg/replace"
)

// Resolver substitutes a fixed token mapping into value templates.
type Resolver struct {
	tokens *css.Mapping
}

// NewResolver creates a resolver over the given tokens. A nil mapping
// resolves every template to itself.
func NewResolver(tokens *css.Mapping) *Resolver {
	if tokens == nil {
		tokens = css.NewMapping()
	}
	return &Resolver{tokens: tokens}
}

// Tokens returns the bound token mapping.
func (r *Resolver) Tokens() *css.Mapping { return r.tokens }

// Text substitutes the tokens into a template string.
func (r *Resolver) Text(template string, fallback bool) (string, error) {
	return replace.Replace(template, r.tokens, fallback)
}

// Value substitutes the tokens into a value: string leaves are
// rewritten, lists are walked recursively, anything else is returned
// unchanged.
func (r *Resolver) Value(v css.Value, fallback bool) (css.Value, error) {
	switch el := v.(type) {
	case css.String:
		s, err := replace.Replace(string(el), r.tokens, fallback)
		if err != nil {
			return nil, err
		}
		return css.String(s), nil
	case *css.List:
		return replace.ReplaceList(el, r.tokens, fallback)
	default:
		return v, nil
	}
}

// Declaration is a single property: value pair.
type Declaration struct {
	Property string
	Value    css.Value
}

// Rule is a selector with its declarations, in source order.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// ResolveRule substitutes the tokens into every declaration value and
// returns a new rule; the input is not modified.
func (r *Resolver) ResolveRule(rule Rule, fallback bool) (Rule, error) {
	out := Rule{
		Selector:     rule.Selector,
		Declarations: make([]Declaration, 0, len(rule.Declarations)),
	}
	for _, d := range rule.Declarations {
		v, err := r.Value(d.Value, fallback)
		if err != nil {
			return Rule{}, fmt.Errorf("resolving %s of %s: %w", d.Property, rule.Selector, err)
		}
		out.Declarations = append(out.Declarations, Declaration{Property: d.Property, Value: v})
	}
	return out, nil
}

// WriteRule renders a rule as CSS text:
//
//	.mdc-button {
//	  height: 36px;
//	}
func WriteRule(w io.Writer, rule Rule) error {
	if _, err := fmt.Fprintf(w, "%s {\n", rule.Selector); err != nil {
		return err
	}
	for _, d := range rule.Declarations {
		if _, err := fmt.Fprintf(w, "  %s: %s;\n", d.Property, d.Value.CSS()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "}\n")
	return err
}
