package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taroyuyu/material-components-web/pkg/css"
	"github.com/taroyuyu/material-components-web/pkg/customprop"
	"github.com/taroyuyu/material-components-web/pkg/theme"
)

// Common errors for theme file loading.
var (
	ErrFileNotFound     = errors.New("theme file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrEmptyFile        = errors.New("theme file is empty")
	ErrInvalidJSON      = errors.New("invalid JSON syntax")
	ErrInvalidYAML      = errors.New("invalid YAML syntax")
	ErrInvalidTheme     = errors.New("invalid theme definition")
)

// Theme is a loaded theme definition: the token mapping in file order
// and the style rules referencing it.
type Theme struct {
	Tokens *css.Mapping
	Rules  []theme.Rule
}

// Resolver returns a theme.Resolver over the loaded tokens.
func (t *Theme) Resolver() *theme.Resolver {
	return theme.NewResolver(t.Tokens)
}

// LoadFromFile reads a theme definition from a YAML or JSON file.
// Returns wrapped errors for common failure cases.
func LoadFromFile(path string) (*Theme, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	// JSON gets a syntax check for a clearer error; the parse itself
	// goes through YAML, of which JSON is a subset.
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".json" {
		if !json.Valid(data) {
			return nil, fmt.Errorf("%w in file: %s", ErrInvalidJSON, path)
		}
	}

	return Parse(data)
}

// Parse parses a theme definition from YAML or JSON bytes.
func Parse(data []byte) (*Theme, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyFile
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrInvalidTheme)
	}

	out := &Theme{Tokens: css.NewMapping()}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "tokens":
			if err := parseTokens(val, out.Tokens); err != nil {
				return nil, err
			}
		case "styles":
			rules, err := parseStyles(val)
			if err != nil {
				return nil, err
			}
			out.Rules = rules
		default:
			return nil, fmt.Errorf("%w: unknown section %q at line %d", ErrInvalidTheme, key.Value, key.Line)
		}
	}
	return out, nil
}

// parseTokens fills the mapping from the tokens section, preserving
// the order token names appear in the file.
func parseTokens(node *yaml.Node, tokens *css.Mapping) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: tokens must be a mapping (line %d)", ErrInvalidTheme, node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		v, err := parseValue(val)
		if err != nil {
			return fmt.Errorf("token %q: %w", key.Value, err)
		}
		tokens.Set(key.Value, v)
	}
	return nil
}

// parseValue converts a YAML node into a css.Value.
func parseValue(node *yaml.Node) (css.Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if p, ok := customprop.Parse(node.Value); ok {
			return p, nil
		}
		return css.String(node.Value), nil
	case yaml.MappingNode:
		p, err := parseProp(node)
		if err != nil {
			return nil, err
		}
		return p, nil
	case yaml.SequenceNode:
		return parseList(node)
	default:
		return nil, fmt.Errorf("%w: unsupported value at line %d", ErrInvalidTheme, node.Line)
	}
}

// parseProp reads an explicit custom property declaration:
// a mapping with a name key and an optional fallback.
func parseProp(node *yaml.Node) (customprop.Prop, error) {
	var name string
	var fallback css.Value

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "name":
			if val.Kind != yaml.ScalarNode {
				return customprop.Prop{}, fmt.Errorf("%w: name must be a string (line %d)", ErrInvalidTheme, val.Line)
			}
			name = val.Value
		case "fallback":
			fb, err := parseValue(val)
			if err != nil {
				return customprop.Prop{}, err
			}
			fallback = fb
		default:
			return customprop.Prop{}, fmt.Errorf("%w: unknown custom property key %q at line %d", ErrInvalidTheme, key.Value, key.Line)
		}
	}

	if name == "" {
		return customprop.Prop{}, fmt.Errorf("%w: custom property missing name (line %d)", ErrInvalidTheme, node.Line)
	}
	if fallback == nil {
		return customprop.New(name), nil
	}
	return customprop.New(name, fallback), nil
}

// parseList converts a sequence into a list. A sequence of sequences
// joins with commas and its elements with spaces; a flat sequence
// joins with spaces.
func parseList(node *yaml.Node) (*css.List, error) {
	sep := css.Space
	if len(node.Content) > 0 {
		allSeq := true
		for _, el := range node.Content {
			if el.Kind != yaml.SequenceNode {
				allSeq = false
				break
			}
		}
		if allSeq {
			sep = css.Comma
		}
	}

	out := &css.List{Sep: sep}
	for _, el := range node.Content {
		v, err := parseValue(el)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, v)
	}
	return out, nil
}

// parseStyles reads the styles section into rules, keeping selector
// and declaration order.
func parseStyles(node *yaml.Node) ([]theme.Rule, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: styles must be a mapping (line %d)", ErrInvalidTheme, node.Line)
	}

	var rules []theme.Rule
	for i := 0; i+1 < len(node.Content); i += 2 {
		sel, body := node.Content[i], node.Content[i+1]
		if body.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: rule %q must be a mapping (line %d)", ErrInvalidTheme, sel.Value, body.Line)
		}

		rule := theme.Rule{Selector: sel.Value}
		for j := 0; j+1 < len(body.Content); j += 2 {
			prop, val := body.Content[j], body.Content[j+1]
			v, err := parseValue(val)
			if err != nil {
				return nil, fmt.Errorf("rule %q, property %q: %w", sel.Value, prop.Value, err)
			}
			rule.Declarations = append(rule.Declarations, theme.Declaration{Property: prop.Value, Value: v})
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
