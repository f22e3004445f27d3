package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taroyuyu/material-components-web/pkg/config"
	"github.com/taroyuyu/material-components-web/pkg/logging"
	"github.com/taroyuyu/material-components-web/pkg/theme"
)

// resolveFlags holds all flags for the resolve command.
type resolveFlags struct {
	themePath string
	output    string
	fallback  bool
	logLevel  string
	logFormat string
}

var resolveFlagVals resolveFlags

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Substitute theme tokens and print the resolved CSS",
	Long: `Load a theme definition, substitute every token into the style
templates, and print the resolved CSS rules.

By default custom properties emit var() references. With --fallback,
their fallback constants are inlined instead, producing static CSS for
targets without custom property support.`,
	Example: `  # Resolve a theme to stdout
  mdctheme resolve --theme theme.yaml

  # Static output with custom property fallbacks inlined
  mdctheme resolve --theme theme.yaml --fallback

  # Write to a file
  mdctheme resolve --theme theme.yaml -o button.css`,
	RunE: runResolve,
}

func init() {
	f := &resolveFlagVals

	resolveCmd.Flags().StringVarP(&f.themePath, "theme", "t", "", "Path to theme file (YAML or JSON) [required]")
	resolveCmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file (default stdout)")
	resolveCmd.Flags().BoolVar(&f.fallback, "fallback", false, "Inline custom property fallbacks instead of var() references")
	resolveCmd.Flags().StringVar(&f.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	resolveCmd.Flags().StringVar(&f.logFormat, "log-format", "text", "Log format (text, json)")

	_ = resolveCmd.MarkFlagRequired("theme")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(_ *cobra.Command, _ []string) error {
	f := &resolveFlagVals
	log := logging.New(nil, logging.ParseLevel(f.logLevel), f.logFormat)

	th, err := config.LoadFromFile(f.themePath)
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}
	log.Debug("theme loaded", "tokens", th.Tokens.Len(), "rules", len(th.Rules))

	out := os.Stdout
	if f.output != "" {
		file, err := os.Create(f.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = file.Close() }()
		out = file
	}

	resolver := th.Resolver()
	for i, rule := range th.Rules {
		resolved, err := resolver.ResolveRule(rule, f.fallback)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if err := theme.WriteRule(out, resolved); err != nil {
			return err
		}
		log.Debug("rule resolved", "selector", rule.Selector, "declarations", len(rule.Declarations))
	}
	return nil
}
