package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taroyuyu/material-components-web/pkg/config"
)

var validateThemePath string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a theme file without producing output",
	RunE: func(_ *cobra.Command, _ []string) error {
		th, err := config.LoadFromFile(validateThemePath)
		if err != nil {
			return err
		}
		fmt.Printf("%s: OK (%d tokens, %d rules)\n", validateThemePath, th.Tokens.Len(), len(th.Rules))
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateThemePath, "theme", "t", "", "Path to theme file (YAML or JSON) [required]")
	_ = validateCmd.MarkFlagRequired("theme")

	rootCmd.AddCommand(validateCmd)
}
