package cli

import (
	"github.com/spf13/cobra"
)

// BuildInfo carries the build-time version metadata from main.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

var buildInfo = BuildInfo{Version: "dev", Commit: "unknown", BuildDate: "unknown"}

var rootCmd = &cobra.Command{
	Use:           "mdctheme",
	Short:         "Resolve theme token templates into CSS",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI with the given build info.
func Execute(info BuildInfo) error {
	buildInfo = info
	return rootCmd.Execute()
}
