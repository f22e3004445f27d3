// mdctheme CLI - resolve theme token templates into CSS.
package main

import (
	"fmt"
	"os"

	"github.com/taroyuyu/material-components-web/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	err := cli.Execute(cli.BuildInfo{Version: Version, Commit: Commit, BuildDate: BuildDate})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
