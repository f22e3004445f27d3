// Package cli provides the mdctheme CLI commands.
package cli
