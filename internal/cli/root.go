package cli

import (
	cmdpkg "github.com/berrythewa/cliplate/internal/cli/cmd"
)

// SetVersionInfo records build information for the version command
func SetVersionInfo(version, buildTime, commit string) {
	cmdpkg.SetVersionInfo(version, buildTime, commit)
}

// Execute runs the cliplate command line
func Execute() {
	cmdpkg.Execute()
}
