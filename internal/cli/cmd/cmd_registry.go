package cmd

import (
	"github.com/spf13/cobra"
)

// GetCommands returns all subcommands for registration
func GetCommands() []*cobra.Command {
	return []*cobra.Command{
		newWatchCmd(),
		newTranslateCmd(),
		newSpeakCmd(),
		newLanguagesCmd(),
		newHistoryCmd(),
		newConfigCmd(),
		newVersionCmd(),
	}
}
