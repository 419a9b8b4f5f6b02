package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/berrythewa/cliplate/internal/translate"
	"github.com/berrythewa/cliplate/pkg/format"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages offered in the Language menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := format.DefaultOptions()
			out := cmd.OutOrStdout()
			for _, lang := range translate.Languages(cfg.Languages) {
				marker := " "
				if lang.Code == cfg.Language {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-6s %s\n", marker,
					format.ColorizeIf(lang.Code, format.Lang, opts.UseColors), lang.Name)
			}
			return nil
		},
	}
}
