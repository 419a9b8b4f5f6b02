package cmd

import (
	"github.com/spf13/cobra"

	"github.com/berrythewa/cliplate/internal/speech"
	"github.com/berrythewa/cliplate/internal/translate"
)

func newSpeakCmd() *cobra.Command {
	var translateFirst bool

	cmd := &cobra.Command{
		Use:   "speak [text...]",
		Short: "Read text aloud",
		Long: `Read the given text (or standard input) aloud in the selected language.
With --translate the text is translated first and the translation is spoken.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := GetZapLogger()

			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}

			if translateFirst {
				translator, err := translate.New(cfg, logger)
				if err != nil {
					return err
				}
				tr, err := translator.Translate(cmd.Context(), text, cfg.Language)
				if err != nil {
					return err
				}
				text = tr.Text
			}

			speaker, err := speech.New(cfg, nil, logger)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()
			return speaker.Speak(ctx, text)
		},
	}

	cmd.Flags().BoolVarP(&translateFirst, "translate", "t", false, "translate before speaking")
	return cmd
}
