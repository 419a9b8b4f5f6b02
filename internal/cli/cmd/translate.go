package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/berrythewa/cliplate/internal/storage"
	"github.com/berrythewa/cliplate/internal/translate"
	"github.com/berrythewa/cliplate/pkg/format"
)

// inputText joins args, or reads standard input when there are none
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("nothing to translate")
	}
	return text, nil
}

func newTranslateCmd() *cobra.Command {
	var (
		showLangs bool
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate text once",
		Long: `Translate the given text (or standard input) into the selected language
and print the result.`,
		Example: `  cliplate translate --lang pt "good morning"
  echo "bonjour" | cliplate translate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := GetZapLogger()

			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}

			translator, err := translate.New(cfg, logger)
			if err != nil {
				return err
			}

			tr, err := translator.Translate(cmd.Context(), text, cfg.Language)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showLangs {
				from := tr.SourceLang
				if from == "" {
					from = "auto"
				}
				opts := format.DefaultOptions()
				fmt.Fprintln(out, format.ColorizeIf(fmt.Sprintf("%s → %s", from, tr.TargetLang), format.Lang, opts.UseColors))
			}
			fmt.Fprintln(out, tr.Text)

			if noHistory {
				return nil
			}
			history, err := openHistory()
			if err != nil || history == nil {
				return err
			}
			defer history.Close()
			if err := history.SaveTranslation(&storage.TranslationRecord{
				Source:     tr.Source,
				Text:       tr.Text,
				SourceLang: tr.SourceLang,
				TargetLang: tr.TargetLang,
				Provider:   tr.Provider,
			}); err != nil {
				logger.Warn("Failed to save translation history", zap.Error(err))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showLangs, "show-languages", "s", false, "print the detected source and target language")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record the translation")
	return cmd
}
