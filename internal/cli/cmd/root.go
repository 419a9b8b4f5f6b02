package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/berrythewa/cliplate/internal/common"
	"github.com/berrythewa/cliplate/internal/config"
)

// commands carrying this annotation run without loading the configuration
const skipSetupAnnotation = "cliplate/skip-setup"

// NewRootCmd builds the cliplate command tree
func NewRootCmd() *cobra.Command {
	cfgFile, logLevel, langFlag = "", "", ""
	verbose, quiet = false, false

	rootCmd := &cobra.Command{
		Use:   "cliplate",
		Short: "Translate whatever you copy",
		Long: `Cliplate watches the clipboard and translates every new piece of copied
text into the selected language, showing the result in a small window
that can also read it aloud.

Running cliplate without any commands opens the window.
Use "cliplate watch" to print translations to the terminal instead.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if zapLogger != nil {
				_ = zapLogger.Sync()
			}
		},
		RunE: runWindow,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/cliplate/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&langFlag, "lang", "", "target language, overrides the configured one")
	flags.BoolVar(&verbose, "verbose", false, "enable verbose output")
	flags.BoolVar(&quiet, "quiet", false, "minimize output")

	rootCmd.AddCommand(GetCommands()...)
	return rootCmd
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipSetupAnnotation] == "true" {
		return nil
	}

	loaded, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if langFlag != "" {
		lang, err := config.NormalizeLanguage(langFlag)
		if err != nil {
			return err
		}
		loaded.Language = lang
	}

	logger, err := common.NewLogger(loaded, common.LoggerOptions{
		Verbose: verbose,
		Quiet:   quiet,
		Level:   logLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Debug("Configuration loaded",
		zap.String("config_file", loaded.SystemPaths.ConfigFile),
		zap.String("lang", loaded.Language),
		zap.String("translator", loaded.Translator.Provider),
		zap.String("speech", loaded.Speech.Provider))

	SetConfig(loaded)
	SetZapLogger(logger)
	return nil
}
