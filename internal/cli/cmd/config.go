package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/berrythewa/cliplate/internal/config"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage Cliplate configuration",
		Long: `Manage Cliplate configuration:
  • Show the effective configuration
  • Print the configuration file path
  • Change the default target language`,
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigSetLanguageCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), cfg.SystemPaths.ConfigFile)
		},
	}
}

func newConfigSetLanguageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-language <code>",
		Short: "Set the default target language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := config.NormalizeLanguage(args[0])
			if err != nil {
				return err
			}

			// start from the file so environment overrides are not persisted
			fileCfg, err := config.LoadFile(cfg.SystemPaths.ConfigFile)
			if err != nil {
				return err
			}
			fileCfg.Language = lang
			if err := fileCfg.Save(cfg.SystemPaths.ConfigFile); err != nil {
				return err
			}

			GetZapLogger().Info("Default language updated",
				zap.String("lang", lang),
				zap.String("config_file", cfg.SystemPaths.ConfigFile))
			fmt.Fprintf(cmd.OutOrStdout(), "Default language set to %s\n", lang)
			return nil
		},
	}
}
