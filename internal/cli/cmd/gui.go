package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/berrythewa/cliplate/internal/gui"
)

// runWindow opens the translator window and watches the clipboard until the
// window is closed
func runWindow(cmd *cobra.Command, args []string) error {
	logger := GetZapLogger()

	app := gui.NewApp(cfg, logger)
	parts, err := newSession(app, false)
	if err != nil {
		return err
	}
	defer parts.Close()
	app.Bind(parts.session)

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	logger.Info("Starting Cliplate",
		zap.String("lang", parts.session.Language()),
		zap.Duration("interval", cfg.Interval()))
	return app.Run(ctx)
}
