package cmd

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/berrythewa/cliplate/pkg/format"
)

// terminalDisplay prints translations instead of showing them in a window
type terminalDisplay struct {
	mu   sync.Mutex
	out  io.Writer
	opts format.Options
}

func (d *terminalDisplay) ShowTranslation(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	stamp := format.DimIf(time.Now().Format("15:04:05"), d.opts.UseColors)
	fmt.Fprintf(d.out, "%s %s\n", stamp, format.ColorizeIf(text, format.Target, d.opts.UseColors))
}

func (d *terminalDisplay) SetFont(string) {}

func newWatchCmd() *cobra.Command {
	var (
		speak   bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Translate clipboard changes in the terminal",
		Long: `Watch the clipboard without opening a window. Every new piece of copied
text is translated and printed to standard output; with --speak each
translation is also read aloud.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := format.DefaultOptions()
			if noColor {
				opts.UseColors = false
			}
			display := &terminalDisplay{out: cmd.OutOrStdout(), opts: opts}

			parts, err := newSession(display, speak)
			if err != nil {
				return err
			}
			defer parts.Close()

			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			fmt.Fprintf(cmd.ErrOrStderr(), "Watching clipboard, translating to %s (Ctrl+C to stop)\n", parts.session.Language())
			return parts.session.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&speak, "speak", false, "read every translation aloud")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}
