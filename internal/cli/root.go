package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// App holds shared state for CLI commands.
type App struct {
	Logger *slog.Logger
}

// NewRootCmd creates the top-level "almanac" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "almanac",
		Short:        "Calendar tools for recurring dates and model climates",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if app.Logger == nil {
				app.Logger = newLogger(cmd.ErrOrStderr(), verbose)
			}
		},
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	root.AddCommand(
		newSeqCmd(app),
		newClimatologyCmd(app),
		newDateCmd(app),
		newDateTimeCmd(app),
		newPresetsCmd(app),
	)

	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
