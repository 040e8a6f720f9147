package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/almanac/internal/cli/formatter"
	"github.com/alexanderramin/almanac/internal/preset"
)

func newPresetsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the packaged sequence presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Presets"))
			for _, name := range preset.Names() {
				seq, err := preset.Load(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s  %s\n", formatter.Bold(name), formatter.Dim(fmt.Sprint(seq)))
			}
			return nil
		},
	}
	return cmd
}
