package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/almanac/internal/cli/formatter"
)

func newDateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Date manipulation tools",
	}

	cmd.AddCommand(
		newDateShiftCmd(app),
		newDateDiffCmd(app),
	)

	return cmd
}

func newDateShiftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift DATE DAYS",
		Short: "Shift a date by the given number of days",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			days, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid number of days %q", args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Date(d.AddDays(days)))
			return nil
		},
	}
	return cmd
}

func newDateDiffCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff DATE1 DATE2",
		Short: "Subtract DATE2 from DATE1, returning the number of days",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d1, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			d2, err := parseDateArg(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d1.Sub(d2))
			return nil
		},
	}
	return cmd
}
