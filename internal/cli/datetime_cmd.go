package cli

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/almanac/internal/calendar"
	"github.com/alexanderramin/almanac/internal/cli/formatter"
)

func newDateTimeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datetime",
		Short: "Datetime manipulation tools",
	}

	cmd.AddCommand(
		newDateTimeShiftCmd(app),
		newDateTimeDiffCmd(app),
	)

	return cmd
}

func parseDateTimeArg(arg string) (time.Time, error) {
	t, err := calendar.ParseDateTime(arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datetime %q", arg)
	}
	return t, nil
}

func newDateTimeShiftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift DATETIME HOURS",
		Short: "Shift a datetime by the given number of hours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseDateTimeArg(args[0])
			if err != nil {
				return err
			}
			hours, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid number of hours %q", args[1])
			}
			shifted := t.Add(time.Duration(hours) * time.Hour)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.DateTime(shifted))
			return nil
		},
	}
	return cmd
}

func newDateTimeDiffCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff DATETIME1 DATETIME2",
		Short: "Subtract DATETIME2 from DATETIME1, returning the number of hours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t1, err := parseDateTimeArg(args[0])
			if err != nil {
				return err
			}
			t2, err := parseDateTimeArg(args[1])
			if err != nil {
				return err
			}
			hours := int(math.Round(t1.Sub(t2).Hours()))
			fmt.Fprintln(cmd.OutOrStdout(), hours)
			return nil
		},
	}
	return cmd
}
