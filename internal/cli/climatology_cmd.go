package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/almanac/internal/cli/formatter"
	"github.com/alexanderramin/almanac/internal/climatology"
)

// boundFlags collects the mutually exclusive flags that describe one end of
// a climatological period.
type boundFlags struct {
	prefix  string
	date    string
	year    int
	relYear int
}

func (f *boundFlags) register(cmd *cobra.Command) {
	dateFlag := f.prefix + "-date"
	yearFlag := f.prefix + "-year"
	relFlag := f.prefix + "-rel-year"

	cmd.Flags().StringVar(&f.date, dateFlag, "", capitalize(f.describe())+" date (YYYYMMDD)")
	cmd.Flags().IntVar(&f.year, yearFlag, 0, capitalize(f.describe())+" year")
	cmd.Flags().IntVar(&f.relYear, relFlag, 0, capitalize(f.describe())+" year, relative to the reference date")

	cmd.MarkFlagsOneRequired(dateFlag, yearFlag, relFlag)
	cmd.MarkFlagsMutuallyExclusive(dateFlag, yearFlag, relFlag)
}

func (f *boundFlags) describe() string {
	if f.prefix == "from" {
		return "starting"
	}
	return "ending"
}

func (f *boundFlags) bound(cmd *cobra.Command) (climatology.Bound, error) {
	switch {
	case cmd.Flags().Changed(f.prefix + "-date"):
		d, err := parseDateArg(f.date)
		if err != nil {
			return climatology.Bound{}, err
		}
		return climatology.DateBound(d), nil
	case cmd.Flags().Changed(f.prefix + "-year"):
		return climatology.YearBound(f.year), nil
	default:
		return climatology.RelYearBound(f.relYear), nil
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func newClimatologyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "climatology",
		Short: "Compute model climate dates",
	}

	cmd.AddCommand(
		newClimatologyRangeCmd(app),
		newClimatologyMClimCmd(app),
	)

	return cmd
}

func newClimatologyRangeCmd(app *App) *cobra.Command {
	start := boundFlags{prefix: "from"}
	end := boundFlags{prefix: "to"}
	var sep string

	cmd := &cobra.Command{
		Use:   "range DATE",
		Short: "Compute climatological date ranges, one day per year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			startBound, err := start.bound(cmd)
			if err != nil {
				return err
			}
			endBound, err := end.bound(cmd)
			if err != nil {
				return err
			}
			dates, err := climatology.DateRange(ref, startBound, endBound, climatology.RecurrenceYearly, true)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.DateList(dates, sep))
			return nil
		},
	}

	start.register(cmd)
	end.register(cmd)
	addSepFlag(cmd, &sep)

	return cmd
}

func newClimatologyMClimCmd(app *App) *cobra.Command {
	start := boundFlags{prefix: "from"}
	end := boundFlags{prefix: "to"}
	var seqFlags sequenceFlags
	var before, after int
	var sep string

	cmd := &cobra.Command{
		Use:   "mclim DATE",
		Short: "Compute sets of dates for model climatologies",
		Long: `Compute sets of dates for model climatologies.

This combines a climatological range (same day in multiple years) and a
recurring source (e.g. twice a week).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, seq, err := seqAndDate(cmd, &seqFlags, args[0])
			if err != nil {
				return err
			}
			startBound, err := start.bound(cmd)
			if err != nil {
				return err
			}
			endBound, err := end.bound(cmd)
			if err != nil {
				return err
			}
			app.Logger.Debug("computing model climate dates",
				"reference", ref.String(), "before", before, "after", after)

			dates, err := climatology.ModelClimateDates(ref, startBound, endBound,
				climatology.Delta(before), climatology.Delta(after), seq)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.DateList(dates, sep))
			return nil
		},
	}

	start.register(cmd)
	end.register(cmd)
	seqFlags.register(cmd)
	cmd.Flags().IntVar(&before, "before", 0, "Pick up all inputs starting this many days before the chosen date")
	cmd.Flags().IntVar(&after, "after", 0, "Pick up all inputs up to this many days after the chosen date")
	_ = cmd.MarkFlagRequired("before")
	_ = cmd.MarkFlagRequired("after")
	addSepFlag(cmd, &sep)

	return cmd
}
