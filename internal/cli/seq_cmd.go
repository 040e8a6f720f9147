package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/almanac/internal/cli/formatter"
	"github.com/alexanderramin/almanac/internal/sequence"
)

// resolveValue is a pflag.Value constraining --resolve to a tie direction.
type resolveValue sequence.Resolve

var _ pflag.Value = (*resolveValue)(nil)

func (v *resolveValue) String() string { return string(*v) }

func (v *resolveValue) Set(s string) error {
	switch sequence.Resolve(s) {
	case sequence.ResolvePrevious, sequence.ResolveNext:
		*v = resolveValue(s)
		return nil
	}
	return fmt.Errorf("must be %q or %q", sequence.ResolvePrevious, sequence.ResolveNext)
}

func (v *resolveValue) Type() string { return "direction" }

func newSeqCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seq",
		Short: "Manipulate sequences of dates",
	}

	cmd.AddCommand(
		newSeqNextCmd(app),
		newSeqPreviousCmd(app),
		newSeqNearestCmd(app),
		newSeqRangeCmd(app),
		newSeqBracketCmd(app),
	)

	return cmd
}

func newSeqNextCmd(app *App) *cobra.Command {
	var seqFlags sequenceFlags
	var inclusive bool
	var skip int

	cmd := &cobra.Command{
		Use:   "next DATE",
		Short: "Compute the next date in the given sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, seq, err := seqAndDate(cmd, &seqFlags, args[0])
			if err != nil {
				return err
			}
			app.Logger.Debug("resolved sequence", "sequence", fmt.Sprint(seq))

			next := seq.Next(ref, !inclusive)
			for i := 0; i < skip; i++ {
				next = seq.Next(next, true)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Date(next))
			return nil
		},
	}

	seqFlags.register(cmd)
	cmd.Flags().BoolVar(&inclusive, "inclusive", false, "If the given date is in the sequence, return it")
	cmd.Flags().IntVar(&skip, "skip", 0, "If set, skip over that number of dates")

	return cmd
}

func newSeqPreviousCmd(app *App) *cobra.Command {
	var seqFlags sequenceFlags
	var inclusive bool
	var skip int

	cmd := &cobra.Command{
		Use:   "previous DATE",
		Short: "Compute the previous date in the given sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, seq, err := seqAndDate(cmd, &seqFlags, args[0])
			if err != nil {
				return err
			}
			app.Logger.Debug("resolved sequence", "sequence", fmt.Sprint(seq))

			prev := seq.Previous(ref, !inclusive)
			for i := 0; i < skip; i++ {
				prev = seq.Previous(prev, true)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Date(prev))
			return nil
		},
	}

	seqFlags.register(cmd)
	cmd.Flags().BoolVar(&inclusive, "inclusive", false, "If the given date is in the sequence, return it")
	cmd.Flags().IntVar(&skip, "skip", 0, "If set, skip over that number of dates")

	return cmd
}

func newSeqNearestCmd(app *App) *cobra.Command {
	var seqFlags sequenceFlags
	resolve := resolveValue(sequence.ResolvePrevious)

	cmd := &cobra.Command{
		Use:   "nearest DATE",
		Short: "Compute the nearest date in the given sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, seq, err := seqAndDate(cmd, &seqFlags, args[0])
			if err != nil {
				return err
			}
			nearest, err := sequence.Nearest(seq, ref, sequence.Resolve(resolve))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Date(nearest))
			return nil
		},
	}

	seqFlags.register(cmd)
	cmd.Flags().Var(&resolve, "resolve", "Return this date in case of a tie (previous or next)")

	return cmd
}

func newSeqRangeCmd(app *App) *cobra.Command {
	var seqFlags sequenceFlags
	var excludeStart, excludeEnd bool
	var sep string

	cmd := &cobra.Command{
		Use:   "range FROM TO",
		Short: "Compute the sequence dates that fall within a range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, seq, err := seqAndDate(cmd, &seqFlags, args[0])
			if err != nil {
				return err
			}
			to, err := parseDateArg(args[1])
			if err != nil {
				return err
			}
			dates, err := sequence.Range(seq, from, to, !excludeStart, !excludeEnd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.DateList(dates, sep))
			return nil
		},
	}

	seqFlags.register(cmd)
	cmd.Flags().BoolVar(&excludeStart, "exclude-start", false, "Exclude starting date")
	cmd.Flags().BoolVar(&excludeEnd, "exclude-end", false, "Exclude ending date")
	addSepFlag(cmd, &sep)

	return cmd
}

func newSeqBracketCmd(app *App) *cobra.Command {
	var seqFlags sequenceFlags
	var inclusive bool
	var sep string

	cmd := &cobra.Command{
		Use:   "bracket DATE [BEFORE [AFTER]]",
		Short: "Compute the sequence dates around a date",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, seq, err := seqAndDate(cmd, &seqFlags, args[0])
			if err != nil {
				return err
			}
			before, after := 1, 1
			if len(args) > 1 {
				if before, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("invalid count %q", args[1])
				}
				after = before
			}
			if len(args) > 2 {
				if after, err = strconv.Atoi(args[2]); err != nil {
					return fmt.Errorf("invalid count %q", args[2])
				}
			}
			dates, err := sequence.Bracket(seq, ref, before, after, !inclusive)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.DateList(dates, sep))
			return nil
		},
	}

	seqFlags.register(cmd)
	cmd.Flags().BoolVar(&inclusive, "inclusive", false, "Include the given date in the sequence")
	addSepFlag(cmd, &sep)

	return cmd
}
