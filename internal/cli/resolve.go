package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/almanac/internal/calendar"
	"github.com/alexanderramin/almanac/internal/cli/formatter"
	"github.com/alexanderramin/almanac/internal/sequence"
)

func parseDateArg(arg string) (calendar.Date, error) {
	d, err := calendar.ParseDate(arg)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("invalid date %q: expected YYYYMMDD", arg)
	}
	return d, nil
}

// seqAndDate resolves the common "reference date plus sequence flags" shape
// shared by the seq subcommands.
func seqAndDate(cmd *cobra.Command, flags *sequenceFlags, arg string) (calendar.Date, sequence.Sequence, error) {
	d, err := parseDateArg(arg)
	if err != nil {
		return calendar.Date{}, nil, err
	}
	seq, err := flags.sequence(cmd)
	if err != nil {
		return calendar.Date{}, nil, err
	}
	return d, seq, nil
}

func addSepFlag(cmd *cobra.Command, sep *string) {
	cmd.Flags().StringVar(sep, "sep", formatter.DefaultSep, "Separator between dates")
}
