package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ava12/llxconf/bitset"
	"github.com/ava12/llxconf/interval"
)

func newIntervalsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "intervals <alt>...",
		Short: "Print interval set of alternative numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			alts := make([]int, len(args))
			for i, arg := range args {
				alt, e := strconv.Atoi(arg)
				if e != nil {
					return usagef("invalid alternative number %q", arg)
				}
				if alt >= maxCapacity {
					return usagef("alternative number %d exceeds limit %d", alt, maxCapacity-1)
				}
				alts[i] = alt
			}

			capacity := 1
			if len(alts) > 0 {
				capacity += slices.Max(alts)
			}
			b, e := bitset.New(capacity, alts...)
			if e != nil {
				return usageError{e}
			}

			log.WithField("alts", b.String()).Debug("converting bitmap")
			_, e = fmt.Fprintln(cmd.OutOrStdout(), interval.FromBitmap(b))
			return e
		},
	}
}
