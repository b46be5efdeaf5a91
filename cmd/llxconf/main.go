/*
llxconf is a console utility printing alternative conflict reports.
Usage is

	llxconf intervals <alt>...
	llxconf report [--format text|yaml] [--capacity <n>] <file>

intervals prints minimal interval set covering given alternative numbers;

report reads YAML file describing configuration sets of prediction decisions
and prints surviving alternatives and conflict kind for each decision:

	capacity: 64
	decisions:
	  - name: expr
	    prune: [3]
	    configs:
	      - {state: 4, alt: 1, context: a}
	      - {state: 4, alt: 2, context: a}

--verbose flag enables debug logging to stderr.

Exit code is 2 for usage errors and 3 for processing errors.
*/
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	exitUsage = 2
	exitError = 3
)

// maxCapacity limits bitmap size requested from the command line or input file.
const maxCapacity = 1 << 20

var (
	verbose bool
	log     = logrus.New()
)

type usageError struct {
	error
}

func usagef(msg string, params ...any) error {
	return usageError{fmt.Errorf(msg, params...)}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "llxconf",
		Short:         "Describe conflicts between grammar alternatives",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			} else {
				log.SetLevel(logrus.WarnLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newIntervalsCommand(), newReportCommand())
	return root
}

func main() {
	e := newRootCommand().Execute()
	if e == nil {
		return
	}

	fmt.Fprintln(os.Stderr, e.Error())
	var ue usageError
	if errors.As(e, &ue) {
		os.Exit(exitUsage)
	}
	os.Exit(exitError)
}
