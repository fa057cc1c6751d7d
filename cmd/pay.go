package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/subshare/subshare"
)

type payCmd struct {
	year   int
	member string
	months string
	start  string
	count  int
	unpaid bool
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "mark months paid or unpaid for a member" }
func (*payCmd) Usage() string {
	return `scs pay -member <name> -m <Jan,Feb,...> [-unpaid] [-y <year>]
scs pay -member <name> -start <month> -n <count> [-unpaid] [-y <year>]

  Marks the given months paid (or unpaid with -unpaid). With -start and -n,
  the months are the -n consecutive months from -start, wrapping from Dec
  back to Jan. Each month whose status actually changes is logged in the
  payment history.

Usage Examples:
# Alice paid the first quarter.
$ scs pay -member Alice -m Jan,Feb,Mar

# Bob paid three months starting in November (Nov, Dec, Jan).
$ scs pay -member Bob -start Nov -n 3
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", currentYear(), "Year to update.")
	f.StringVar(&c.member, "member", "", "Member display name.")
	f.StringVar(&c.months, "m", "", "Comma separated month tokens (Jan..Dec).")
	f.StringVar(&c.start, "start", "", "First month of a consecutive run.")
	f.IntVar(&c.count, "n", 0, "Number of consecutive months from -start.")
	f.BoolVar(&c.unpaid, "unpaid", false, "Mark unpaid instead of paid.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.member == "" {
		fmt.Fprintln(os.Stderr, "-member is required")
		return subcommands.ExitUsageError
	}
	months, status := c.selectMonths()
	if status != subcommands.ExitSuccess {
		return status
	}
	if err := authorize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	paid := !c.unpaid
	if len(months) == 1 {
		err = store.SetPayment(c.year, c.member, months[0], paid)
	} else {
		err = store.BulkSetPayments(c.year, c.member, months, paid)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating payments: %v\n", err)
		return subcommands.ExitFailure
	}

	verb := "paid"
	if c.unpaid {
		verb = "unpaid"
	}
	labels := make([]string, len(months))
	for i, m := range months {
		labels[i] = m.String()
	}
	fmt.Printf("Marked %s %s for %q in %d\n", strings.Join(labels, ", "), verb, c.member, c.year)
	return subcommands.ExitSuccess
}

// selectMonths resolves the -m list or the -start/-n run into month tokens.
func (c *payCmd) selectMonths() ([]subshare.Month, subcommands.ExitStatus) {
	if c.months != "" && c.start != "" {
		fmt.Fprintln(os.Stderr, "use either -m or -start/-n, not both")
		return nil, subcommands.ExitUsageError
	}

	if c.start != "" {
		if c.count < 1 {
			fmt.Fprintln(os.Stderr, "-n must be at least 1 with -start")
			return nil, subcommands.ExitUsageError
		}
		start, err := subshare.ParseMonth(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil, subcommands.ExitUsageError
		}
		return subshare.CycleMonths(start, c.count), subcommands.ExitSuccess
	}

	if c.months == "" {
		fmt.Fprintln(os.Stderr, "either -m or -start/-n is required")
		return nil, subcommands.ExitUsageError
	}
	var months []subshare.Month
	for _, token := range strings.Split(c.months, ",") {
		month, err := subshare.ParseMonth(strings.TrimSpace(token))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil, subcommands.ExitUsageError
		}
		months = append(months, month)
	}
	return months, subcommands.ExitSuccess
}
