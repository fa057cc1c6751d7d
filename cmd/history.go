package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type historyCmd struct {
	year   int
	member string
	limit  int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the payment change history" }
func (*historyCmd) Usage() string {
	return `scs history [-y <year>] [-member <name>] [-n <limit>]

  Displays the year's payment toggles, newest first, optionally filtered to
  one member and truncated to the first -n entries.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", currentYear(), "Year to report on.")
	f.StringVar(&c.member, "member", "", "Only show entries for this member.")
	f.IntVar(&c.limit, "n", 0, "Maximum number of entries (0 for all).")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	entries := store.History(c.year, c.member, c.limit)
	if len(entries) == 0 {
		fmt.Println("no history entries")
		return subcommands.ExitSuccess
	}
	for _, e := range entries {
		fmt.Printf("%s\t%s\t%s\t%s\n", e.Timestamp, e.Member, e.Month, e.Action)
	}
	return subcommands.ExitSuccess
}
