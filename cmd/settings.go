package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type settingsCmd struct {
	year  int
	price float64
	slots int
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or update a year's subscription settings" }
func (*settingsCmd) Usage() string {
	return `scs settings [-y <year>] [-price <total>] [-slots <max>]

  Without -price and -slots, shows the year's settings. With both, overwrites
  them.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", currentYear(), "Year to show or update.")
	f.Float64Var(&c.price, "price", -1, "Total subscription price for the year.")
	f.IntVar(&c.slots, "slots", 0, "Maximum number of slots.")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.price < 0 && c.slots == 0 {
		rec := store.Load(c.year)
		fmt.Printf("year %d: total price %.2f, max slots %d, price per slot %s\n",
			c.year, rec.Settings.TotalPrice, rec.Settings.MaxSlots, rec.PricePerSlot())
		return subcommands.ExitSuccess
	}

	if c.price < 0 || c.slots < 1 {
		fmt.Fprintln(os.Stderr, "updating settings requires -price >= 0 and -slots >= 1")
		return subcommands.ExitUsageError
	}
	if err := authorize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := store.UpdateSettings(c.year, c.price, c.slots); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating settings: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Settings for %d updated: total price %.2f, max slots %d\n", c.year, c.price, c.slots)
	return subcommands.ExitSuccess
}
