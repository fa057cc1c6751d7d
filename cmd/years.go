package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type yearsCmd struct{}

func (*yearsCmd) Name() string     { return "years" }
func (*yearsCmd) Synopsis() string { return "list the years that have a record" }
func (*yearsCmd) Usage() string {
	return `scs years

  Lists every year with a backing record, with member count and settings.
`
}

func (c *yearsCmd) SetFlags(f *flag.FlagSet) {}

func (c *yearsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	years := store.ListYears()
	if len(years) == 0 {
		fmt.Println("no years yet, create one with 'scs create-year'")
		return subcommands.ExitSuccess
	}
	for _, year := range years {
		rec := store.Load(year)
		fmt.Printf("%d\t%d member(s)\ttotal %.2f, %d slots\n",
			year, len(rec.Members), rec.Settings.TotalPrice, rec.Settings.MaxSlots)
	}
	return subcommands.ExitSuccess
}

type createYearCmd struct {
	year     int
	copyFrom int
}

func (*createYearCmd) Name() string     { return "create-year" }
func (*createYearCmd) Synopsis() string { return "create the record for a new year" }
func (*createYearCmd) Usage() string {
	return `scs create-year -y <year> [-copy-from <year>]

  Creates a default record for the year. With -copy-from, the member list of
  the source year is copied in (payment state starts empty).
`
}

func (c *createYearCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", currentYear(), "Year to create.")
	f.IntVar(&c.copyFrom, "copy-from", 0, "Year to copy the member list from.")
}

func (c *createYearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := authorize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	if store.HasYear(c.year) {
		fmt.Fprintf(os.Stderr, "Year %d already exists\n", c.year)
		return subcommands.ExitFailure
	}
	if _, err := store.CreateYear(c.year); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating year %d: %v\n", c.year, err)
		return subcommands.ExitFailure
	}
	if c.copyFrom != 0 {
		if err := store.CopyMembersForward(c.copyFrom, c.year); err != nil {
			fmt.Fprintf(os.Stderr, "Error copying members from %d: %v\n", c.copyFrom, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Year %d created with members copied from %d\n", c.year, c.copyFrom)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Year %d created\n", c.year)
	return subcommands.ExitSuccess
}
