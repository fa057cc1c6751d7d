package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/subshare/subshare"
)

type exportCmd struct {
	year       int
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a year's payment grid as CSV" }
func (*exportCmd) Usage() string {
	return `scs export [-y <year>] [-o <file>]

  Writes one CSV row per member with Yes/No per month and the paid/owed
  amounts. Without -o the CSV goes to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", currentYear(), "Year to export.")
	f.StringVar(&c.outputFile, "o", "", "Output file (default stdout).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.outputFile != "" {
		out, err = os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := subshare.ExportCSV(out, store.Load(c.year)); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting year %d: %v\n", c.year, err)
		return subcommands.ExitFailure
	}
	if c.outputFile != "" {
		fmt.Printf("Year %d exported to %s\n", c.year, c.outputFile)
	}
	return subcommands.ExitSuccess
}
