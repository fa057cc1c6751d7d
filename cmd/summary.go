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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	year int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a payment summary for a year" }
func (*summaryCmd) Usage() string {
	return `scs summary [-y <year>]

  Displays the year's aggregate amounts and one line per member.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", currentYear(), "Year to report on.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(summaryMarkdown(store.Summarize(c.year)))
	return subcommands.ExitSuccess
}

// summaryMarkdown renders a summary as a markdown document.
func summaryMarkdown(s *subshare.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Payment Summary %d\n\n", s.Year)
	fmt.Fprintf(&b, "%d member(s), %s per slot\n\n", s.TotalMembers, s.PricePerSlot)
	fmt.Fprintf(&b, "- Total possible: %s\n", s.TotalPossible)
	fmt.Fprintf(&b, "- Total paid: %s\n", s.TotalPaid)
	fmt.Fprintf(&b, "- Outstanding: %s\n", s.TotalOutstanding)
	fmt.Fprintf(&b, "- Overall rate: %s\n", s.OverallRate)

	if len(s.Members) == 0 {
		return b.String()
	}

	b.WriteString("\n## Members\n\n")
	b.WriteString("| Member | Paid | Unpaid | Amount Paid | Amount Owed | Rate |\n")
	b.WriteString("| --- | ---: | ---: | ---: | ---: | ---: |\n")
	for _, m := range s.Members {
		fmt.Fprintf(&b, "| %s | %d | %d | %s | %s | %s |\n",
			m.Name, m.MonthsPaid, m.MonthsUnpaid, m.AmountPaid, m.AmountOwed, m.PaymentRate)
	}
	return b.String()
}
