package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type membersCmd struct {
	year int
}

func (*membersCmd) Name() string     { return "members" }
func (*membersCmd) Synopsis() string { return "list the members of a year" }
func (*membersCmd) Usage() string {
	return `scs members [-y <year>]

  Lists the year's members in display order with their months paid.
`
}

func (c *membersCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", currentYear(), "Year to list.")
}

func (c *membersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := store.Load(c.year)
	if len(rec.Members) == 0 {
		fmt.Printf("no members in %d\n", c.year)
		return subcommands.ExitSuccess
	}
	for _, member := range rec.Members {
		fmt.Printf("%s\t%d/12 months paid\n", member, rec.MonthsPaid(member))
	}
	return subcommands.ExitSuccess
}

type addMemberCmd struct {
	year int
	name string
}

func (*addMemberCmd) Name() string     { return "add-member" }
func (*addMemberCmd) Synopsis() string { return "add a member to a year" }
func (*addMemberCmd) Usage() string {
	return `scs add-member -name <name> [-y <year>]

  Appends the member to the year's list with an empty payment map.
  Adding an existing member is a no-op.
`
}

func (c *addMemberCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", currentYear(), "Year to add the member to.")
	f.StringVar(&c.name, "name", "", "Member display name.")
}

func (c *addMemberCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "-name is required")
		return subcommands.ExitUsageError
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

	if err := store.AddMember(c.year, c.name); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding member: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Member %q added to %d\n", c.name, c.year)
	return subcommands.ExitSuccess
}

type removeMemberCmd struct {
	year int
	name string
}

func (*removeMemberCmd) Name() string     { return "remove-member" }
func (*removeMemberCmd) Synopsis() string { return "remove a member from a year" }
func (*removeMemberCmd) Usage() string {
	return `scs remove-member -name <name> [-y <year>]

  Removes the member and its payment map. The payment history keeps the
  member's past toggles.
`
}

func (c *removeMemberCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", currentYear(), "Year to remove the member from.")
	f.StringVar(&c.name, "name", "", "Member display name.")
}

func (c *removeMemberCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "-name is required")
		return subcommands.ExitUsageError
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

	if err := store.RemoveMember(c.year, c.name); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing member: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Member %q removed from %d\n", c.name, c.year)
	return subcommands.ExitSuccess
}
