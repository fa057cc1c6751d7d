// Package cmd implements the CLI application to manage a shared subscription
// ledger. It is a thin presentation layer: every command loads through the
// store, calls ledger operations, and prints the result.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/subshare/subshare"
)

// Environment variables understood by the CLI.
const (
	EnvDataDir     = "SCS_DATA_DIR"
	EnvAdminSecret = "SCS_ADMIN_SECRET"
)

// defaultAdminSecret mirrors the deployment default; any real install
// overrides it through SCS_ADMIN_SECRET.
const defaultAdminSecret = "admin123"

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&yearsCmd{}, "years")
	c.Register(&createYearCmd{}, "years")

	c.Register(&membersCmd{}, "members")
	c.Register(&addMemberCmd{}, "members")
	c.Register(&removeMemberCmd{}, "members")

	c.Register(&payCmd{}, "payments")
	c.Register(&settingsCmd{}, "payments")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&backupCmd{}, "backup")
	c.Register(&restoreCmd{}, "backup")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", defaultDataDir(), "Path to the data directory holding the year record files")
var adminSecret = flag.String("secret", "", "Admin secret for destructive operations")

func defaultDataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	return "data"
}

// openStore opens the store at the configured data directory.
func openStore() (*subshare.Store, error) {
	return subshare.NewStore(*dataDir)
}

// authorize gates destructive operations behind the shared admin secret.
// The expected secret comes from the environment; the provided one from the
// -secret flag.
func authorize() error {
	expected := os.Getenv(EnvAdminSecret)
	if expected == "" {
		expected = defaultAdminSecret
	}
	return subshare.NewAuthorizer(expected).Authorize(*adminSecret)
}

// currentYear is the default year for commands that take -y.
func currentYear() int { return time.Now().Year() }

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
