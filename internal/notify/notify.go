// Package notify prints the user-facing advisories: first run, missing
// keyfile, missing repository path. None of these terminate the process;
// the command layer decides exit behavior.
package notify

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Notifier formats advisories for one profile, suggesting the commands
// that fix the underlying condition.
type Notifier struct {
	profile string
	out     io.Writer
}

// New returns a notifier for the named profile writing to out.
func New(profile string, out io.Writer) *Notifier {
	return &Notifier{profile: profile, out: out}
}

func (n *Notifier) command(file string) string {
	return fmt.Sprintf(". borgini edit %s --select %s", file, n.profile)
}

// FirstRun announces that a fresh default config has been written and
// nothing was backed up.
func (n *Notifier) FirstRun() {
	fmt.Fprintf(n.out,
		"%s: %s\n"+
			"Make all necessary changes to config before running this again\n"+
			"You can do this by running the command:\n\n"+
			"%s\n\n"+
			"Default settings have been written to the `include' and `exclude' lists\n"+
			"These can be edited by running:\n\n"+
			"%s\n%s\n",
		color.YellowString("First run detected for profile"),
		color.CyanString(n.profile),
		n.command("config"),
		n.command("include"),
		n.command("exclude"),
	)
}

// KeyfileMissing warns that a keyfile is configured but cannot be read;
// the run continues without the passphrase.
func (n *Notifier) KeyfileMissing() {
	fmt.Fprintf(n.out,
		"%s\n"+
			"attempting backup without keyfile\n\n"+
			"add a valid keyfile or \"None\" to keyfile to stop receiving this message\n"+
			"You can do this by running the command:\n\n"+
			"%s\n",
		color.YellowString("BORG_PASSPHRASE keyfile cannot be found"),
		n.command("config"),
	)
}

// MissingRepository explains that no repository path is configured. The
// caller exits non-zero after this.
func (n *Notifier) MissingRepository() {
	fmt.Fprintf(n.out,
		"%s\n"+
			"Make all necessary changes to config before running this again\n"+
			"You can do this by running the command:\n\n"+
			"%s\n",
		color.YellowString("Path to repo not configured"),
		n.command("config"),
	)
}
