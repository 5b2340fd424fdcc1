package confirmations

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/spotlight-manager/pkg/errors"
	"github.com/mattn/go-isatty"
)

// maxListed caps how many items are printed before the prompt
const maxListed = 20

// ConsoleDialog implements Confirmer with a y/N prompt on the terminal
type ConsoleDialog struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

// NewConsoleDialog creates a dialog on stdin/stdout. It refuses to prompt
// when stdin is not a terminal.
func NewConsoleDialog() *ConsoleDialog {
	fd := os.Stdin.Fd()
	return &ConsoleDialog{
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// NewConsoleDialogWith creates a dialog on explicit streams
func NewConsoleDialogWith(in io.Reader, out io.Writer, interactive bool) *ConsoleDialog {
	return &ConsoleDialog{in: in, out: out, interactive: interactive}
}

// Confirm prints items and asks prompt. Only "y" or "yes" approves.
func (d *ConsoleDialog) Confirm(prompt string, items []string) (bool, error) {
	if !d.interactive {
		return false, errors.New(errors.ErrConfirmationRequired, "confirmation required but stdin is not a terminal").
			WithHint("pass --force to apply changes without confirmation")
	}

	if len(items) > 0 {
		fmt.Fprintln(d.out)
		listed := items
		if len(listed) > maxListed {
			listed = listed[:maxListed]
		}
		for _, item := range listed {
			fmt.Fprintf(d.out, "  %s\n", item)
		}
		if len(items) > maxListed {
			fmt.Fprintf(d.out, "  ... and %d more\n", len(items)-maxListed)
		}
		fmt.Fprintln(d.out)
	}

	fmt.Fprintf(d.out, "%s [y/N]: ", prompt)

	var response string
	_, err := fmt.Fscanln(d.in, &response)
	if err != nil && err != io.EOF && err.Error() != "unexpected newline" {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
