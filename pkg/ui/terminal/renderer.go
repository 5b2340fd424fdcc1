// Package terminal writes command results with colors and status symbols
package terminal

import (
	"io"

	"github.com/arthur-debert/spotlight-manager/pkg/style"
	"github.com/arthur-debert/spotlight-manager/pkg/ui/text"
	"github.com/pterm/pterm"
)

// New returns a text renderer drawn with the terminal theme
func New(w io.Writer) (*text.Renderer, error) {
	return text.NewStyled(w, style.NewTerminalRenderer(), pterm.Info.Prefix.Text), nil
}
