// Package ui writes command results and errors in the format chosen with
// --format: styled terminal output, plain text, or JSON.
package ui

import (
	"io"

	"github.com/arthur-debert/spotlight-manager/pkg/errors"
	"github.com/arthur-debert/spotlight-manager/pkg/ui/json"
	"github.com/arthur-debert/spotlight-manager/pkg/ui/terminal"
	"github.com/arthur-debert/spotlight-manager/pkg/ui/text"
)

// Renderer writes results to one output stream
type Renderer interface {
	// RenderResult writes a command result. Unknown types are printed as is.
	RenderResult(result interface{}) error

	// RenderError writes err with its hint, if any
	RenderError(err error) error

	RenderMessage(msg string) error
}

// NewRenderer returns the renderer for format, resolving FormatAuto
// against output
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch Resolve(format, output) {
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q", format)
	}
}
