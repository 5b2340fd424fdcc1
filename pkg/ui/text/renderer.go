// Package text writes command results using a style layout
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/spotlight-manager/pkg/style"
)

// Renderer prints the layout of a style.Renderer, one block per call
type Renderer struct {
	output io.Writer
	styles style.Renderer
	prefix string
}

// New returns a renderer without colors or symbols
func New(output io.Writer) (*Renderer, error) {
	return NewStyled(output, style.NewPlainRenderer(), ""), nil
}

// NewStyled returns a renderer drawing with styles. Messages are prefixed
// with prefix when it is set.
func NewStyled(output io.Writer, styles style.Renderer, prefix string) *Renderer {
	return &Renderer{output: output, styles: styles, prefix: prefix}
}

// RenderResult prints known results with the layout and anything else
// with %+v
func (r *Renderer) RenderResult(result interface{}) error {
	out, ok := style.Render(r.styles, result)
	if !ok {
		out = fmt.Sprintf("%+v", result)
	}
	return r.println(out)
}

func (r *Renderer) RenderError(err error) error {
	return r.println(r.styles.RenderError(err))
}

func (r *Renderer) RenderMessage(msg string) error {
	if r.prefix != "" {
		msg = r.prefix + " " + msg
	}
	return r.println(msg)
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}
