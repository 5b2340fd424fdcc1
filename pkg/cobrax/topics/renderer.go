package topics

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
)

// Renderer turns a topic's raw content into terminal output. format is the
// file extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics unchanged
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// MarkdownRenderer renders .md topics with glamour and leaves other
// formats alone
type MarkdownRenderer struct {
	// Style is a glamour style name or a path to a style file. Empty picks
	// a style for the terminal.
	Style string

	// WordWrap is the wrap column; 0 keeps glamour's default
	WordWrap int
}

// NewMarkdownRenderer returns a renderer that detects the terminal style
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

func (r *MarkdownRenderer) Render(content string, format string) string {
	if !strings.EqualFold(format, ".md") {
		return content
	}

	options := []glamour.TermRendererOption{r.styleOption()}
	if r.WordWrap > 0 {
		options = append(options, glamour.WithWordWrap(r.WordWrap))
	}

	tr, err := glamour.NewTermRenderer(options...)
	if err != nil {
		log.Debug().Err(err).Msg("Markdown renderer unavailable, printing raw topic")
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		log.Debug().Err(err).Msg("Markdown rendering failed, printing raw topic")
		return content
	}
	return out
}

func (r *MarkdownRenderer) styleOption() glamour.TermRendererOption {
	if r.Style != "" {
		return glamour.WithStylePath(r.Style)
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return glamour.WithStandardStyle("notty")
	}
	return glamour.WithAutoStyle()
}
