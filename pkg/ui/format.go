package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/spotlight-manager/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command results are written
type Format string

const (
	// FormatAuto picks term or text from the output stream
	FormatAuto Format = "auto"
	// FormatTerminal renders colors and symbols
	FormatTerminal Format = "term"
	// FormatText renders the same layout without styling
	FormatText Format = "text"
	// FormatJSON renders one JSON document per result
	FormatJSON Format = "json"
)

var formatNames = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

func (f Format) String() string {
	return string(f)
}

// ParseFormat reads a --format value. Names are case-insensitive.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format %q", s).
		WithHint("use one of auto, term, text or json")
}

// Resolve replaces FormatAuto with a concrete format for w. Writers that
// are not files, such as buffers, get plain text.
func Resolve(f Format, w io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	file, ok := w.(*os.File)
	if !ok {
		return FormatText
	}
	return DetectFormat(file)
}

// DetectFormat checks NO_COLOR, whether file is a terminal and the
// terminal's color profile
func DetectFormat(file *os.File) Format {
	fd := file.Fd()
	_, noColor := os.LookupEnv("NO_COLOR")
	return detect(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), noColor, termenv.ColorProfile())
}

func detect(tty, noColor bool, profile termenv.Profile) Format {
	if noColor || !tty || profile == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
