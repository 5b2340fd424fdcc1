package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/spotlight-manager/pkg/errors"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"auto", FormatAuto},
		{"", FormatAuto},
		{"term", FormatTerminal},
		{"terminal", FormatTerminal},
		{"TERM", FormatTerminal},
		{"text", FormatText},
		{"plain", FormatText},
		{"json", FormatJSON},
		{" Json ", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	_, err := ParseFormat("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "yaml"`)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, errors.Hint(err), "json")
}

func TestResolve(t *testing.T) {
	buf := &bytes.Buffer{}
	assert.Equal(t, FormatText, Resolve(FormatAuto, buf))
	assert.Equal(t, FormatJSON, Resolve(FormatJSON, buf))
	assert.Equal(t, FormatTerminal, Resolve(FormatTerminal, buf))

	// a regular file is never a terminal
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, FormatText, Resolve(FormatAuto, f))
}

func TestDetect(t *testing.T) {
	assert.Equal(t, FormatTerminal, detect(true, false, termenv.TrueColor))
	assert.Equal(t, FormatTerminal, detect(true, false, termenv.ANSI))
	assert.Equal(t, FormatText, detect(true, true, termenv.TrueColor))
	assert.Equal(t, FormatText, detect(false, false, termenv.TrueColor))
	assert.Equal(t, FormatText, detect(true, false, termenv.Ascii))
}
