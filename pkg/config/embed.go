package config

import (
	_ "embed"

	"github.com/arthur-debert/spotlight-manager/pkg/errors"
)

// defaultConfig is the bottom layer of every Load
//
//go:embed embedded/defaults.yaml
var defaultConfig []byte

// bytesProvider feeds an in-memory document to koanf
type bytesProvider []byte

func (b bytesProvider) ReadBytes() ([]byte, error) { return b, nil }

// Read is never called; koanf uses ReadBytes when a parser is given
func (b bytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "bytesProvider requires a parser")
}
