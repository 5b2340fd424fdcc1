package plist

import (
	"bytes"
	"fmt"

	"github.com/arthur-debert/spotlight-manager/pkg/internal/hashutil"
)

// ExclusionsKey is the top-level key holding the excluded paths
const ExclusionsKey = "Exclusions"

// Format is the on-disk encoding of a property list
type Format int

const (
	// FormatXML is the textual XML property list
	FormatXML Format = iota
	// FormatBinary is the bplist00 encoding
	FormatBinary
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatBinary:
		return "binary"
	default:
		return "unknown"
	}
}

var binaryMagic = []byte("bplist")

// codec edits the exclusions array of one encoding
type codec interface {
	exclusions() []string
	setExclusions(paths []string)
	encode() ([]byte, error)
}

// Document is a decoded volume configuration
type Document struct {
	format     Format
	codec      codec
	exclusions []string
	revision   string
}

// Decode parses a property list in either format
func Decode(data []byte) (*Document, error) {
	var (
		c      codec
		format Format
		err    error
	)
	if bytes.HasPrefix(data, binaryMagic) {
		format = FormatBinary
		c, err = decodeBinary(data)
	} else {
		format = FormatXML
		c, err = decodeXML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s property list: %w", format, err)
	}

	return &Document{
		format:     format,
		codec:      c,
		exclusions: c.exclusions(),
		revision:   Revision(data),
	}, nil
}

// NewXML returns an empty XML document, as written by a fresh volume
func NewXML() *Document {
	c := newXMLCodec()
	return &Document{format: FormatXML, codec: c, exclusions: []string{}}
}

// Format returns the encoding the document was read in
func (d *Document) Format() Format { return d.format }

// Revision is the hash of the bytes the document was decoded from. It is
// empty for documents that were not read from disk.
func (d *Document) Revision() string { return d.revision }

// Exclusions returns a copy of the excluded paths in stored order
func (d *Document) Exclusions() []string {
	out := make([]string, len(d.exclusions))
	copy(out, d.exclusions)
	return out
}

// SetExclusions replaces the excluded paths
func (d *Document) SetExclusions(paths []string) {
	d.exclusions = make([]string, len(paths))
	copy(d.exclusions, paths)
}

// Encode serializes the document in its original format
func (d *Document) Encode() ([]byte, error) {
	d.codec.setExclusions(d.exclusions)
	data, err := d.codec.encode()
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s property list: %w", d.format, err)
	}
	return data, nil
}

// Revision hashes raw document bytes
func Revision(data []byte) string {
	return hashutil.Checksum(data)
}
