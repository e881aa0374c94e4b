package transcode

import (
	"errors"
	"fmt"
	"strings"

	gdamore "github.com/gdamore/encoding"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// ErrUnsupportedEncoding is returned when an encoding name cannot be resolved
// to a decoder.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// legacyCharmaps covers encodings absent from the x/text indexes: EBCDIC and
// a strict ASCII that substitutes rather than passing bytes above 0x7F.
var legacyCharmaps = map[string]encoding.Encoding{
	"ascii":    gdamore.ASCII,
	"us-ascii": gdamore.ASCII,
	"ebcdic":   gdamore.EBCDIC,
	"ibm037":   gdamore.EBCDIC,
}

// Lookup resolves an encoding name to an x/text Encoding. Names are tried
// against the IANA registry first, then the legacy charmap table, then the
// WHATWG index for browser-style aliases. An unknown or unsupported name
// yields an error wrapping ErrUnsupportedEncoding.
func Lookup(name string) (encoding.Encoding, error) {
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	if enc, ok := legacyCharmaps[strings.ToLower(strings.TrimSpace(name))]; ok {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
}
