package transcode

import (
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/dshills/textcore/internal/seq"
)

// Status reports the outcome of a Feed call.
type Status int

const (
	// StatusOK means all provided source bytes were consumed.
	StatusOK Status = iota
	// StatusIncomplete means the tail of the source is a prefix of a valid
	// multi-byte sequence and more input is needed to decode it.
	StatusIncomplete
	// StatusInvalid means the next source byte cannot begin or continue a
	// valid sequence. The caller is expected to skip one byte and emit a
	// replacement code unit.
	StatusInvalid
	// StatusOutputFull means dst has no room for the next code unit while
	// source input is still pending.
	StatusOutputFull
)

// String returns the status name for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusIncomplete:
		return "incomplete"
	case StatusInvalid:
		return "invalid"
	case StatusOutputFull:
		return "output-full"
	default:
		return "unknown"
	}
}

// Transcoder converts bytes in a source encoding into UTF-16 code units.
// Feed writes up to len(dst) code units decoded from src, returning how many
// units were written, how many source bytes were consumed, and a status
// describing why it stopped. atEOF indicates no further source bytes will
// arrive, allowing a trailing partial sequence to be treated as invalid
// rather than incomplete. Implementations may retain undrained output between
// calls; Reset discards all such state.
type Transcoder interface {
	Feed(dst []uint16, src []byte, atEOF bool) (nDst, nSrc int, status Status)
	Reset()
}

// pendChunk is the granularity at which the intermediate UTF-8 buffer grows.
const pendChunk = 256

// Decoder is a Transcoder backed by an x/text decoder for the source
// encoding. Malformed input is substituted with U+FFFD by the underlying
// decoder (one replacement per maximal invalid subpart), so Feed never
// returns StatusInvalid; the status remains part of the Transcoder contract
// for hand-rolled implementations.
type Decoder struct {
	tr   transform.Transformer
	pend []byte // decoded UTF-8 not yet converted to code units
}

// New creates a Decoder for the named encoding. It returns an error wrapping
// ErrUnsupportedEncoding when the name cannot be resolved.
func New(encodingName string) (*Decoder, error) {
	enc, err := Lookup(encodingName)
	if err != nil {
		return nil, err
	}
	return &Decoder{tr: enc.NewDecoder()}, nil
}

// Feed implements Transcoder.
func (d *Decoder) Feed(dst []uint16, src []byte, atEOF bool) (int, int, Status) {
	var nDst, nSrc int
	for {
		var full bool
		nDst, full = d.drain(dst, nDst)
		if full {
			return nDst, nSrc, StatusOutputFull
		}
		if nSrc == len(src) {
			return nDst, nSrc, StatusOK
		}

		if cap(d.pend)-len(d.pend) < utf8.UTFMax {
			d.pend = seq.Grow(d.pend, len(d.pend)+pendChunk)
		}
		n8, n1, err := d.tr.Transform(d.pend[len(d.pend):cap(d.pend)], src[nSrc:], atEOF)
		d.pend = d.pend[:len(d.pend)+n8]
		nSrc += n1

		switch err {
		case nil, transform.ErrShortDst:
			// Drain what was produced, then transform the rest.
		case transform.ErrShortSrc:
			nDst, full = d.drain(dst, nDst)
			if full {
				return nDst, nSrc, StatusOutputFull
			}
			return nDst, nSrc, StatusIncomplete
		default:
			return nDst, nSrc, StatusInvalid
		}
	}
}

// drain converts complete runes from the pending UTF-8 buffer into dst,
// starting at nDst. It returns the new nDst and whether dst ran out of room
// with pending output remaining.
func (d *Decoder) drain(dst []uint16, nDst int) (int, bool) {
	i := 0
	full := false
	for i < len(d.pend) {
		if !utf8.FullRune(d.pend[i:]) {
			break
		}
		r, size := utf8.DecodeRune(d.pend[i:])
		if r > 0xFFFF {
			if nDst+2 > len(dst) {
				full = true
				break
			}
			hi, lo := utf16.EncodeRune(r)
			dst[nDst] = uint16(hi)
			dst[nDst+1] = uint16(lo)
			nDst += 2
		} else {
			// utf8.RuneError decodes to U+FFFD and passes through here
			// unchanged, preserving the substitution made by the decoder.
			if nDst+1 > len(dst) {
				full = true
				break
			}
			dst[nDst] = uint16(r)
			nDst++
		}
		i += size
	}
	if i > 0 {
		d.pend = d.pend[:copy(d.pend, d.pend[i:])]
	}
	return nDst, full
}

// Reset discards pending output and resets the underlying transformer.
func (d *Decoder) Reset() {
	d.pend = d.pend[:0]
	d.tr.Reset()
}
