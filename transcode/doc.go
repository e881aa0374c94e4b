// Package transcode converts byte streams in arbitrary source encodings into
// UTF-16 code units, as a resumable state machine suitable for feeding
// arbitrarily-sized read chunks.
//
// The Transcoder interface is the capability contract: a Feed call consumes
// as much of the provided source as it can, writes code units into the
// caller's output slice, and reports via Status why it stopped (all input
// consumed, incomplete trailing sequence, invalid sequence, or output full).
// The caller owns the retry policy: carry incomplete bytes into the next
// read, substitute U+FFFD for invalid ones, grow the output and feed again.
//
// Decoder is the standard implementation, resolving encoding names through
// the IANA and WHATWG indexes of golang.org/x/text plus a small table of
// legacy charmaps (EBCDIC, strict ASCII) that x/text does not carry.
package transcode
