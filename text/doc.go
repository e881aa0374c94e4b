// Package text implements the storage core of a text-editing engine: a
// mutable document buffer holding content as a flat sequence of UTF-16 code
// units alongside an index of line-start offsets, so row lookups never
// rescan the document.
//
// The central type is Text. It is constructed empty, from raw code units,
// from a string, from a Slice over another text, from serialized bytes, or
// by streaming-decoding a byte stream in an arbitrary encoding (Build). The
// mutating operations — Splice and Append — keep the content array and the
// line index consistent without touching the unedited parts of the buffer:
// line offsets from an inserted slice are carried over structurally and
// renormalized, and downstream entries are shifted by the net size change.
//
// Position arithmetic uses Point, a (row, column) pair over code units.
// Columns past a row's visible end clamp to the end of the row; rows out of
// range are the caller's error. A row's visible span excludes its newline
// and a carriage return immediately before it, though both remain physically
// present in the content.
//
// Text is not safe for concurrent use. All operations run to completion on
// the calling goroutine, including the Build decode loop and its progress
// callback.
package text
