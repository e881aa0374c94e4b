// Package serial provides a lightweight cursor over a byte slice for
// fixed-width binary serialization. The Writer appends to a slice; the Reader
// advances an integer offset. Neither performs bounds checking: reading past
// the end panics. This is intended for internal, trusted serialization paths
// where the layout is known to both sides.
package serial

import "encoding/binary"

// Writer accumulates little-endian fixed-width integers into a byte slice.
type Writer struct {
	buf []byte
}

// NewWriter creates a Writer with the given initial capacity.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// AppendUint16 appends v as two little-endian bytes.
func (w *Writer) AppendUint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// AppendUint32 appends v as four little-endian bytes.
func (w *Writer) AppendUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Reader consumes little-endian fixed-width integers from a byte slice.
// Reading past the end panics.
type Reader struct {
	buf    []byte
	offset int
}

// NewReader creates a Reader over the provided bytes.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// ReadUint16 consumes and returns the next two bytes as a little-endian uint16.
func (r *Reader) ReadUint16() uint16 {
	v := binary.LittleEndian.Uint16(r.buf[r.offset:])
	r.offset += 2
	return v
}

// ReadUint32 consumes and returns the next four bytes as a little-endian uint32.
func (r *Reader) ReadUint32() uint32 {
	v := binary.LittleEndian.Uint32(r.buf[r.offset:])
	r.offset += 4
	return v
}

// Position returns the current cursor offset.
func (r *Reader) Position() int {
	return r.offset
}

// Empty reports whether the cursor has reached the end of the buffer.
func (r *Reader) Empty() bool {
	return r.offset == len(r.buf)
}
