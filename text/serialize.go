package text

import "github.com/dshills/textcore/serial"

// Binary layout: one uint32 element count followed by that many uint16 code
// units, little-endian, with no header, checksum, or version. The line index
// is never persisted; deserialization re-derives it while reading.

// Serialize writes the text's code units to w.
func (t *Text) Serialize(w *serial.Writer) {
	w.AppendUint32(t.Size())
	for _, u := range t.content {
		w.AppendUint16(u)
	}
}

// NewTextFromSerializer reads a text previously written by Serialize,
// rebuilding the line index as each code unit arrives.
func NewTextFromSerializer(r *serial.Reader) *Text {
	size := r.ReadUint32()

	content := make([]uint16, 0, size)
	lineOffsets := []uint32{0}
	for offset := uint32(0); offset < size; offset++ {
		u := r.ReadUint16()
		content = append(content, u)
		if u == newline {
			lineOffsets = append(lineOffsets, offset+1)
		}
	}

	return &Text{content: content, lineOffsets: lineOffsets}
}
