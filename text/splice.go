package text

import "github.com/dshills/textcore/internal/seq"

// Splice replaces the region [start, start.Traverse(deletionExtent)) with the
// contents of inserted, in place. Both the content array and the line index
// are updated without rescanning untouched parts of the buffer: the inserted
// slice's interior line offsets are carried over, renormalized to this text's
// coordinates, and every entry after the edit is shifted by the net size
// change. A zero deletion extent makes this a pure insertion; an empty slice
// makes it a pure deletion.
func (t *Text) Splice(start, deletionExtent Point, inserted Slice) {
	spliceStart := t.OffsetForPosition(start)
	spliceEnd := t.OffsetForPosition(start.Traverse(deletionExtent))
	originalSize := uint32(len(t.content))

	t.content = seq.Splice(
		t.content,
		int(spliceStart),
		int(spliceEnd-spliceStart),
		inserted.CodeUnits(),
	)

	t.lineOffsets = seq.Splice(
		t.lineOffsets,
		int(start.Row+1),
		int(deletionExtent.Row),
		inserted.text.lineOffsets[inserted.start.Row+1:inserted.end.Row+1],
	)

	// Entries carried over from the inserted slice are still expressed
	// relative to its own buffer.
	insertedRowsStart := start.Row + 1
	insertedRowsEnd := start.Row + inserted.Extent().Row + 1
	insertedDelta := int64(spliceStart) - int64(inserted.StartOffset())
	for i := insertedRowsStart; i < insertedRowsEnd; i++ {
		t.lineOffsets[i] = uint32(int64(t.lineOffsets[i]) + insertedDelta)
	}

	trailingDelta := int64(len(t.content)) - int64(originalSize)
	for i := int(insertedRowsEnd); i < len(t.lineOffsets); i++ {
		t.lineOffsets[i] = uint32(int64(t.lineOffsets[i]) + trailingDelta)
	}
}

// Append copies the slice's code units onto the end of the text. This is the
// content-only special case of Splice where the target range is empty and at
// the end of the buffer: the slice's interior line offsets are appended and
// shifted so they land at the correct new absolute offsets.
func (t *Text) Append(s Slice) {
	delta := int64(len(t.content)) - int64(s.StartOffset())

	t.content = append(t.content, s.CodeUnits()...)

	originalRows := len(t.lineOffsets)
	t.lineOffsets = append(t.lineOffsets, s.text.lineOffsets[s.start.Row+1:s.end.Row+1]...)
	for i := originalRows; i < len(t.lineOffsets); i++ {
		t.lineOffsets[i] = uint32(int64(t.lineOffsets[i]) + delta)
	}
}

// Concat builds a new text by appending each slice in order.
func Concat(slices ...Slice) *Text {
	result := NewText()
	for _, s := range slices {
		result.Append(s)
	}
	return result
}
