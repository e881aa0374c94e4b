package text

// Slice is a non-owning view over a contiguous range of a Text, described by
// start and end positions. A slice must not outlive its text, and any
// mutation of the text invalidates slices over it.
type Slice struct {
	text  *Text
	start Point
	end   Point
}

// NewSlice returns a slice covering all of t.
func NewSlice(t *Text) Slice {
	return Slice{text: t, end: t.Extent()}
}

// Slice returns a view of t between start and end. Both positions are
// clamped to the text's bounds.
func (t *Text) Slice(start, end Point) Slice {
	return Slice{text: t, start: t.clipPoint(start), end: t.clipPoint(end)}
}

// StartPosition returns the slice's start position within its text.
func (s Slice) StartPosition() Point {
	return s.start
}

// EndPosition returns the slice's end position within its text.
func (s Slice) EndPosition() Point {
	return s.end
}

// StartOffset returns the flat offset of the slice's start.
func (s Slice) StartOffset() uint32 {
	return s.text.OffsetForPosition(s.start)
}

// EndOffset returns the flat offset of the slice's end.
func (s Slice) EndOffset() uint32 {
	return s.text.OffsetForPosition(s.end)
}

// Extent returns the slice's size as a row and column delta.
func (s Slice) Extent() Point {
	return s.end.Traversal(s.start)
}

// IsEmpty returns true if the slice covers no code units.
func (s Slice) IsEmpty() bool {
	return s.StartOffset() == s.EndOffset()
}

// CodeUnits returns the code units the slice covers. The returned slice
// aliases the text's storage.
func (s Slice) CodeUnits() []uint16 {
	return s.text.content[s.StartOffset():s.EndOffset()]
}

// Prefix returns the part of the slice before position, expressed in the
// slice's own coordinates.
func (s Slice) Prefix(position Point) Slice {
	a, _ := s.Split(position)
	return a
}

// Suffix returns the part of the slice at and after position, expressed in
// the slice's own coordinates.
func (s Slice) Suffix(position Point) Slice {
	_, b := s.Split(position)
	return b
}

// Split divides the slice at position (relative to the slice's start) and
// returns the two halves.
func (s Slice) Split(position Point) (Slice, Slice) {
	split := s.text.clipPoint(s.start.Traverse(position))
	if split.After(s.end) {
		split = s.end
	}
	return Slice{text: s.text, start: s.start, end: split},
		Slice{text: s.text, start: split, end: s.end}
}
