package text

import (
	"slices"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"
)

const (
	newline        = 0x0A
	carriageReturn = 0x0D
)

// Text is a mutable document buffer: a flat sequence of UTF-16 code units
// plus an index of line-start offsets. The index satisfies, at all times:
//
//   - lineOffsets[0] == 0
//   - lineOffsets is strictly increasing
//   - len(lineOffsets) == number of newline units in content + 1
//   - for i > 0, lineOffsets[i] is the offset just past the i-th newline
//
// Content is raw code units: unpaired surrogates are permitted and never
// validated or repaired. Mutating calls may reallocate either array; callers
// must not hold references to previously observed elements across them.
type Text struct {
	content     []uint16
	lineOffsets []uint32
}

// NewText creates an empty text.
func NewText() *Text {
	return &Text{lineOffsets: []uint32{0}}
}

// NewTextFromCodeUnits creates a text from raw code units, scanning them once
// to build the line index. The text takes ownership of units.
func NewTextFromCodeUnits(units []uint16) *Text {
	lineOffsets := []uint32{0}
	for offset, u := range units {
		if u == newline {
			lineOffsets = append(lineOffsets, uint32(offset+1))
		}
	}
	return &Text{content: units, lineOffsets: lineOffsets}
}

// NewTextFromString creates a text from a UTF-16 encoding of s.
func NewTextFromString(s string) *Text {
	return NewTextFromCodeUnits(utf16.Encode([]rune(s)))
}

// NewTextFromSlice deep-copies the range described by sl into a new text.
// The line index is rebuilt from the source's index rather than by rescanning
// the copied units: the source's entries for the slice's interior rows are
// carried over and renormalized to the new origin. The result holds no
// reference to the source buffer.
func NewTextFromSlice(sl Slice) *Text {
	startOffset := sl.StartOffset()
	endOffset := sl.EndOffset()

	content := make([]uint16, endOffset-startOffset)
	copy(content, sl.text.content[startOffset:endOffset])

	lineOffsets := make([]uint32, 0, sl.end.Row-sl.start.Row+1)
	lineOffsets = append(lineOffsets, startOffset)
	lineOffsets = append(lineOffsets, sl.text.lineOffsets[sl.start.Row+1:sl.end.Row+1]...)
	for i := range lineOffsets {
		lineOffsets[i] -= startOffset
	}

	return &Text{content: content, lineOffsets: lineOffsets}
}

// Size returns the number of code units.
func (t *Text) Size() uint32 {
	return uint32(len(t.content))
}

// IsEmpty returns true if the text contains no code units.
func (t *Text) IsEmpty() bool {
	return len(t.content) == 0
}

// At returns the code unit at the given offset.
func (t *Text) At(offset uint32) uint16 {
	return t.content[offset]
}

// CodeUnits returns the underlying code unit sequence. The returned slice
// aliases the text's storage and is invalidated by any mutating call.
func (t *Text) CodeUnits() []uint16 {
	return t.content
}

// LineCount returns the number of rows.
func (t *Text) LineCount() uint32 {
	return uint32(len(t.lineOffsets))
}

// Extent returns the position one past the last code unit: the row index of
// the final line and the column length of that line including any trailing
// carriage return.
func (t *Text) Extent() Point {
	last := t.lineOffsets[len(t.lineOffsets)-1]
	return Point{
		Row:    uint32(len(t.lineOffsets) - 1),
		Column: uint32(len(t.content)) - last,
	}
}

// lineBounds returns the [begin, end) offsets of a row's visible span. The
// trailing newline is excluded, as is a carriage return immediately before
// it; the final row ends at the content length. The row must be valid.
func (t *Text) lineBounds(row uint32) (uint32, uint32) {
	begin := t.lineOffsets[row]

	var end uint32
	if int(row) < len(t.lineOffsets)-1 {
		end = t.lineOffsets[row+1] - 1
		if end > begin && t.content[end-1] == carriageReturn {
			end--
		}
	} else {
		end = uint32(len(t.content))
	}

	return begin, end
}

// LineLengthForRow returns the visible length of a row, excluding the
// newline and any carriage return before it. The row must be valid; callers
// validate against Extent.
func (t *Text) LineLengthForRow(row uint32) uint32 {
	begin, end := t.lineBounds(row)
	return end - begin
}

// LineText returns the visible span of a row as a string.
func (t *Text) LineText(row uint32) string {
	begin, end := t.lineBounds(row)
	return string(utf16.Decode(t.content[begin:end]))
}

// OffsetForPosition converts a position to a flat offset. A column past the
// row's visible end clamps to the end of the row. The row must be valid.
func (t *Text) OffsetForPosition(pos Point) uint32 {
	begin, end := t.lineBounds(pos.Row)
	offset := begin + pos.Column
	if offset > end {
		offset = end
	}
	return offset
}

// PositionForOffset converts a flat offset to a position. Offsets past the
// end clamp to the extent.
func (t *Text) PositionForOffset(offset uint32) Point {
	if offset > uint32(len(t.content)) {
		offset = uint32(len(t.content))
	}
	row := sort.Search(len(t.lineOffsets), func(i int) bool {
		return t.lineOffsets[i] > offset
	}) - 1
	return Point{Row: uint32(row), Column: offset - t.lineOffsets[row]}
}

// clipPoint clamps a position to the text's bounds: rows past the last clamp
// to the extent, columns past a row's visible end clamp to that end.
func (t *Text) clipPoint(p Point) Point {
	maxRow := uint32(len(t.lineOffsets) - 1)
	if p.Row > maxRow {
		return t.Extent()
	}
	if length := t.LineLengthForRow(p.Row); p.Column > length {
		p.Column = length
	}
	return p
}

// Equal reports whether two texts have element-wise equal content and
// element-wise equal line indexes. The index comparison is part of the
// contract even though it is implied by the content comparison under the
// type's invariants.
func (t *Text) Equal(other *Text) bool {
	return slices.Equal(t.content, other.content) &&
		slices.Equal(t.lineOffsets, other.lineOffsets)
}

// String returns a diagnostic dump of the content: code units below 255 as
// literal bytes, everything else as a \u marker followed by the decimal unit
// value. The format is lossy and not round-trippable.
func (t *Text) String() string {
	var b strings.Builder
	for _, u := range t.content {
		if u < 255 {
			b.WriteByte(byte(u))
		} else {
			b.WriteString("\\u")
			b.WriteString(strconv.Itoa(int(u)))
		}
	}
	return b.String()
}
