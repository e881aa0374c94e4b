package text

import "fmt"

// Point represents a row and column position over code units.
// Both Row and Column are 0-indexed; Column is measured in code units from
// the start of the row.
type Point struct {
	Row    uint32
	Column uint32
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Column)
}

// Traverse adds a relative extent to p. A delta spanning rows lands at the
// delta's column on the new row; a same-row delta advances the column.
func (p Point) Traverse(delta Point) Point {
	if delta.Row > 0 {
		return Point{Row: p.Row + delta.Row, Column: delta.Column}
	}
	return Point{Row: p.Row, Column: p.Column + delta.Column}
}

// Traversal returns the relative extent from start to p, the inverse of
// Traverse. p must not precede start.
func (p Point) Traversal(start Point) Point {
	if p.Row == start.Row {
		return Point{Row: 0, Column: p.Column - start.Column}
	}
	return Point{Row: p.Row - start.Row, Column: p.Column}
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Row < other.Row {
		return -1
	}
	if p.Row > other.Row {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the origin point (0:0).
func (p Point) IsZero() bool {
	return p.Row == 0 && p.Column == 0
}
