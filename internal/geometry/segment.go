package geometry

import "fmt"

// Segment is an ordered pair of endpoints. The order matters for the sign
// of the derived Line: swapping A and B negates all three coefficients.
type Segment struct {
	A Point
	B Point
}

// Seg builds a Segment from raw coordinates.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{A: Pt(x1, y1), B: Pt(x2, y2)}
}

// Line returns the implicit line through A and B, oriented by A→B:
//
//	A = y2 - y1, B = x1 - x2, C = -x1*A - y1*B
func (s Segment) Line() Line {
	a := s.B.Y - s.A.Y
	b := s.A.X - s.B.X
	c := -s.A.X*a - s.A.Y*b
	return Line{A: a, B: b, C: c}
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.A.DistanceTo(s.B)
}

// Degenerate reports whether both endpoints coincide, in which case the
// derived Line has no direction.
func (s Segment) Degenerate() bool {
	return s.A == s.B
}

// Reversed returns the segment with its endpoints swapped.
func (s Segment) Reversed() Segment {
	return Segment{A: s.B, B: s.A}
}

func (s Segment) String() string {
	return fmt.Sprintf("[%s %s]", s.A, s.B)
}
