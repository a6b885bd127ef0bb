package geometry

import "math"

// EPS is the tolerance shared by the determinant test and the segment span
// test.
const EPS = 1e-8

// Line is an infinite line in implicit form A*x + B*y + C = 0.
type Line struct {
	A float64
	B float64
	C float64
}

// Eval returns A*x + B*y + C. Zero means p lies on the line; the sign
// tells which half-plane p is in.
func (l Line) Eval(p Point) float64 {
	return l.A*p.X + l.B*p.Y + l.C
}

// Reverse negates all three coefficients in place, swapping which
// half-plane evaluates positive without moving the line.
func (l *Line) Reverse() {
	l.A, l.B, l.C = -l.A, -l.B, -l.C
}

// Reversed returns a copy of l with its coefficients negated.
func (l Line) Reversed() Line {
	l.Reverse()
	return l
}

// Valid reports whether the line has a direction (A and B not both zero).
func (l Line) Valid() bool {
	return l.A != 0 || l.B != 0
}

// IntersectLine solves the 2×2 system with Cramer's rule. Lines whose
// determinant is within EPS of zero are reported as not intersecting;
// coincident lines are not distinguished from parallel ones.
func (l Line) IntersectLine(o Line) (Point, bool) {
	det := l.A*o.B - o.A*l.B
	if math.Abs(det) <= EPS {
		return Point{}, false
	}
	return Point{
		X: -(l.C*o.B - o.C*l.B) / det,
		Y: -(l.A*o.C - o.A*l.C) / det,
	}, true
}

// IntersectSegment intersects l with the supporting line of s and keeps the
// hit only when it falls within the segment's span on both axes.
//
// The span test multiplies the coordinate offsets to each endpoint and
// accepts products up to EPS. It is an axis-wise bounding check rather than
// a parametric one, so near-collinear configurations can admit hits a
// hair outside the true segment.
func (l Line) IntersectSegment(s Segment) (Point, bool) {
	p, ok := l.IntersectLine(s.Line())
	if !ok {
		return Point{}, false
	}
	if !withinSpan(p, s) {
		return Point{}, false
	}
	return p, true
}

func withinSpan(p Point, s Segment) bool {
	da := p.Sub(s.A)
	db := p.Sub(s.B)
	return da.X*db.X <= EPS && da.Y*db.Y <= EPS
}
