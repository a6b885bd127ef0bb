package geometry

// Ray is a directed probe from an origin. Intersections are taken along
// the main line and then restricted to the forward half-plane of the side
// line, which passes through the origin perpendicular to the heading.
type Ray struct {
	origin Point
	target Point
	main   Line
	side   Line
}

// NewRay builds a ray from seg.A heading towards seg.B.
//
// The side line is constructed through the origin and the origin offset by
// the heading rotated a quarter turn, then oriented so that seg.B evaluates
// positive on it. After orientation, Eval on the side line equals the dot
// product of the heading with (p - origin).
func NewRay(seg Segment) Ray {
	r := Ray{
		origin: seg.A,
		target: seg.B,
		main:   seg.Line(),
	}
	d := seg.B.Sub(seg.A)
	perp := seg.A.Add(Point{X: d.Y, Y: -d.X})
	r.side = Segment{A: seg.A, B: perp}.Line()
	r.orientSide()
	return r
}

// orientSide flips the side line when the heading target lands in its
// negative half-plane.
func (r *Ray) orientSide() {
	if r.side.Eval(r.target) < 0 {
		r.side.Reverse()
	}
}

// Origin returns the ray's start point.
func (r Ray) Origin() Point { return r.origin }

// Direction returns the heading vector (target - origin), unnormalised.
func (r Ray) Direction() Point { return r.target.Sub(r.origin) }

// MainLine returns the infinite line the ray travels along.
func (r Ray) MainLine() Line { return r.main }

// SideLine returns the oriented half-plane line through the origin.
func (r Ray) SideLine() Line { return r.side }

// Ahead reports whether p is strictly in front of the origin.
func (r Ray) Ahead(p Point) bool {
	return r.side.Eval(p) > 0
}

// IntersectSegment returns the hit of the ray on s, if any. Hits at or
// behind the origin are rejected.
func (r Ray) IntersectSegment(s Segment) (Point, bool) {
	p, ok := r.main.IntersectSegment(s)
	if !ok || !r.Ahead(p) {
		return Point{}, false
	}
	return p, true
}

// IntersectPolygon returns the forward hit closest to the origin across
// every segment of poly. Ties keep the earliest segment in insertion order.
func (r Ray) IntersectPolygon(poly *Polygon) (Point, bool) {
	if poly == nil {
		return Point{}, false
	}
	var (
		best     Point
		bestDist float64
		found    bool
	)
	for _, s := range poly.segments {
		p, ok := r.IntersectSegment(s)
		if !ok {
			continue
		}
		d := p.DistanceTo(r.origin)
		if !found || d < bestDist {
			best, bestDist, found = p, d, true
		}
	}
	return best, found
}
