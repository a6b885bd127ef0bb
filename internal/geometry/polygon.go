package geometry

// Polygon is an unordered collection of segments. Nothing enforces closure
// or simplicity; the caller owns the shape of the boundary.
//
// A Polygon is not safe for concurrent mutation. Scans treat it as a
// read-only snapshot, so hosts that edit it from another goroutine must
// serialise Append against in-flight scans.
type Polygon struct {
	segments []Segment
}

// NewPolygon returns a polygon holding a copy of segs.
func NewPolygon(segs ...Segment) *Polygon {
	p := &Polygon{segments: make([]Segment, len(segs))}
	copy(p.segments, segs)
	return p
}

// Append adds s after every existing segment.
func (p *Polygon) Append(s Segment) {
	p.segments = append(p.segments, s)
}

// Segments returns a copy of the segments in insertion order.
func (p *Polygon) Segments() []Segment {
	if p == nil {
		return nil
	}
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Len returns the number of segments.
func (p *Polygon) Len() int {
	if p == nil {
		return 0
	}
	return len(p.segments)
}

// IntersectionCount casts a horizontal ray from pt towards +X and counts
// how many segments it crosses in front of pt.
func (p *Polygon) IntersectionCount(pt Point) int {
	if p == nil {
		return 0
	}
	ray := NewRay(Segment{A: pt, B: Point{X: pt.X + 1, Y: pt.Y}})
	n := 0
	for _, s := range p.segments {
		if _, ok := ray.IntersectSegment(s); ok {
			n++
		}
	}
	return n
}

// Contains applies the even-odd rule: pt is inside when the horizontal
// test ray crosses an odd number of segments. Rays grazing a vertex or
// running along an edge get whatever the span tolerance produces.
func (p *Polygon) Contains(pt Point) bool {
	return p.IntersectionCount(pt)%2 == 1
}
