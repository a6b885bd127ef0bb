package geometry

import "testing"

func square() *Polygon {
	return NewPolygon(
		Seg(0, 0, 10, 0),
		Seg(10, 0, 10, 10),
		Seg(10, 10, 0, 10),
		Seg(0, 10, 0, 0),
	)
}

func TestPolygon_Contains(t *testing.T) {
	poly := square()
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"centre", Pt(5, 5), true},
		{"near left wall", Pt(0.5, 3), true},
		{"right of square", Pt(15, 5), false},
		{"left of square", Pt(-5, 5), false},
		{"above square", Pt(5, 15), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := poly.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v (crossings %d)",
					tt.p, got, tt.want, poly.IntersectionCount(tt.p))
			}
		})
	}
}

func TestPolygon_IntersectionCount(t *testing.T) {
	poly := square()
	if n := poly.IntersectionCount(Pt(5, 5)); n != 1 {
		t.Errorf("crossings from centre = %d, want 1", n)
	}
	if n := poly.IntersectionCount(Pt(-5, 5)); n != 2 {
		t.Errorf("crossings from the left = %d, want 2", n)
	}
}

func TestPolygon_AppendAndCopies(t *testing.T) {
	segs := []Segment{Seg(0, 0, 1, 0)}
	poly := NewPolygon(segs...)
	segs[0] = Seg(9, 9, 9, 8)

	if got := poly.Segments()[0]; got != Seg(0, 0, 1, 0) {
		t.Errorf("NewPolygon must copy its input, got %v", got)
	}

	poly.Append(Seg(1, 0, 1, 1))
	if poly.Len() != 2 {
		t.Fatalf("Len = %d, want 2", poly.Len())
	}

	out := poly.Segments()
	out[1] = Segment{}
	if poly.Segments()[1] != Seg(1, 0, 1, 1) {
		t.Error("Segments must return a copy")
	}
}

func TestPolygon_NilAndEmpty(t *testing.T) {
	var nilPoly *Polygon
	if nilPoly.Len() != 0 || nilPoly.Contains(Pt(0, 0)) {
		t.Error("nil polygon must be empty and contain nothing")
	}
	if NewPolygon().Contains(Pt(0, 0)) {
		t.Error("empty polygon must contain nothing")
	}
}
